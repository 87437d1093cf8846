package application

import "testing"

func TestHashearPassword_RoundTrip(t *testing.T) {
	casos := []string{"secreto123", "á é í", "p", "una-contraseña-bastante-larga-para-probar"}

	for _, password := range casos {
		hash, err := HashearPassword(password)
		if err != nil {
			t.Fatalf("HashearPassword(%q) devolvió error: %v", password, err)
		}
		if hash == "" {
			t.Fatalf("HashearPassword(%q) devolvió hash vacío", password)
		}
		if hash == password {
			t.Fatalf("la contraseña %q se almacenó sin hashear", password)
		}
		if !VerificarPassword(password, hash) {
			t.Fatalf("VerificarPassword falló para la contraseña %q", password)
		}
	}
}

func TestHashearPassword_VaciaEsSinPassword(t *testing.T) {
	hash, err := HashearPassword("")
	if err != nil {
		t.Fatalf("contraseña vacía no debe ser error, se obtuvo: %v", err)
	}
	if hash != "" {
		t.Fatalf("contraseña vacía debe producir hash vacío, se obtuvo %q", hash)
	}
}

func TestVerificarPassword_NuncaAcepta(t *testing.T) {
	hash, _ := HashearPassword("secreto")

	if VerificarPassword("", hash) {
		t.Fatal("contraseña vacía no debe verificar contra ningún hash")
	}
	if VerificarPassword("secreto", "") {
		t.Fatal("hash vacío no debe verificar ninguna contraseña")
	}
	if VerificarPassword("otra", hash) {
		t.Fatal("contraseña incorrecta no debe verificar")
	}
	// Un hash malformado da false, nunca un pánico ni un error.
	if VerificarPassword("secreto", "esto-no-es-un-hash-bcrypt") {
		t.Fatal("hash malformado no debe verificar")
	}
}
