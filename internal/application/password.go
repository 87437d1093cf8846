package application

import "golang.org/x/crypto/bcrypt"

// HashearPassword hashea una contraseña con bcrypt. Una cadena vacía produce
// un hash vacío: significa "sin contraseña", no es un error.
func HashearPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerificarPassword indica si la contraseña coincide con el hash almacenado.
// Nunca devuelve error: entrada vacía, hash vacío o hash malformado dan
// simplemente false.
func VerificarPassword(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
