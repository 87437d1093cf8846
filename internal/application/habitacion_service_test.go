package application

import (
	"errors"
	"testing"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

type stubHabitacionRepo struct {
	habitaciones map[int]*domain.Habitacion
	nextID       int
}

func newStubHabitacionRepo() *stubHabitacionRepo {
	return &stubHabitacionRepo{habitaciones: make(map[int]*domain.Habitacion), nextID: 1}
}

func (r *stubHabitacionRepo) GetAll() ([]domain.Habitacion, error) {
	var todas []domain.Habitacion
	for _, h := range r.habitaciones {
		todas = append(todas, *h)
	}
	return todas, nil
}

func (r *stubHabitacionRepo) GetByID(id int) (*domain.Habitacion, error) {
	h, ok := r.habitaciones[id]
	if !ok {
		return nil, domain.ErrNoEncontrado
	}
	copia := *h
	return &copia, nil
}

func (r *stubHabitacionRepo) GetDisponibles() ([]domain.Habitacion, error) { return nil, nil }

func (r *stubHabitacionRepo) Create(h *domain.Habitacion) (int, error) {
	for _, existente := range r.habitaciones {
		if existente.Numero == h.Numero {
			return 0, domain.ErrDuplicado
		}
	}
	id := r.nextID
	r.nextID++
	guardada := *h
	guardada.ID = id
	r.habitaciones[id] = &guardada
	return id, nil
}

func (r *stubHabitacionRepo) Update(h *domain.Habitacion) error {
	if _, ok := r.habitaciones[h.ID]; !ok {
		return domain.ErrNoEncontrado
	}
	copia := *h
	r.habitaciones[h.ID] = &copia
	return nil
}

func (r *stubHabitacionRepo) CambiarEstado(id int, estado domain.EstadoHabitacion) error {
	h, ok := r.habitaciones[id]
	if !ok {
		return domain.ErrNoEncontrado
	}
	h.Estado = estado
	return nil
}

func (r *stubHabitacionRepo) Delete(id int) error {
	if _, ok := r.habitaciones[id]; !ok {
		return domain.ErrNoEncontrado
	}
	delete(r.habitaciones, id)
	return nil
}

func TestHabitacionService_CrearConEstadoPorDefecto(t *testing.T) {
	repo := newStubHabitacionRepo()
	svc := NewHabitacionService(repo)

	id, err := svc.Crear(&domain.Habitacion{Numero: "101", Tipo: domain.TipoSencilla, Precio: 50})
	if err != nil {
		t.Fatalf("Crear devolvió error: %v", err)
	}
	if repo.habitaciones[id].Estado != domain.HabitacionDisponible {
		t.Fatalf("una habitación nueva debe nacer disponible, está %q", repo.habitaciones[id].Estado)
	}
}

func TestHabitacionService_NumeroDuplicado(t *testing.T) {
	repo := newStubHabitacionRepo()
	svc := NewHabitacionService(repo)

	id, err := svc.Crear(&domain.Habitacion{Numero: "101", Tipo: domain.TipoSencilla, Precio: 50})
	if err != nil {
		t.Fatalf("primera habitación falló: %v", err)
	}

	_, err = svc.Crear(&domain.Habitacion{Numero: "101", Tipo: domain.TipoDeluxe, Precio: 120})
	if !errors.Is(err, domain.ErrDuplicado) {
		t.Fatalf("se esperaba ErrDuplicado, se obtuvo: %v", err)
	}

	// La habitación original queda intacta.
	original, _ := repo.GetByID(id)
	if original.Tipo != domain.TipoSencilla || original.Precio != 50 {
		t.Fatalf("el duplicado no debe modificar la habitación existente: %+v", original)
	}
	if len(repo.habitaciones) != 1 {
		t.Fatalf("debe haber exactamente 1 habitación, hay %d", len(repo.habitaciones))
	}
}

func TestHabitacionService_ValidaDatos(t *testing.T) {
	svc := NewHabitacionService(newStubHabitacionRepo())

	casos := []struct {
		nombre string
		h      domain.Habitacion
	}{
		{"sin número", domain.Habitacion{Tipo: domain.TipoSencilla, Precio: 50}},
		{"número demasiado largo", domain.Habitacion{Numero: "12345678901", Tipo: domain.TipoSencilla, Precio: 50}},
		{"tipo desconocido", domain.Habitacion{Numero: "101", Tipo: "Suite", Precio: 50}},
		{"precio en cero", domain.Habitacion{Numero: "101", Tipo: domain.TipoSencilla, Precio: 0}},
		{"precio negativo", domain.Habitacion{Numero: "101", Tipo: domain.TipoSencilla, Precio: -10}},
	}

	for _, caso := range casos {
		if _, err := svc.Crear(&caso.h); err == nil {
			t.Fatalf("%s: se esperaba error de validación", caso.nombre)
		}
	}
}

func TestHabitacionService_CambiarEstado(t *testing.T) {
	repo := newStubHabitacionRepo()
	svc := NewHabitacionService(repo)

	id, _ := svc.Crear(&domain.Habitacion{Numero: "101", Tipo: domain.TipoSencilla, Precio: 50})

	if err := svc.CambiarEstado(id, domain.HabitacionMantenimiento); err != nil {
		t.Fatalf("CambiarEstado devolvió error: %v", err)
	}
	if repo.habitaciones[id].Estado != domain.HabitacionMantenimiento {
		t.Fatalf("estado inesperado: %q", repo.habitaciones[id].Estado)
	}

	if err := svc.CambiarEstado(id, "rota"); err == nil {
		t.Fatal("un estado desconocido debe rechazarse")
	}
	if err := svc.CambiarEstado(99, domain.HabitacionDisponible); !errors.Is(err, domain.ErrNoEncontrado) {
		t.Fatalf("se esperaba ErrNoEncontrado, se obtuvo: %v", err)
	}
}
