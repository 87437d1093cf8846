package application

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

// stubLedgerRepo reproduce en memoria la semántica transaccional del
// repositorio de reservaciones: la fila de la reservación y el estado de la
// habitación cambian juntos o no cambian.
type stubLedgerRepo struct {
	habitaciones map[int]*domain.Habitacion
	reservas     map[int]*domain.Reservacion
	nextID       int
}

func newStubLedgerRepo(habitaciones ...*domain.Habitacion) *stubLedgerRepo {
	r := &stubLedgerRepo{
		habitaciones: make(map[int]*domain.Habitacion),
		reservas:     make(map[int]*domain.Reservacion),
		nextID:       1,
	}
	for _, h := range habitaciones {
		r.habitaciones[h.ID] = h
	}
	return r
}

func (r *stubLedgerRepo) GetAll() ([]domain.ReservacionDetalle, error) { return nil, nil }

func (r *stubLedgerRepo) GetByID(id int) (*domain.Reservacion, error) {
	res, ok := r.reservas[id]
	if !ok {
		return nil, domain.ErrNoEncontrado
	}
	copia := *res
	return &copia, nil
}

func (r *stubLedgerRepo) Crear(res *domain.Reservacion) (int, error) {
	h, ok := r.habitaciones[res.HabitacionID]
	if !ok {
		return 0, domain.ErrNoEncontrado
	}
	if h.Estado != domain.HabitacionDisponible {
		return 0, domain.ErrConflicto
	}

	id := r.nextID
	r.nextID++
	guardada := *res
	guardada.ID = id
	guardada.Estado = domain.ReservacionActiva
	r.reservas[id] = &guardada
	h.Estado = domain.HabitacionOcupada

	res.ID = id
	res.Estado = domain.ReservacionActiva
	return id, nil
}

func (r *stubLedgerRepo) Finalizar(id int) error {
	return r.transicionar(id, domain.ReservacionFinalizada, domain.HabitacionLimpieza)
}

func (r *stubLedgerRepo) Cancelar(id int) error {
	return r.transicionar(id, domain.ReservacionCancelada, domain.HabitacionDisponible)
}

func (r *stubLedgerRepo) transicionar(id int, er domain.EstadoReservacion, eh domain.EstadoHabitacion) error {
	res, ok := r.reservas[id]
	if !ok {
		return domain.ErrNoEncontrado
	}
	if res.Estado != domain.ReservacionActiva {
		return domain.ErrConflicto
	}
	res.Estado = er
	r.habitaciones[res.HabitacionID].Estado = eh
	return nil
}

type stubHuespedRepo struct {
	huespedes map[int]*domain.Huesped
}

func (r *stubHuespedRepo) GetAll() ([]domain.Huesped, error) { return nil, nil }
func (r *stubHuespedRepo) GetByID(id int) (*domain.Huesped, error) {
	h, ok := r.huespedes[id]
	if !ok {
		return nil, domain.ErrNoEncontrado
	}
	return h, nil
}
func (r *stubHuespedRepo) GetByTelefono(string) (*domain.Huesped, error) { return nil, nil }
func (r *stubHuespedRepo) Create(*domain.Huesped) (int, error)           { return 0, nil }
func (r *stubHuespedRepo) Update(*domain.Huesped) error                  { return nil }

func nuevaHabitacion101() *domain.Habitacion {
	return &domain.Habitacion{
		ID:     1,
		Numero: "101",
		Tipo:   domain.TipoSencilla,
		Precio: 50.00,
		Estado: domain.HabitacionDisponible,
	}
}

func nuevoServicio(repo *stubLedgerRepo) *ReservaService {
	huespedes := &stubHuespedRepo{huespedes: map[int]*domain.Huesped{
		1: {ID: 1, Nombre: "Gabriela", Apellido: "Uno", Telefono: "5550001"},
	}}
	return NewReservaService(repo, huespedes, nil, zerolog.Nop())
}

func reservaDePrueba() *domain.Reservacion {
	return &domain.Reservacion{
		HuespedID:    1,
		HabitacionID: 1,
		FechaEntrada: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		FechaSalida:  time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		Total:        100.00,
	}
}

func TestReservaService_CrearOcupaHabitacion(t *testing.T) {
	habitacion := nuevaHabitacion101()
	repo := newStubLedgerRepo(habitacion)
	svc := nuevoServicio(repo)

	id, err := svc.Crear(reservaDePrueba())
	if err != nil {
		t.Fatalf("Crear devolvió error: %v", err)
	}
	if id == 0 {
		t.Fatal("se esperaba un id de reservación")
	}
	if habitacion.Estado != domain.HabitacionOcupada {
		t.Fatalf("la habitación debe quedar ocupada, está %q", habitacion.Estado)
	}
	if repo.reservas[id].Estado != domain.ReservacionActiva {
		t.Fatalf("la reservación debe quedar activa, está %q", repo.reservas[id].Estado)
	}
}

func TestReservaService_CrearFallaSiOcupada(t *testing.T) {
	habitacion := nuevaHabitacion101()
	repo := newStubLedgerRepo(habitacion)
	svc := nuevoServicio(repo)

	if _, err := svc.Crear(reservaDePrueba()); err != nil {
		t.Fatalf("primera reservación falló: %v", err)
	}

	// Segunda reservación sin finalizar ni cancelar la primera: la política
	// es fallar con conflicto, dejando intacta la primera.
	_, err := svc.Crear(reservaDePrueba())
	if !errors.Is(err, domain.ErrConflicto) {
		t.Fatalf("se esperaba ErrConflicto, se obtuvo: %v", err)
	}
	if len(repo.reservas) != 1 {
		t.Fatalf("la doble reserva no debe dejar rastro, hay %d reservaciones", len(repo.reservas))
	}
	if habitacion.Estado != domain.HabitacionOcupada {
		t.Fatalf("la habitación debe seguir ocupada, está %q", habitacion.Estado)
	}
}

func TestReservaService_CrearHabitacionInexistente(t *testing.T) {
	repo := newStubLedgerRepo()
	svc := nuevoServicio(repo)

	_, err := svc.Crear(reservaDePrueba())
	if !errors.Is(err, domain.ErrNoEncontrado) {
		t.Fatalf("se esperaba ErrNoEncontrado, se obtuvo: %v", err)
	}
}

func TestReservaService_CrearValidaDatos(t *testing.T) {
	repo := newStubLedgerRepo(nuevaHabitacion101())
	svc := nuevoServicio(repo)

	r := reservaDePrueba()
	r.FechaSalida = r.FechaEntrada
	if _, err := svc.Crear(r); err == nil {
		t.Fatal("salida igual a entrada debe fallar")
	}

	r = reservaDePrueba()
	r.Total = 0
	if _, err := svc.Crear(r); err == nil {
		t.Fatal("total en cero debe fallar")
	}

	r = reservaDePrueba()
	r.HuespedID = 0
	if _, err := svc.Crear(r); err == nil {
		t.Fatal("huésped sin id debe fallar")
	}

	if len(repo.reservas) != 0 {
		t.Fatalf("las validaciones fallidas no deben escribir, hay %d reservaciones", len(repo.reservas))
	}
}

func TestReservaService_FinalizarDejaLimpieza(t *testing.T) {
	habitacion := nuevaHabitacion101()
	repo := newStubLedgerRepo(habitacion)
	svc := nuevoServicio(repo)

	id, _ := svc.Crear(reservaDePrueba())

	if err := svc.Finalizar(id); err != nil {
		t.Fatalf("Finalizar devolvió error: %v", err)
	}
	if repo.reservas[id].Estado != domain.ReservacionFinalizada {
		t.Fatalf("la reservación debe quedar finalizada, está %q", repo.reservas[id].Estado)
	}
	if habitacion.Estado != domain.HabitacionLimpieza {
		t.Fatalf("la habitación debe quedar en limpieza, está %q", habitacion.Estado)
	}
}

func TestReservaService_CancelarLiberaHabitacion(t *testing.T) {
	habitacion := nuevaHabitacion101()
	repo := newStubLedgerRepo(habitacion)
	svc := nuevoServicio(repo)

	id, _ := svc.Crear(reservaDePrueba())

	if err := svc.Cancelar(id); err != nil {
		t.Fatalf("Cancelar devolvió error: %v", err)
	}
	if repo.reservas[id].Estado != domain.ReservacionCancelada {
		t.Fatalf("la reservación debe quedar cancelada, está %q", repo.reservas[id].Estado)
	}
	if habitacion.Estado != domain.HabitacionDisponible {
		t.Fatalf("la habitación debe volver a disponible, está %q", habitacion.Estado)
	}

	// Sin reservación activa para esa habitación.
	for _, r := range repo.reservas {
		if r.HabitacionID == habitacion.ID && r.Estado == domain.ReservacionActiva {
			t.Fatal("no debe quedar reservación activa tras cancelar")
		}
	}
}

func TestReservaService_FinalizarInexistente(t *testing.T) {
	repo := newStubLedgerRepo(nuevaHabitacion101())
	svc := nuevoServicio(repo)

	if err := svc.Finalizar(99); !errors.Is(err, domain.ErrNoEncontrado) {
		t.Fatalf("se esperaba ErrNoEncontrado, se obtuvo: %v", err)
	}
	if err := svc.Cancelar(99); !errors.Is(err, domain.ErrNoEncontrado) {
		t.Fatalf("se esperaba ErrNoEncontrado, se obtuvo: %v", err)
	}
}

func TestReservaService_NoReabreReservacionCerrada(t *testing.T) {
	repo := newStubLedgerRepo(nuevaHabitacion101())
	svc := nuevoServicio(repo)

	id, _ := svc.Crear(reservaDePrueba())
	if err := svc.Cancelar(id); err != nil {
		t.Fatalf("Cancelar devolvió error: %v", err)
	}

	if err := svc.Finalizar(id); !errors.Is(err, domain.ErrConflicto) {
		t.Fatalf("finalizar una reservación cancelada debe dar ErrConflicto, se obtuvo: %v", err)
	}
	if err := svc.Cancelar(id); !errors.Is(err, domain.ErrConflicto) {
		t.Fatalf("cancelar dos veces debe dar ErrConflicto, se obtuvo: %v", err)
	}
}

// Escenario completo: reservar, check-out, limpieza terminada por un
// administrador y nueva reservación sobre la misma habitación.
func TestReservaService_CicloCompletoHabitacion(t *testing.T) {
	habitacion := nuevaHabitacion101()
	repo := newStubLedgerRepo(habitacion)
	svc := nuevoServicio(repo)

	id, err := svc.Crear(reservaDePrueba())
	if err != nil {
		t.Fatalf("Crear devolvió error: %v", err)
	}
	if habitacion.Estado != domain.HabitacionOcupada {
		t.Fatalf("tras crear: se esperaba ocupada, está %q", habitacion.Estado)
	}

	if err := svc.Finalizar(id); err != nil {
		t.Fatalf("Finalizar devolvió error: %v", err)
	}
	if habitacion.Estado != domain.HabitacionLimpieza {
		t.Fatalf("tras check-out: se esperaba limpieza, está %q", habitacion.Estado)
	}

	// El administrador marca la limpieza terminada.
	habitacion.Estado = domain.HabitacionDisponible

	if _, err := svc.Crear(reservaDePrueba()); err != nil {
		t.Fatalf("la habitación liberada debe aceptar una nueva reservación: %v", err)
	}
	if habitacion.Estado != domain.HabitacionOcupada {
		t.Fatalf("tras la nueva reservación: se esperaba ocupada, está %q", habitacion.Estado)
	}
}
