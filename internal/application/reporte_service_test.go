package application

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

type stubReporteRepo struct {
	reservas []domain.ReporteReserva
	eventos  []domain.EventoHabitacion
	stats    *domain.Estadisticas
	err      error
}

func (r *stubReporteRepo) ReporteReservas(_, _ time.Time) ([]domain.ReporteReserva, error) {
	return r.reservas, r.err
}

func (r *stubReporteRepo) ReporteHabitaciones(_, _ time.Time) ([]domain.EventoHabitacion, error) {
	return r.eventos, r.err
}

func (r *stubReporteRepo) Estadisticas() (*domain.Estadisticas, error) {
	return r.stats, r.err
}

func TestReporteService_DevuelveFilas(t *testing.T) {
	repo := &stubReporteRepo{
		reservas: []domain.ReporteReserva{{ReservaID: 1, Huesped: "Gabriela Uno", HabitacionNumero: "101"}},
		eventos:  []domain.EventoHabitacion{{HabitacionNumero: "101", Evento: domain.EventoCheckIn}},
		stats:    &domain.Estadisticas{Disponibles: 3, Ocupadas: 1, Empleados: 2},
	}
	svc := NewReporteService(repo, zerolog.Nop())

	inicio := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	if filas := svc.ReporteReservas(inicio, fin); len(filas) != 1 {
		t.Fatalf("se esperaba 1 fila, hay %d", len(filas))
	}
	if eventos := svc.ReporteHabitaciones(inicio, fin); len(eventos) != 1 {
		t.Fatalf("se esperaba 1 evento, hay %d", len(eventos))
	}
	if stats := svc.Estadisticas(); stats.Ocupadas != 1 || stats.Empleados != 2 {
		t.Fatalf("estadísticas inesperadas: %+v", stats)
	}
}

// Los reportes son de mejor esfuerzo: un fallo de consulta degrada a
// resultado vacío y nunca se propaga.
func TestReporteService_FalloDegradaAVacio(t *testing.T) {
	repo := &stubReporteRepo{err: errors.New("conexión perdida")}
	svc := NewReporteService(repo, zerolog.Nop())

	inicio := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	filas := svc.ReporteReservas(inicio, fin)
	if filas == nil || len(filas) != 0 {
		t.Fatalf("se esperaba slice vacío no nil, se obtuvo %v", filas)
	}

	eventos := svc.ReporteHabitaciones(inicio, fin)
	if eventos == nil || len(eventos) != 0 {
		t.Fatalf("se esperaba slice vacío no nil, se obtuvo %v", eventos)
	}

	stats := svc.Estadisticas()
	if stats == nil {
		t.Fatal("las estadísticas nunca deben ser nil")
	}
	if stats.Disponibles != 0 || stats.Empleados != 0 {
		t.Fatalf("se esperaban conteos en cero, se obtuvo %+v", stats)
	}
}
