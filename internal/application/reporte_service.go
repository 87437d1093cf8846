package application

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

// ReporteService expone los reportes de ocupación. Los reportes son de mejor
// esfuerzo: un fallo de consulta se registra y degrada a resultado vacío,
// nunca se propaga al llamador.
type ReporteService struct {
	repo domain.ReporteRepository
	log  zerolog.Logger
}

// NewReporteService crea una nueva instancia del servicio de reportes
func NewReporteService(repo domain.ReporteRepository, log zerolog.Logger) *ReporteService {
	return &ReporteService{repo: repo, log: log}
}

// ReporteReservas devuelve el historial de reservaciones en [inicio, fin].
func (s *ReporteService) ReporteReservas(inicio, fin time.Time) []domain.ReporteReserva {
	reporte, err := s.repo.ReporteReservas(inicio, fin)
	if err != nil {
		s.log.Error().Err(err).Msg("error al obtener reporte de reservaciones")
		return []domain.ReporteReserva{}
	}
	if reporte == nil {
		return []domain.ReporteReserva{}
	}
	return reporte
}

// ReporteHabitaciones devuelve el historial de uso de habitaciones en
// [inicio, fin].
func (s *ReporteService) ReporteHabitaciones(inicio, fin time.Time) []domain.EventoHabitacion {
	eventos, err := s.repo.ReporteHabitaciones(inicio, fin)
	if err != nil {
		s.log.Error().Err(err).Msg("error al obtener reporte de habitaciones")
		return []domain.EventoHabitacion{}
	}
	if eventos == nil {
		return []domain.EventoHabitacion{}
	}
	return eventos
}

// Estadisticas devuelve el resumen del tablero; en caso de error devuelve
// conteos en cero.
func (s *ReporteService) Estadisticas() *domain.Estadisticas {
	stats, err := s.repo.Estadisticas()
	if err != nil {
		s.log.Error().Err(err).Msg("error al obtener estadísticas")
		return &domain.Estadisticas{}
	}
	return stats
}
