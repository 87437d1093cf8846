package application

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/email"
)

// ReservaService es el ledger de reservaciones: la única pieza de la
// aplicación autorizada a crear, finalizar o cancelar una reservación, y por
// tanto a mover una habitación entre ocupada, limpieza y disponible. Cada
// operación delega en el repositorio, que ejecuta las dos escrituras (fila de
// reservación + fila de habitación) en una sola transacción.
type ReservaService struct {
	reservacionRepo domain.ReservacionRepository
	huespedRepo     domain.HuespedRepository
	emailClient     *email.Client
	log             zerolog.Logger
}

// NewReservaService crea una nueva instancia del servicio de reservaciones
func NewReservaService(
	reservacionRepo domain.ReservacionRepository,
	huespedRepo domain.HuespedRepository,
	emailClient *email.Client,
	log zerolog.Logger,
) *ReservaService {
	return &ReservaService{
		reservacionRepo: reservacionRepo,
		huespedRepo:     huespedRepo,
		emailClient:     emailClient,
		log:             log,
	}
}

// GetAll devuelve todas las reservaciones con detalle de huésped y habitación.
func (s *ReservaService) GetAll() ([]domain.ReservacionDetalle, error) {
	return s.reservacionRepo.GetAll()
}

// GetByID devuelve una reservación por id.
func (s *ReservaService) GetByID(id int) (*domain.Reservacion, error) {
	return s.reservacionRepo.GetByID(id)
}

// Crear registra una reservación nueva. La habitación debe existir y estar
// disponible; si no, la operación falla sin dejar rastro. Tras confirmar, se
// envía (mejor esfuerzo) un correo de confirmación al huésped.
func (s *ReservaService) Crear(r *domain.Reservacion) (int, error) {
	if r.HuespedID <= 0 {
		return 0, fmt.Errorf("el huésped de la reservación es requerido")
	}
	if r.HabitacionID <= 0 {
		return 0, fmt.Errorf("la habitación de la reservación es requerida")
	}
	if !r.FechaSalida.After(r.FechaEntrada) {
		return 0, fmt.Errorf("la fecha de salida debe ser posterior a la fecha de entrada")
	}
	if r.Total <= 0 {
		return 0, fmt.Errorf("el total de la reservación debe ser mayor a 0")
	}

	id, err := s.reservacionRepo.Crear(r)
	if err != nil {
		return 0, err
	}

	s.notificar(r, "Confirmación de reservación",
		"Su reservación ha sido registrada. Entrada: %s, salida: %s.")

	return id, nil
}

// Finalizar hace el check-out de una reservación activa.
func (s *ReservaService) Finalizar(id int) error {
	r, err := s.reservacionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.reservacionRepo.Finalizar(id); err != nil {
		return err
	}

	s.notificar(r, "Gracias por su estadía",
		"Su check-out quedó registrado. Entrada: %s, salida: %s.")

	return nil
}

// Cancelar anula una reservación activa y libera su habitación.
func (s *ReservaService) Cancelar(id int) error {
	return s.reservacionRepo.Cancelar(id)
}

// notificar envía un correo al huésped si tiene email registrado y hay
// cliente SMTP configurado. Los fallos sólo se registran: la notificación
// nunca afecta el resultado de la operación.
func (s *ReservaService) notificar(r *domain.Reservacion, asunto, plantilla string) {
	if s.emailClient == nil {
		return
	}

	huesped, err := s.huespedRepo.GetByID(r.HuespedID)
	if err != nil || huesped == nil || huesped.Email == "" {
		return
	}

	cuerpo := fmt.Sprintf(
		"<p>Estimado/a %s:</p><p>"+plantilla+"</p>",
		huesped.NombreCompleto(),
		r.FechaEntrada.Format("2006-01-02"),
		r.FechaSalida.Format("2006-01-02"),
	)
	if err := s.emailClient.SendEmail(huesped.Email, asunto, cuerpo); err != nil {
		s.log.Warn().Err(err).Int("reserva_id", r.ID).Msg("no se pudo enviar el correo al huésped")
	}
}
