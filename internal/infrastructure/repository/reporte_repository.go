package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

type reporteRepository struct {
	db *sql.DB
}

// NewReporteRepository crea una nueva instancia del repositorio de reportes.
// Todas las consultas son de sólo lectura.
func NewReporteRepository(db *sql.DB) domain.ReporteRepository {
	return &reporteRepository{db: db}
}

// ReporteReservas implementa domain.ReporteRepository
func (r *reporteRepository) ReporteReservas(inicio, fin time.Time) ([]domain.ReporteReserva, error) {
	query := `
		SELECT r.id,
		       h.nombre || ' ' || h.apellido AS huesped,
		       hab.numero,
		       r.fecha_entrada,
		       r.fecha_salida,
		       r.total,
		       r.estado
		FROM reservaciones r
		         JOIN huespedes h ON r.huesped_id = h.id
		         JOIN habitaciones hab ON r.habitacion_id = hab.id
		WHERE r.fecha_entrada >= $1
		  AND r.fecha_entrada <= $2
		ORDER BY r.fecha_entrada DESC;`

	rows, err := r.db.Query(query, inicio, fin)
	if err != nil {
		return nil, fmt.Errorf("error al consultar reporte de reservaciones: %w", err)
	}
	defer rows.Close()

	var reporte []domain.ReporteReserva
	for rows.Next() {
		var fila domain.ReporteReserva
		err := rows.Scan(
			&fila.ReservaID,
			&fila.Huesped,
			&fila.HabitacionNumero,
			&fila.FechaEntrada,
			&fila.FechaSalida,
			&fila.Total,
			&fila.Estado,
		)
		if err != nil {
			return nil, fmt.Errorf("error al leer fila del reporte: %w", err)
		}
		reporte = append(reporte, fila)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar reporte de reservaciones: %w", err)
	}

	return reporte, nil
}

// ReporteHabitaciones implementa domain.ReporteRepository. La consulta es la
// unión de dos formas de evento: entradas (toda reservación con check-in en el
// rango) y salidas (sólo reservaciones finalizadas con check-out en el rango).
func (r *reporteRepository) ReporteHabitaciones(inicio, fin time.Time) ([]domain.EventoHabitacion, error) {
	query := `
		SELECT hab.numero,
		       hab.tipo,
		       'Check-in / Ocupación'        AS evento,
		       r.fecha_entrada               AS fecha,
		       h.nombre || ' ' || h.apellido AS huesped,
		       'Entrada del huésped'         AS detalles
		FROM reservaciones r
		         JOIN habitaciones hab ON r.habitacion_id = hab.id
		         JOIN huespedes h ON r.huesped_id = h.id
		WHERE r.fecha_entrada >= $1
		  AND r.fecha_entrada <= $2

		UNION ALL

		SELECT hab.numero,
		       hab.tipo,
		       'Check-out / Limpieza'                       AS evento,
		       r.fecha_salida                               AS fecha,
		       h.nombre || ' ' || h.apellido                AS huesped,
		       'Salida del huésped - Habitación a limpieza' AS detalles
		FROM reservaciones r
		         JOIN habitaciones hab ON r.habitacion_id = hab.id
		         JOIN huespedes h ON r.huesped_id = h.id
		WHERE r.fecha_salida >= $3
		  AND r.fecha_salida <= $4
		  AND r.estado = 'finalizada'

		ORDER BY fecha DESC, numero;`

	rows, err := r.db.Query(query, inicio, fin, inicio, fin)
	if err != nil {
		return nil, fmt.Errorf("error al consultar reporte de habitaciones: %w", err)
	}
	defer rows.Close()

	var eventos []domain.EventoHabitacion
	for rows.Next() {
		var ev domain.EventoHabitacion
		err := rows.Scan(
			&ev.HabitacionNumero,
			&ev.HabitacionTipo,
			&ev.Evento,
			&ev.Fecha,
			&ev.Huesped,
			&ev.Detalles,
		)
		if err != nil {
			return nil, fmt.Errorf("error al leer evento de habitación: %w", err)
		}
		eventos = append(eventos, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar eventos de habitaciones: %w", err)
	}

	return eventos, nil
}

// Estadisticas implementa domain.ReporteRepository
func (r *reporteRepository) Estadisticas() (*domain.Estadisticas, error) {
	query := `
		SELECT estado, COUNT(*)
		FROM habitaciones
		GROUP BY estado;`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al consultar estadísticas: %w", err)
	}
	defer rows.Close()

	stats := &domain.Estadisticas{}
	for rows.Next() {
		var estado domain.EstadoHabitacion
		var total int
		if err := rows.Scan(&estado, &total); err != nil {
			return nil, fmt.Errorf("error al leer estadística: %w", err)
		}
		switch estado {
		case domain.HabitacionDisponible:
			stats.Disponibles = total
		case domain.HabitacionOcupada:
			stats.Ocupadas = total
		case domain.HabitacionLimpieza:
			stats.Limpieza = total
		case domain.HabitacionMantenimiento:
			stats.Mantenimiento = total
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar estadísticas: %w", err)
	}

	if err := r.db.QueryRow(`SELECT COUNT(*) FROM empleados`).Scan(&stats.Empleados); err != nil {
		return nil, fmt.Errorf("error al contar empleados: %w", err)
	}

	return stats, nil
}
