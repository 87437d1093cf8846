package repository

import (
	"errors"

	"github.com/lib/pq"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

// Códigos de error de PostgreSQL que se traducen a errores del dominio.
const (
	codigoUniqueViolation     = "23505"
	codigoForeignKeyViolation = "23503"
)

// traducirError convierte errores del driver en errores tipados del dominio.
// Una violación de unicidad se reporta como ErrDuplicado; una violación de
// clave foránea como ErrConflicto. Cualquier otro error se devuelve tal cual.
func traducirError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codigoUniqueViolation:
			return domain.ErrDuplicado
		case codigoForeignKeyViolation:
			return domain.ErrConflicto
		}
	}
	return err
}
