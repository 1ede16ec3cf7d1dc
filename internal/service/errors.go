package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrPersonaNoEncontrada = errors.New("persona no encontrada")
	ErrPaisNoEncontrado    = errors.New("país no encontrado")
)

// CreateError reports a storage failure while inserting a new record.
type CreateError struct {
	Entidad string
	Err     error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("error al crear %s: %s", e.Entidad, describeStorageError(e.Err))
}

func (e *CreateError) Unwrap() error { return e.Err }

// describeStorageError renders a storage failure for the client. Postgres
// integrity violations (SQLSTATE class 23) carry their constraint and detail.
func describeStorageError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		msg := fmt.Sprintf("violación de restricción %s (%s)", pgErr.ConstraintName, pgErr.Code)
		if pgErr.Detail != "" {
			msg += ": " + pgErr.Detail
		}
		return msg
	}
	return err.Error()
}
