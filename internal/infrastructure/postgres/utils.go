package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// validID evita enviar a PostgreSQL ids que no son UUID (se tratan como inexistentes).
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
