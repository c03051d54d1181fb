package domain

import (
	"context"
	"errors"
)

// Result es el resultado de toda operación que muta el almacenamiento.
// Se devuelve siempre; nunca se propaga como panic.
type Result int

const (
	// Ok la mutación se aplicó.
	Ok Result = iota
	// NoRecordAffected la fila objetivo no existe o el predicado no coincidió.
	NoRecordAffected
	// ConflictOrConstraintViolation el almacenamiento rechazó una escritura bien formada.
	ConflictOrConstraintViolation
	// BackendFailure el almacenamiento no respondió o falló de forma inesperada.
	BackendFailure
)

// String devuelve el nombre estable del resultado (usado en logs y métricas).
func (r Result) String() string {
	switch r {
	case Ok:
		return "ok"
	case NoRecordAffected:
		return "no_record_affected"
	case ConflictOrConstraintViolation:
		return "conflict"
	case BackendFailure:
		return "backend_failure"
	default:
		return "unknown"
	}
}

// IsOk indica si la mutación se aplicó.
func (r Result) IsOk() bool { return r == Ok }

// ResultOf clasifica un error de repositorio en la taxonomía de resultados.
// Cualquier error no reconocido (incluido un timeout) es BackendFailure.
func ResultOf(err error) Result {
	switch {
	case err == nil:
		return Ok
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return BackendFailure
	case errors.Is(err, ErrAmbiguousMatch), errors.Is(err, ErrBackend):
		return BackendFailure
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUserNotFound):
		return NoRecordAffected
	case errors.Is(err, ErrConflict), errors.Is(err, ErrDuplicate),
		errors.Is(err, ErrEmailAlreadyExists), errors.Is(err, ErrInvalidInput):
		return ConflictOrConstraintViolation
	default:
		return BackendFailure
	}
}
