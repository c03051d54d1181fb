package domain_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/componentes-api/internal/domain"
)

func TestResultOf_ClasificaErroresDeRepositorio(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want domain.Result
	}{
		{"sin error", nil, domain.Ok},
		{"fila inexistente", domain.ErrNotFound, domain.NoRecordAffected},
		{"usuario inexistente envuelto", fmt.Errorf("borrar: %w", domain.ErrUserNotFound), domain.NoRecordAffected},
		{"duplicado", domain.ErrDuplicate, domain.ConflictOrConstraintViolation},
		{"email duplicado", domain.ErrEmailAlreadyExists, domain.ConflictOrConstraintViolation},
		{"restricción", fmt.Errorf("%w: cantidad 9 fuera de [0, 5]", domain.ErrConflict), domain.ConflictOrConstraintViolation},
		{"entrada inválida", domain.ErrInvalidInput, domain.ConflictOrConstraintViolation},
		{"timeout", context.DeadlineExceeded, domain.BackendFailure},
		{"cancelado", context.Canceled, domain.BackendFailure},
		{"coincidencia ambigua", domain.ErrAmbiguousMatch, domain.BackendFailure},
		{"backend", fmt.Errorf("%w: pool cerrado", domain.ErrBackend), domain.BackendFailure},
		{"desconocido", errors.New("connection reset"), domain.BackendFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.ResultOf(tc.err))
		})
	}
}

func TestResult_StringEstable(t *testing.T) {
	assert.Equal(t, "ok", domain.Ok.String())
	assert.Equal(t, "no_record_affected", domain.NoRecordAffected.String())
	assert.Equal(t, "conflict", domain.ConflictOrConstraintViolation.String())
	assert.Equal(t, "backend_failure", domain.BackendFailure.String())
	assert.Equal(t, "unknown", domain.Result(99).String())
	assert.True(t, domain.Ok.IsOk())
	assert.False(t, domain.BackendFailure.IsOk())
}
