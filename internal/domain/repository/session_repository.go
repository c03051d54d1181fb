package repository

import (
	"context"
	"time"
)

// SessionRepository almacena las sesiones revocadas hasta su expiración natural.
type SessionRepository interface {
	// Revoke marca el subject como revocado. Revocar dos veces no es error.
	Revoke(ctx context.Context, subjectID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, subjectID string) (bool, error)
	// PurgeExpired elimina las revocaciones cuya sesión ya expiró antes de now.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
