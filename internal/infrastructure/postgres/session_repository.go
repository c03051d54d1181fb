package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/componentes-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo revocaciones de sesión en la tabla revoked_sessions.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Revoke registra la revocación; una segunda revocación del mismo subject no cambia nada.
func (r *SessionRepo) Revoke(ctx context.Context, subjectID string, expiresAt time.Time) error {
	query := `
		INSERT INTO revoked_sessions (subject_id, expires_at, revoked_at)
		VALUES ($1, $2, now())
		ON CONFLICT (subject_id) DO NOTHING`
	if _, err := r.q.Exec(ctx, query, subjectID, expiresAt); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (r *SessionRepo) IsRevoked(ctx context.Context, subjectID string) (bool, error) {
	var revoked bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM revoked_sessions WHERE subject_id = $1)`, subjectID,
	).Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("check revoked session: %w", err)
	}
	return revoked, nil
}

// PurgeExpired borra las revocaciones de sesiones ya expiradas.
func (r *SessionRepo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM revoked_sessions WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("purge revoked sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
