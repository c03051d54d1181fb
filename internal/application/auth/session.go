package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/componentes-api/internal/domain"
	"github.com/jhoicas/componentes-api/internal/domain/entity"
	"github.com/jhoicas/componentes-api/internal/domain/repository"
	"github.com/jhoicas/componentes-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret       string
	TTL          time.Duration
	Issuer       string
	QueryTimeout time.Duration // límite de cada consulta al almacén de revocaciones
}

// SessionIssuer emite, verifica y revoca sesiones firmadas.
// Cada sesión lleva un subject nuevo (UUIDv4) y el rol copiado del usuario.
type SessionIssuer struct {
	cfg     JWTConfig
	revoked repository.SessionRepository
	now     func() time.Time
	newID   func() string
}

// IssuerOption configura un SessionIssuer.
type IssuerOption func(*SessionIssuer)

// WithClock inyecta el reloj.
func WithClock(now func() time.Time) IssuerOption {
	return func(s *SessionIssuer) { s.now = now }
}

// WithIDGenerator inyecta el generador de identificadores de sesión.
func WithIDGenerator(newID func() string) IssuerOption {
	return func(s *SessionIssuer) { s.newID = newID }
}

// NewSessionIssuer construye el emisor de sesiones.
func NewSessionIssuer(revoked repository.SessionRepository, cfg JWTConfig, opts ...IssuerOption) *SessionIssuer {
	s := &SessionIssuer{
		cfg:     cfg,
		revoked: revoked,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue crea una sesión para role. No toca el almacenamiento.
func (s *SessionIssuer) Issue(_ context.Context, role entity.Role) (*entity.Session, error) {
	if _, ok := entity.ParseRole(string(role)); !ok {
		return nil, domain.ErrInvalidInput
	}
	subject := s.newID()
	if subject == "" {
		return nil, fmt.Errorf("session: identificador vacío")
	}
	issuedAt := s.now().UTC().Truncate(time.Second)
	token, err := jwt.Generate(s.cfg.Secret, subject, string(role), s.cfg.Issuer, issuedAt, s.cfg.TTL)
	if err != nil {
		return nil, fmt.Errorf("session: firmar token: %w", err)
	}
	return &entity.Session{
		SubjectID: subject,
		Role:      role,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(s.cfg.TTL),
		Token:     token,
	}, nil
}

// Verify valida el token y comprueba que no haya sido revocado.
// domain.ErrUnauthorized si el token no sirve; error con domain.ErrBackend si el almacén falla.
func (s *SessionIssuer) Verify(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	claims, err := jwt.Parse(s.cfg.Secret, s.cfg.Issuer, token, s.now)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	role, ok := entity.ParseRole(claims.Role)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	revoked, err := s.revoked.IsRevoked(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: consultar revocación: %w", domain.ErrBackend, err)
	}
	if revoked {
		return nil, domain.ErrUnauthorized
	}
	return &entity.Session{
		SubjectID: claims.Subject,
		Role:      role,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
		Token:     token,
	}, nil
}

// Revoke invalida la sesión hasta su expiración. Es idempotente: un token vacío,
// inválido, expirado o ya revocado no produce error.
func (s *SessionIssuer) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := jwt.Parse(s.cfg.Secret, s.cfg.Issuer, token, s.now)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenInvalid) {
			return nil
		}
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.revoked.Revoke(ctx, claims.Subject, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("%w: revocar sesión: %w", domain.ErrBackend, err)
	}
	return nil
}

// PurgeExpired elimina las revocaciones de sesiones que ya expiraron.
func (s *SessionIssuer) PurgeExpired(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.revoked.PurgeExpired(ctx, s.now())
}

func (s *SessionIssuer) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.QueryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.cfg.QueryTimeout)
}
