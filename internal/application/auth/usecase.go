package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/componentes-api/internal/domain"
	"github.com/jhoicas/componentes-api/internal/domain/entity"
	"github.com/jhoicas/componentes-api/internal/domain/repository"
	"github.com/jhoicas/componentes-api/pkg/logger"
	"github.com/jhoicas/componentes-api/pkg/password"
)

// Config parámetros del caso de uso de auth.
type Config struct {
	BcryptCost   int
	QueryTimeout time.Duration
}

// Identity resultado de una autenticación exitosa.
type Identity struct {
	Name string
	Role entity.Role
}

// RegisterInput datos de un nuevo usuario. La contraseña llega en claro y se hashea aquí.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// DummyVerifier comparación ficticia para cuando el email no existe. Lo implementa *password.Dummy.
type DummyVerifier interface {
	Verify(pass string) bool
}

// Option configura un AuthUseCase.
type Option func(*AuthUseCase)

// WithDummyVerifier reemplaza la comparación ficticia.
func WithDummyVerifier(d DummyVerifier) Option {
	return func(uc *AuthUseCase) { uc.dummy = d }
}

// AuthUseCase casos de uso de autenticación: login, logout, registro y baja de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions *SessionIssuer
	cfg      Config
	dummy    DummyVerifier
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth. El hash ficticio se genera con cfg.BcryptCost.
func NewAuthUseCase(userRepo repository.UserRepository, sessions *SessionIssuer, cfg Config, log *logger.Logger, opts ...Option) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &AuthUseCase{userRepo: userRepo, sessions: sessions, cfg: cfg, log: log.Named("auth"), now: time.Now}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.dummy == nil {
		uc.dummy = password.NewDummy(cfg.BcryptCost)
	}
	return uc
}

// Authenticate verifica email/password.
// Email desconocido y contraseña incorrecta devuelven el mismo domain.ErrUserNotFound;
// un fallo del almacén devuelve un error que envuelve domain.ErrBackend.
func (uc *AuthUseCase) Authenticate(ctx context.Context, email, pass string) (*Identity, error) {
	email = entity.NormalizeEmail(email)
	if email == "" || pass == "" {
		return nil, domain.ErrInvalidInput
	}
	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: buscar usuario: %w", domain.ErrBackend, err)
	}
	if user == nil {
		uc.dummy.Verify(pass)
		return nil, domain.ErrUserNotFound
	}
	if !password.Verify(pass, user.PasswordHash) {
		return nil, domain.ErrUserNotFound
	}
	return &Identity{Name: user.Name, Role: user.Role}, nil
}

// Login autentica y emite una sesión nueva con el rol del usuario.
func (uc *AuthUseCase) Login(ctx context.Context, email, pass string) (*Identity, *entity.Session, error) {
	id, err := uc.Authenticate(ctx, email, pass)
	if err != nil {
		if errors.Is(err, domain.ErrBackend) {
			uc.log.Error().Err(err).Str("op", "login").Msg("almacén de credenciales no disponible")
		}
		return nil, nil, err
	}
	session, err := uc.sessions.Issue(ctx, id.Role)
	if err != nil {
		return nil, nil, err
	}
	return id, session, nil
}

// Logout revoca la sesión. Idempotente.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	return uc.sessions.Revoke(ctx, token)
}

// Register crea un usuario y devuelve el resultado completo de la taxonomía.
// Email duplicado o rol desconocido -> ConflictOrConstraintViolation.
func (uc *AuthUseCase) Register(ctx context.Context, in RegisterInput) domain.Result {
	email := entity.NormalizeEmail(in.Email)
	role, ok := entity.ParseRole(in.Role)
	if email == "" || in.Password == "" || !ok || len(in.Password) > password.MaxBytes {
		return uc.report("register", domain.ErrInvalidInput)
	}
	hash, err := password.Hash(in.Password, uc.cfg.BcryptCost)
	if errors.Is(err, password.ErrTooLong) {
		return uc.report("register", fmt.Errorf("%w: %w", domain.ErrInvalidInput, err))
	}
	if err != nil {
		return uc.report("register", fmt.Errorf("%w: hash: %w", domain.ErrBackend, err))
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()
	return uc.report("register", uc.userRepo.Create(ctx, user))
}

// RegisterUser contrato booleano del registro: true solo si el usuario quedó creado.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, name, email, pass, role string) bool {
	return uc.Register(ctx, RegisterInput{Name: name, Email: email, Password: pass, Role: role}).IsOk()
}

// DeleteUser borra el usuario cuyo email y contraseña coinciden.
// La contraseña se verifica dentro del predicado de borrado. Si ningún usuario tiene ese
// email se compara contra el hash ficticio, como en Authenticate.
func (uc *AuthUseCase) DeleteUser(ctx context.Context, email, pass string) domain.Result {
	email = entity.NormalizeEmail(email)
	if email == "" || pass == "" {
		return domain.NoRecordAffected
	}
	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()
	compared := false
	err := uc.userRepo.DeleteByCredentials(ctx, email, func(hash string) bool {
		compared = true
		return password.Verify(pass, hash)
	})
	if !compared && errors.Is(err, domain.ErrNotFound) {
		uc.dummy.Verify(pass)
	}
	return uc.report("delete_user", err)
}

func (uc *AuthUseCase) report(op string, err error) domain.Result {
	res := domain.ResultOf(err)
	switch res {
	case domain.Ok:
	case domain.BackendFailure:
		uc.log.Error().Err(err).Str("op", op).Str("result", res.String()).Msg("mutación fallida")
	default:
		uc.log.Info().Err(err).Str("op", op).Str("result", res.String()).Msg("mutación rechazada")
	}
	return res
}

func (uc *AuthUseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.cfg.QueryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, uc.cfg.QueryTimeout)
}
