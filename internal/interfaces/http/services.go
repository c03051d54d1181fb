package http

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/componentes-api/internal/application/auth"
	"github.com/jhoicas/componentes-api/internal/domain"
	"github.com/jhoicas/componentes-api/internal/domain/entity"
)

// AuthService lo implementa *auth.AuthUseCase.
type AuthService interface {
	Login(ctx context.Context, email, pass string) (*auth.Identity, *entity.Session, error)
	Logout(ctx context.Context, token string) error
	Register(ctx context.Context, in auth.RegisterInput) domain.Result
	DeleteUser(ctx context.Context, email, pass string) domain.Result
}

// SessionVerifier lo implementa *auth.SessionIssuer.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*entity.Session, error)
}

// InventoryService lo implementa *inventory.InventoryUseCase.
type InventoryService interface {
	ChangePrice(ctx context.Context, id int64, price decimal.Decimal) domain.Result
	AddComponent(ctx context.Context, name string, price decimal.Decimal, maxQuantity int) domain.Result
	UpdateComponent(ctx context.Context, id int64, quantity int) domain.Result
	ListComponents(ctx context.Context) ([]entity.Component, error)
	ListStack(ctx context.Context) ([]entity.StackItem, error)
	StackReportPDF(ctx context.Context) ([]byte, error)
}

// MetricsRecorder lo implementa *metrics.Collector. Opcional.
type MetricsRecorder interface {
	RecordMutation(op string, res domain.Result)
	RecordLogin(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordMutation(string, domain.Result) {}
func (nopRecorder) RecordLogin(string)                   {}
