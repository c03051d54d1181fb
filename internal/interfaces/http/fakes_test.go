package http_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/componentes-api/internal/application/auth"
	"github.com/jhoicas/componentes-api/internal/domain"
	"github.com/jhoicas/componentes-api/internal/domain/entity"
)

// fakeRevocations almacén de revocaciones en memoria.
type fakeRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	fail    bool
}

func newFakeRevocations() *fakeRevocations {
	return &fakeRevocations{revoked: make(map[string]time.Time)}
}

func (f *fakeRevocations) Revoke(_ context.Context, subjectID string, expiresAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("connection refused")
	}
	f.revoked[subjectID] = expiresAt
	return nil
}

func (f *fakeRevocations) IsRevoked(_ context.Context, subjectID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return false, errors.New("connection refused")
	}
	_, ok := f.revoked[subjectID]
	return ok, nil
}

func (f *fakeRevocations) PurgeExpired(context.Context, time.Time) (int64, error) { return 0, nil }

// fakeAuth AuthService con respuestas configurables.
type fakeAuth struct {
	issuer *auth.SessionIssuer

	identity    *auth.Identity
	loginErr    error
	logoutErr   error
	logoutToken string
	registerRes domain.Result
	registered  []auth.RegisterInput
	deleteRes   domain.Result
	deleteCalls int
}

func (f *fakeAuth) Login(ctx context.Context, _, _ string) (*auth.Identity, *entity.Session, error) {
	if f.loginErr != nil {
		return nil, nil, f.loginErr
	}
	sess, err := f.issuer.Issue(ctx, f.identity.Role)
	if err != nil {
		return nil, nil, err
	}
	return f.identity, sess, nil
}

func (f *fakeAuth) Logout(_ context.Context, token string) error {
	f.logoutToken = token
	return f.logoutErr
}

func (f *fakeAuth) Register(_ context.Context, in auth.RegisterInput) domain.Result {
	f.registered = append(f.registered, in)
	return f.registerRes
}

func (f *fakeAuth) DeleteUser(context.Context, string, string) domain.Result {
	f.deleteCalls++
	return f.deleteRes
}

type priceCall struct {
	id    int64
	price decimal.Decimal
}

// fakeInventory InventoryService que registra las llamadas.
type fakeInventory struct {
	result     domain.Result
	components []entity.Component
	stack      []entity.StackItem
	listErr    error

	priceCalls  []priceCall
	addCalls    int
	updateCalls []int
}

func (f *fakeInventory) calls() int {
	return len(f.priceCalls) + f.addCalls + len(f.updateCalls)
}

func (f *fakeInventory) ChangePrice(_ context.Context, id int64, price decimal.Decimal) domain.Result {
	f.priceCalls = append(f.priceCalls, priceCall{id: id, price: price})
	return f.result
}

func (f *fakeInventory) AddComponent(context.Context, string, decimal.Decimal, int) domain.Result {
	f.addCalls++
	return f.result
}

func (f *fakeInventory) UpdateComponent(_ context.Context, _ int64, quantity int) domain.Result {
	f.updateCalls = append(f.updateCalls, quantity)
	return f.result
}

func (f *fakeInventory) ListComponents(context.Context) ([]entity.Component, error) {
	return f.components, f.listErr
}

func (f *fakeInventory) ListStack(context.Context) ([]entity.StackItem, error) {
	return f.stack, f.listErr
}

func (f *fakeInventory) StackReportPDF(context.Context) ([]byte, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []byte("%PDF-1.3 fake"), nil
}

// fakeRecorder MetricsRecorder en memoria.
type fakeRecorder struct {
	mu        sync.Mutex
	mutations map[string]domain.Result
	logins    []string
}

func (f *fakeRecorder) RecordMutation(op string, res domain.Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mutations == nil {
		f.mutations = make(map[string]domain.Result)
	}
	f.mutations[op] = res
}

func (f *fakeRecorder) RecordLogin(outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins = append(f.logins, outcome)
}
