package auth_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/componentes-api/internal/domain"
	"github.com/jhoicas/componentes-api/internal/domain/entity"
	"github.com/jhoicas/componentes-api/internal/domain/repository"
)

var errStoreDown = errors.New("connection refused")

// fakeUserRepo almacén de credenciales en memoria. Permite filas duplicadas (insertRaw)
// para ejercitar el caso de coincidencia ambigua.
type fakeUserRepo struct {
	mu    sync.Mutex
	users []entity.User
	fail  bool
	block bool
	calls int
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) enter(ctx context.Context) error {
	r.calls++
	if r.block {
		<-ctx.Done()
		return ctx.Err()
	}
	if r.fail {
		return errStoreDown
	}
	return nil
}

func (r *fakeUserRepo) insertRaw(u entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, u)
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(ctx); err != nil {
		return err
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(ctx); err != nil {
		return nil, err
	}
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) DeleteByCredentials(ctx context.Context, email string, match repository.PasswordMatcher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(ctx); err != nil {
		return err
	}
	var idx []int
	for i, u := range r.users {
		if u.Email == email && match(u.PasswordHash) {
			idx = append(idx, i)
		}
	}
	switch len(idx) {
	case 0:
		return domain.ErrNotFound
	case 1:
		r.users = append(r.users[:idx[0]], r.users[idx[0]+1:]...)
		return nil
	default:
		return domain.ErrAmbiguousMatch
	}
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

// fakeSessionRepo almacén de revocaciones en memoria.
type fakeSessionRepo struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	fail    bool
}

var _ repository.SessionRepository = (*fakeSessionRepo)(nil)

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{revoked: make(map[string]time.Time)}
}

func (r *fakeSessionRepo) Revoke(_ context.Context, subjectID string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errStoreDown
	}
	r.revoked[subjectID] = expiresAt
	return nil
}

func (r *fakeSessionRepo) IsRevoked(_ context.Context, subjectID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return false, errStoreDown
	}
	_, ok := r.revoked[subjectID]
	return ok, nil
}

func (r *fakeSessionRepo) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, exp := range r.revoked {
		if exp.Before(now) {
			delete(r.revoked, id)
			n++
		}
	}
	return n, nil
}

// countingDummy cuenta las comparaciones contra el hash ficticio.
type countingDummy struct {
	mu    sync.Mutex
	calls int
}

func (d *countingDummy) Verify(string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	return false
}

func (d *countingDummy) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}
