package inventory_test

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/componentes-api/internal/domain"
	"github.com/jhoicas/componentes-api/internal/domain/entity"
	"github.com/jhoicas/componentes-api/internal/domain/repository"
)

var errStoreDown = errors.New("connection refused")

// fakeStore almacén en memoria con bloqueo por fila, equivalente a SELECT FOR UPDATE.
type fakeStore struct {
	mu     sync.Mutex
	rows   map[int64]entity.Component
	locks  map[int64]*sync.Mutex
	nextID int64
	fail   bool
	calls  int
}

var (
	_ repository.ComponentRepository = (*fakeStore)(nil)
	_ repository.StackRepository     = (*fakeStore)(nil)
)

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[int64]entity.Component), locks: make(map[int64]*sync.Mutex)}
}

func (s *fakeStore) rowLock(id int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

func (s *fakeStore) enter() error {
	s.calls++
	if s.fail {
		return errStoreDown
	}
	return nil
}

func (s *fakeStore) get(id int64) (entity.Component, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.rows[id]
	return c, ok
}

func (s *fakeStore) Create(_ context.Context, c *entity.Component) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return err
	}
	for _, r := range s.rows {
		if r.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	s.nextID++
	c.ID = s.nextID
	s.rows[c.ID] = *c
	return nil
}

func (s *fakeStore) UpdatePrice(_ context.Context, id int64, price decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return err
	}
	c, ok := s.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.UnitPrice = price
	s.rows[id] = c
	return nil
}

func (s *fakeStore) GetForUpdate(_ context.Context, id int64) (*entity.Component, error) {
	c, ok := s.get(id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *fakeStore) SetQuantity(_ context.Context, id int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return err
	}
	c, ok := s.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Quantity = quantity
	s.rows[id] = c
	return nil
}

func (s *fakeStore) List(_ context.Context) ([]entity.Component, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return nil, err
	}
	var list []entity.Component
	for id := int64(1); id <= s.nextID; id++ {
		if c, ok := s.rows[id]; ok {
			list = append(list, c)
		}
	}
	return list, nil
}

func (s *fakeStore) ListStack(ctx context.Context) ([]entity.StackItem, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var items []entity.StackItem
	for _, c := range list {
		if c.Quantity > 0 {
			items = append(items, entity.StackItem{ComponentID: c.ID, ComponentName: c.Name, Quantity: c.Quantity, MaxQuantity: c.MaxQuantity})
		}
	}
	return items, nil
}

// fakeTx repositorio atado a una "transacción": GetForUpdate toma el bloqueo de la fila
// hasta que Run termina.
type fakeTx struct {
	*fakeStore
	held []*sync.Mutex
}

func (tx *fakeTx) GetForUpdate(ctx context.Context, id int64) (*entity.Component, error) {
	l := tx.rowLock(id)
	locked := make(chan struct{})
	go func() {
		l.Lock()
		close(locked)
	}()
	select {
	case <-locked:
	case <-ctx.Done():
		go func() { <-locked; l.Unlock() }()
		return nil, ctx.Err()
	}
	tx.held = append(tx.held, l)
	return tx.fakeStore.GetForUpdate(ctx, id)
}

type fakeTxRunner struct{ store *fakeStore }

func (r fakeTxRunner) Run(ctx context.Context, fn func(components repository.ComponentRepository) error) error {
	tx := &fakeTx{fakeStore: r.store}
	defer func() {
		for _, l := range tx.held {
			l.Unlock()
		}
	}()
	return fn(tx)
}

// fakeReport generador de PDF que registra los ítems recibidos.
type fakeReport struct{ items []entity.StackItem }

func (f *fakeReport) GenerateStackReport(_ context.Context, items []entity.StackItem) ([]byte, error) {
	f.items = items
	return []byte("%PDF-fake"), nil
}
