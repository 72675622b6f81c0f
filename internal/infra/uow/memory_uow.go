package uow

import (
	"context"
	"sync"

	"room-booking/internal/infra/repository"
	"room-booking/internal/usecase/shared"
)

// MemoryUoW guards a single in-memory repository. Writers are exclusive,
// readers share access.
type MemoryUoW struct {
	mu   sync.RWMutex
	repo *repository.ReservationRepository
}

func NewMemoryUoW(repo *repository.ReservationRepository) shared.UnitOfWork {
	return &MemoryUoW{repo: repo}
}

func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	return fn(ctx, &memTx{repo: u.repo})
}

func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.ReservationReader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	return fn(ctx, u.repo)
}

type memTx struct {
	repo *repository.ReservationRepository
}

func (t *memTx) Reservations() shared.ReservationRepository {
	return t.repo
}
