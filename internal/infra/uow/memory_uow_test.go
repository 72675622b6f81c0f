//go:build unit

package uow_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/infra/repository"
	"room-booking/internal/infra/uow"
	"room-booking/internal/usecase/shared"
	"room-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW() (shared.UnitOfWork, *repository.ReservationRepository) {
	repo := repository.NewReservationRepository(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return uow.NewMemoryUoW(repo), repo
}

func TestMemoryUoW_Within(t *testing.T) {
	t.Run("success: writes are visible to readers", func(t *testing.T) {
		u, _ := newUoW()
		r := builder.NewReservationBuilder().BuildDomain()

		err := u.Within(context.Background(), func(_ context.Context, tx shared.Tx) error {
			return tx.Reservations().Insert(r)
		})
		require.NoError(t, err)

		var all reservation.List
		err = u.WithinReadOnly(context.Background(), func(_ context.Context, reads shared.ReservationReader) error {
			all = reads.All()
			return nil
		})
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, r.ID(), all[0].ID())
	})

	t.Run("error: fn error is returned as is", func(t *testing.T) {
		u, _ := newUoW()
		boom := errors.New("boom")

		err := u.Within(context.Background(), func(context.Context, shared.Tx) error { return boom })
		assert.ErrorIs(t, err, boom)
	})

	t.Run("error: cancelled context skips fn", func(t *testing.T) {
		u, repo := newUoW()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := u.Within(ctx, func(context.Context, shared.Tx) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
		assert.Equal(t, 0, repo.Len())

		err = u.WithinReadOnly(ctx, func(context.Context, shared.ReservationReader) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}

func TestMemoryUoW_CheckThenInsertIsAtomic(t *testing.T) {
	u, repo := newUoW()
	const workers = 32

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			candidate := builder.NewReservationBuilder().BuildDomain()
			err := u.Within(context.Background(), func(_ context.Context, tx shared.Tx) error {
				repo := tx.Reservations()
				if reservation.HasConflict(repo, candidate.RoomNumber(), candidate.Date()) {
					return nil
				}
				if err := repo.Insert(candidate); err != nil {
					return err
				}
				mu.Lock()
				accepted++
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Equal(t, 1, repo.Len())
}
