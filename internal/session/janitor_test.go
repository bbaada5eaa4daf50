package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Janitor, *MockSessionRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockSessionRepo(ctrl)
	janitor := NewJanitor(repo, 10*time.Millisecond)
	defer ctrl.Finish()
	return janitor, repo
}

func TestJanitorPurgesOnTick(t *testing.T) {
	janitor, repo := NewMock(t)

	var once sync.Once
	purged := make(chan struct{})
	repo.EXPECT().
		DeleteExpired(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (int64, error) {
			once.Do(func() { close(purged) })
			return 3, nil
		}).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	janitor.Start(ctx)

	select {
	case <-purged:
	case <-time.After(time.Second):
		t.Fatal("expected a purge within a second")
	}
}

func TestJanitorStopsOnCancel(t *testing.T) {
	janitor, repo := NewMock(t)

	repo.EXPECT().
		DeleteExpired(gomock.Any()).
		Return(int64(0), nil).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	janitor.Start(ctx)
	cancel()

	// the loop exits without further DeleteExpired calls once the
	// context is canceled; give it a moment to observe the cancel.
	time.Sleep(50 * time.Millisecond)
}

func TestJanitorKeepsRunningAfterError(t *testing.T) {
	janitor, repo := NewMock(t)

	calls := make(chan struct{}, 2)
	first := repo.EXPECT().
		DeleteExpired(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (int64, error) {
			calls <- struct{}{}
			return 0, errors.New("db down")
		})
	repo.EXPECT().
		DeleteExpired(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (int64, error) {
			select {
			case calls <- struct{}{}:
			default:
			}
			return 2, nil
		}).
		After(first).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	janitor.Start(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("expected the janitor to keep ticking after an error")
		}
	}
}
