package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testDraft struct {
	Name  string
	Count int
}

func testSteps() []Step[testDraft] {
	return []Step[testDraft]{
		{
			Name: "identity",
			Validate: func(d *testDraft) FieldErrors {
				errs := FieldErrors{}
				if d.Name == "" {
					errs["name"] = "name is required"
				}
				return errs
			},
		},
		{
			Name: "details",
			Validate: func(d *testDraft) FieldErrors {
				errs := FieldErrors{}
				if d.Count <= 0 {
					errs["count"] = "count must be positive"
				}
				return errs
			},
		},
		{Name: "review", Validate: func(*testDraft) FieldErrors { return nil }},
	}
}

func TestNextGatesOnValidation(t *testing.T) {
	ctrl := NewController(testSteps(), testDraft{})

	errs, advanced := ctrl.Next()
	assert.False(t, advanced)
	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, 1, ctrl.Step())

	// Repeated attempts on an invalid step leave the state untouched.
	for i := 0; i < 3; i++ {
		errs, advanced = ctrl.Next()
		assert.False(t, advanced)
		assert.Len(t, errs, 1)
		assert.Equal(t, 1, ctrl.Step())
	}

	assert.NoError(t, ctrl.Update(func(d *testDraft) { d.Name = "intake" }))

	_, advanced = ctrl.Next()
	assert.True(t, advanced)
	assert.Equal(t, 2, ctrl.Step())
	assert.Equal(t, "details", ctrl.StepName())
}

func TestNextStopsAtTerminalStep(t *testing.T) {
	ctrl := NewController(testSteps(), testDraft{Name: "intake", Count: 2})

	for i := 0; i < 5; i++ {
		ctrl.Next()
	}

	assert.Equal(t, 3, ctrl.Step())
	assert.Equal(t, "review", ctrl.StepName())
}

func TestBackFromFirstStepExits(t *testing.T) {
	ctrl := NewController(testSteps(), testDraft{Name: "intake", Count: 2})

	ctrl.Next()
	assert.True(t, ctrl.Back())
	assert.Equal(t, 1, ctrl.Step())

	assert.False(t, ctrl.Back())
	assert.True(t, ctrl.Finished())

	// A dead session accepts nothing further.
	assert.ErrorIs(t, ctrl.Update(func(d *testDraft) { d.Name = "late" }), ErrFinished)
	_, advanced := ctrl.Next()
	assert.False(t, advanced)
}

func TestSubmitRequiresTerminalStep(t *testing.T) {
	ctrl := NewController(testSteps(), testDraft{Name: "intake", Count: 2})

	_, err := ctrl.Submit(context.Background(), func(context.Context, *testDraft) error { return nil })
	assert.ErrorIs(t, err, ErrNotTerminalStep)
}

func TestSubmitRevalidatesEveryStep(t *testing.T) {
	ctrl := NewController(testSteps(), testDraft{Name: "intake", Count: 2})
	ctrl.Next()
	ctrl.Next()

	// Invalidate a field owned by an earlier, already-passed step.
	assert.NoError(t, ctrl.Update(func(d *testDraft) { d.Name = "" }))

	called := false
	errs, err := ctrl.Submit(context.Background(), func(context.Context, *testDraft) error {
		called = true
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "name is required", errs["name"])
	assert.False(t, called)
	assert.False(t, ctrl.Finished())
}

func TestSubmitRunsOnce(t *testing.T) {
	ctrl := NewController(testSteps(), testDraft{Name: "intake", Count: 2})
	ctrl.Next()
	ctrl.Next()

	started := make(chan struct{})
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex

	go func() {
		_, _ = ctrl.Submit(context.Background(), func(context.Context, *testDraft) error {
			mu.Lock()
			calls++
			mu.Unlock()
			close(started)
			<-release
			return nil
		})
	}()

	<-started

	// Second confirmation while the first is in flight.
	_, err := ctrl.Submit(context.Background(), func(context.Context, *testDraft) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil
	})
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	close(release)
	assert.Eventually(t, ctrl.Finished, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	ctrl := NewController(testSteps(), testDraft{Name: "intake", Count: 2})
	ctrl.Next()
	ctrl.Next()

	_, err := ctrl.Submit(context.Background(), func(context.Context, *testDraft) error {
		return errors.New("connection refused")
	})
	assert.Error(t, err)
	assert.False(t, ctrl.Finished())
	assert.Equal(t, "intake", ctrl.Draft().Name)

	// Retry after the transient failure succeeds.
	_, err = ctrl.Submit(context.Background(), func(context.Context, *testDraft) error { return nil })
	assert.NoError(t, err)
	assert.True(t, ctrl.Finished())
}

func TestSubmitAfterFinishedRejected(t *testing.T) {
	ctrl := NewController(testSteps(), testDraft{Name: "intake", Count: 2})
	ctrl.Next()
	ctrl.Next()

	_, err := ctrl.Submit(context.Background(), func(context.Context, *testDraft) error { return nil })
	assert.NoError(t, err)

	_, err = ctrl.Submit(context.Background(), func(context.Context, *testDraft) error { return nil })
	assert.ErrorIs(t, err, ErrFinished)
}

func TestCancelDiscardsSession(t *testing.T) {
	ctrl := NewController(testSteps(), testDraft{Name: "intake"})
	ctrl.Cancel()

	assert.True(t, ctrl.Finished())
	_, err := ctrl.Submit(context.Background(), func(context.Context, *testDraft) error { return nil })
	assert.ErrorIs(t, err, ErrFinished)
}

func TestStoreSessionLifecycle(t *testing.T) {
	store := NewStore[testDraft](time.Minute)

	id, ctrl := store.Create(testSteps(), testDraft{Name: "seeded"})
	assert.NotEmpty(t, id)
	assert.Equal(t, "seeded", ctrl.Draft().Name)

	got, ok := store.Get(id)
	assert.True(t, ok)
	assert.Same(t, ctrl, got)

	_, ok = store.Get("no-such-session")
	assert.False(t, ok)

	store.Delete(id)
	_, ok = store.Get(id)
	assert.False(t, ok)
}

func TestStoreSweepDropsStaleAndFinishedSessions(t *testing.T) {
	store := NewStore[testDraft](time.Minute)
	defer store.Close()

	staleID, _ := store.Create(testSteps(), testDraft{Name: "stale"})
	liveID, _ := store.Create(testSteps(), testDraft{Name: "live"})
	doneID, done := store.Create(testSteps(), testDraft{Name: "done"})
	done.Cancel()

	store.mu.Lock()
	store.sessions[staleID].touched = time.Now().Add(-2 * time.Minute)
	store.mu.Unlock()

	store.sweep(time.Now().Add(-time.Minute))

	_, ok := store.Get(staleID)
	assert.False(t, ok)
	_, ok = store.Get(doneID)
	assert.False(t, ok)
	_, ok = store.Get(liveID)
	assert.True(t, ok)
}

func TestStoreCloseStopsSweeper(t *testing.T) {
	store := NewStore[testDraft](time.Minute)

	store.Close()
	store.Close()

	select {
	case <-store.stop:
	default:
		t.Fatal("expected stop channel to be closed")
	}

	id, _ := store.Create(testSteps(), testDraft{Name: "after-close"})
	_, ok := store.Get(id)
	assert.True(t, ok)
}
