package wizard

import (
	"context"
	"errors"
	"sync"
)

// FieldErrors maps a field name to a single validation message.
type FieldErrors map[string]string

// Step is one stage of a stepped form. Validate inspects the accumulated
// draft and returns the errors for the fields this step owns.
type Step[T any] struct {
	Name     string
	Validate func(draft *T) FieldErrors
}

// SubmitFunc performs the one terminal submission of the finished draft.
type SubmitFunc[T any] func(ctx context.Context, draft *T) error

var (
	// ErrNotTerminalStep is returned when Submit is called before the last step.
	ErrNotTerminalStep = errors.New("submit is only available on the final step")
	// ErrSubmitInProgress is returned while a previous Submit is still running.
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	// ErrFinished is returned once the wizard has submitted or been cancelled.
	ErrFinished = errors.New("wizard session is finished")
)

// Controller drives one stepped form: it accumulates a draft across steps,
// gates forward navigation on the active step's validation and guarantees the
// terminal submission runs at most once per confirmation.
//
// The same controller backs the inward, programmer and QA forms; only the
// draft type and step validators differ.
type Controller[T any] struct {
	mu         sync.Mutex
	steps      []Step[T]
	step       int // 1-based
	draft      T
	submitting bool
	finished   bool
}

// NewController starts a wizard at step 1 with the given seed draft.
func NewController[T any](steps []Step[T], seed T) *Controller[T] {
	if len(steps) == 0 {
		panic("wizard: need at least one step")
	}
	return &Controller[T]{steps: steps, step: 1, draft: seed}
}

// Step returns the 1-based index of the active step.
func (c *Controller[T]) Step() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

func (c *Controller[T]) StepName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steps[c.step-1].Name
}

func (c *Controller[T]) TotalSteps() int {
	return len(c.steps)
}

// Draft returns a copy of the accumulated payload.
func (c *Controller[T]) Draft() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Update mutates the draft under the controller lock. Edits after the wizard
// finished are dropped; a late update from an abandoned client must not
// resurrect the session.
func (c *Controller[T]) Update(fn func(*T)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.finished {
		return ErrFinished
	}
	if c.submitting {
		return ErrSubmitInProgress
	}
	fn(&c.draft)
	return nil
}

// Next validates the active step and advances on success. When validation
// fails the step index stays put and the per-field errors are returned;
// repeated calls on an invalid step are idempotent. Advancing past the last
// step is a no-op so the caller lands on the terminal step at most.
func (c *Controller[T]) Next() (FieldErrors, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.finished || c.submitting {
		return nil, false
	}

	if errs := c.steps[c.step-1].Validate(&c.draft); len(errs) > 0 {
		return errs, false
	}

	if c.step < len(c.steps) {
		c.step++
	}
	return nil, true
}

// Back moves one step towards the start. From step 1 it cancels the wizard
// entirely and reports false so the caller can hand control back to the
// parent view.
func (c *Controller[T]) Back() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.finished || c.submitting {
		return false
	}

	if c.step > 1 {
		c.step--
		return true
	}

	c.finished = true
	return false
}

// Cancel discards the session. The draft is not persisted anywhere.
func (c *Controller[T]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.finished = true
}

// Submit re-validates every step's fields and then runs fn exactly once.
// A second Submit while fn is in flight returns ErrSubmitInProgress without
// touching the network. On failure the submitting flag clears and the draft
// is kept so the user can resubmit without re-entering data.
func (c *Controller[T]) Submit(ctx context.Context, fn SubmitFunc[T]) (FieldErrors, error) {
	c.mu.Lock()
	if c.finished {
		c.mu.Unlock()
		return nil, ErrFinished
	}
	if c.submitting {
		c.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	if c.step != len(c.steps) {
		c.mu.Unlock()
		return nil, ErrNotTerminalStep
	}

	// Per-step gates can be stale by the time the user confirms, check the
	// whole draft again before anything leaves the process.
	allErrs := FieldErrors{}
	for _, step := range c.steps {
		for field, msg := range step.Validate(&c.draft) {
			if _, taken := allErrs[field]; !taken {
				allErrs[field] = msg
			}
		}
	}
	if len(allErrs) > 0 {
		c.mu.Unlock()
		return allErrs, nil
	}

	c.submitting = true
	draft := c.draft
	c.mu.Unlock()

	err := fn(ctx, &draft)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.submitting = false
		return nil, err
	}

	c.finished = true
	return nil, nil
}

// Finished reports whether the session reached a terminal state.
func (c *Controller[T]) Finished() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finished
}
