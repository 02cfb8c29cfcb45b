package registration

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/yigit/careerhub/internal/app/models"
	"github.com/yigit/careerhub/internal/pkg/apperrors"
	"github.com/yigit/careerhub/internal/pkg/validation"
)

// State is the position of a draft in its submission lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateNavigated  State = "navigated"
)

// Result describes a successful submission.
type Result struct {
	AccountID   string
	AccessToken string
	Role        models.Role
	Destination string
	Delay       time.Duration
}

// Snapshot is a read-only view of a controller. It never contains passwords.
type Snapshot struct {
	Email        string
	FirstName    string
	LastName     string
	Role         models.Role
	StudentID    string
	HasPassword  bool
	State        State
	ErrorMessage string
	Succeeded    bool
	AccountID    string
	Destination  string
}

// Controller owns one draft and drives it through validation and submission.
// Only one submission runs at a time; the lock is never held across the
// pipeline's network calls.
type Controller struct {
	mu sync.Mutex

	draft        Draft
	state        State
	errorMessage string
	succeeded    bool
	accountID    string
	destination  string
	abandoned    bool
	stopNav      func() bool

	rules        Rules
	pipeline     *Pipeline
	destinations Destinations
	navigator    Navigator
	scheduler    Scheduler
}

// Option customises a Controller.
type Option func(*Controller)

// WithDestinations overrides the role landing views and the navigation delay.
func WithDestinations(d Destinations) Option {
	return func(c *Controller) {
		c.destinations = d
	}
}

// WithNavigator sets who is told to navigate once the delay has passed.
func WithNavigator(n Navigator) Option {
	return func(c *Controller) {
		c.navigator = n
	}
}

// WithScheduler replaces the timer used for delayed navigation.
// A nil scheduler disables delayed navigation; callers then act on Result themselves.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		c.scheduler = s
	}
}

// WithDraft starts the controller from a filled-in draft instead of an empty one.
func WithDraft(d Draft) Option {
	return func(c *Controller) {
		c.draft = d
	}
}

// NewController creates a controller holding an empty draft.
func NewController(rules Rules, pipeline *Pipeline, opts ...Option) *Controller {
	c := &Controller{
		draft:        NewDraft(),
		state:        StateIdle,
		rules:        rules,
		pipeline:     pipeline,
		destinations: DefaultDestinations(),
		scheduler:    TimeScheduler(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// checkOpen returns an error when the draft can no longer be used. Caller holds mu.
func (c *Controller) checkOpen() error {
	switch {
	case c.abandoned:
		return apperrors.ErrDraftAbandoned
	case c.succeeded:
		return apperrors.ErrAlreadySubmitted
	}
	return nil
}

// UpdateField sets one draft field. No validation runs here.
func (c *Controller) UpdateField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkOpen(); err != nil {
		return err
	}
	return c.draft.UpdateField(name, value)
}

// PasswordStrength scores the current password for display.
func (c *Controller) PasswordStrength() validation.Strength {
	c.mu.Lock()
	password := c.draft.Password
	c.mu.Unlock()

	return c.rules.PasswordStrength(password)
}

// Validate runs the submission-time checks without submitting. A failure is
// surfaced as the draft's error message; success clears it.
func (c *Controller) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkOpen(); err != nil {
		return err
	}
	if c.state == StateSubmitting {
		return apperrors.ErrSubmissionInProgress
	}

	return c.validateLocked()
}

// validateLocked moves Idle -> Validating -> Idle. Caller holds mu.
func (c *Controller) validateLocked() error {
	c.state = StateValidating
	err := c.rules.Validate(c.draft)
	c.state = StateIdle
	if err != nil {
		c.errorMessage = err.Error()
		return err
	}
	c.errorMessage = ""
	return nil
}

// Submit validates the draft and, if it passes, runs the pipeline. Any failure
// returns the draft to idle with the error shown, and the user may resubmit.
// On success navigation to the role's destination is scheduled after the delay.
func (c *Controller) Submit(ctx context.Context) (Result, error) {
	c.mu.Lock()
	if err := c.checkOpen(); err != nil {
		c.mu.Unlock()
		return Result{}, err
	}
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return Result{}, apperrors.ErrSubmissionInProgress
	}
	if err := c.validateLocked(); err != nil {
		c.mu.Unlock()
		return Result{}, err
	}
	c.state = StateSubmitting
	draft := c.draft
	c.mu.Unlock()

	outcome, err := c.pipeline.Run(ctx, draft)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Navigated away while the calls were in flight: the response is dropped,
	// but a pipeline failure is still reported so an orphaned account is seen.
	if c.abandoned {
		if err != nil {
			return Result{}, errors.Join(apperrors.ErrDraftAbandoned, err)
		}
		return Result{}, apperrors.ErrDraftAbandoned
	}

	if err != nil {
		c.state = StateIdle
		var subErr *SubmissionError
		if errors.As(err, &subErr) {
			c.errorMessage = subErr.Message
		} else {
			c.errorMessage = err.Error()
		}
		return Result{}, err
	}

	c.state = StateSucceeded
	c.succeeded = true
	c.errorMessage = ""
	c.accountID = outcome.Account.ID
	c.destination = c.destinations.For(draft.Role)
	c.draft = c.draft.withoutSecrets()

	if c.scheduler != nil {
		c.stopNav = c.scheduler.AfterFunc(c.destinations.Delay, c.navigate)
	}

	return Result{
		AccountID:   outcome.Account.ID,
		AccessToken: outcome.Account.AccessToken,
		Role:        draft.Role,
		Destination: c.destination,
		Delay:       c.destinations.Delay,
	}, nil
}

func (c *Controller) navigate() {
	c.mu.Lock()
	if c.abandoned || c.state != StateSucceeded {
		c.mu.Unlock()
		return
	}
	c.state = StateNavigated
	destination := c.destination
	navigator := c.navigator
	c.mu.Unlock()

	if navigator != nil {
		navigator.Navigate(destination)
	}
}

// Abandon is the user leaving the page: a pending navigation is cancelled and
// the response of an in-flight submission will be ignored.
func (c *Controller) Abandon() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.abandoned = true
	if c.stopNav != nil {
		c.stopNav()
		c.stopNav = nil
	}
}

// Snapshot returns the current state of the draft.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Email:        c.draft.Email,
		FirstName:    c.draft.FirstName,
		LastName:     c.draft.LastName,
		Role:         c.draft.Role,
		StudentID:    c.draft.StudentID,
		HasPassword:  c.draft.Password != "",
		State:        c.state,
		ErrorMessage: c.errorMessage,
		Succeeded:    c.succeeded,
		AccountID:    c.accountID,
		Destination:  c.destination,
	}
}
