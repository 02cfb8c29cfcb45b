package registration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/careerhub/internal/app/models"
	"github.com/yigit/careerhub/internal/pkg/apperrors"
)

type fakeAccounts struct {
	mu       sync.Mutex
	requests []AccountRequest
	account  Account
	err      error
	// block, when set, holds CreateAccount until closed.
	block   chan struct{}
	started chan struct{}
}

func (f *fakeAccounts) CreateAccount(ctx context.Context, req AccountRequest) (Account, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	block, started := f.block, f.started
	f.mu.Unlock()

	if started != nil {
		close(started)
	}
	if block != nil {
		<-block
	}
	if f.err != nil {
		return Account{}, f.err
	}
	return f.account, nil
}

type fakeProfiles struct {
	mu       sync.Mutex
	profiles []*models.Profile
	err      error
}

func (f *fakeProfiles) InsertProfile(ctx context.Context, profile *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.profiles = append(f.profiles, profile)
	return nil
}

type fakeScheduler struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	s.delay = d
	s.fn = f
	return func() bool {
		s.stopped = true
		return true
	}
}

func (s *fakeScheduler) fire() {
	if s.fn != nil && !s.stopped {
		s.fn()
	}
}

type recordingNavigator struct {
	destinations []string
}

func (n *recordingNavigator) Navigate(destination string) {
	n.destinations = append(n.destinations, destination)
}

type harness struct {
	accounts  *fakeAccounts
	profiles  *fakeProfiles
	scheduler *fakeScheduler
	navigator *recordingNavigator
	ctrl      *Controller
}

func newHarness(d Draft) *harness {
	h := &harness{
		accounts:  &fakeAccounts{account: Account{ID: "acc-1", AccessToken: "token"}},
		profiles:  &fakeProfiles{},
		scheduler: &fakeScheduler{},
		navigator: &recordingNavigator{},
	}
	h.ctrl = NewController(
		DefaultRules(),
		NewPipeline(h.accounts, h.profiles, "", nil),
		WithDraft(d),
		WithScheduler(h.scheduler),
		WithNavigator(h.navigator),
	)
	return h
}

func TestController_StudentSuccessNavigatesAfterDelay(t *testing.T) {
	h := newHarness(validDraft())

	result, err := h.ctrl.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "acc-1", result.AccountID)
	assert.Equal(t, "/dashboard/student", result.Destination)
	assert.Equal(t, 5*time.Second, result.Delay)
	assert.Equal(t, 5*time.Second, h.scheduler.delay)

	snap := h.ctrl.Snapshot()
	assert.Equal(t, StateSucceeded, snap.State)
	assert.True(t, snap.Succeeded)
	assert.False(t, snap.HasPassword, "passwords are discarded after success")
	assert.Empty(t, h.navigator.destinations, "navigation waits for the delay")

	h.scheduler.fire()
	assert.Equal(t, []string{"/dashboard/student"}, h.navigator.destinations)
	assert.Equal(t, StateNavigated, h.ctrl.Snapshot().State)
}

func TestController_StaffSuccessNavigatesToAdmin(t *testing.T) {
	d := validDraft()
	d.Role = models.RoleStaff
	d.StudentID = ""
	h := newHarness(d)

	result, err := h.ctrl.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/dashboard/admin", result.Destination)

	h.scheduler.fire()
	assert.Equal(t, []string{"/dashboard/admin"}, h.navigator.destinations)
}

func TestController_SendsMetadataAndProfileRow(t *testing.T) {
	h := newHarness(validDraft())

	_, err := h.ctrl.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, h.accounts.requests, 1)
	req := h.accounts.requests[0]
	assert.Equal(t, "ama.mensah@ashesi.edu.gh", req.Email)
	assert.Equal(t, "Abc123!@", req.Password)
	assert.Equal(t, models.RoleIDStudent, req.Metadata.RoleID)
	require.NotNil(t, req.Metadata.StudentID)
	assert.Equal(t, "12342023", *req.Metadata.StudentID)

	require.Len(t, h.profiles.profiles, 1)
	row := h.profiles.profiles[0]
	assert.Equal(t, "acc-1", row.ID)
	assert.Equal(t, "Ama", row.FirstName)
	assert.Equal(t, "Mensah", row.LastName)
	assert.Equal(t, models.RoleIDStudent, row.RoleID)
	assert.Equal(t, DefaultPasswordPlaceholder, row.Password)
	assert.NotEqual(t, "Abc123!@", row.Password)
}

func TestController_StaffSendsNullStudentID(t *testing.T) {
	d := validDraft()
	require.NoError(t, d.UpdateField(FieldRole, "staff"))
	h := newHarness(d)

	_, err := h.ctrl.Submit(context.Background())
	require.NoError(t, err)

	assert.Nil(t, h.accounts.requests[0].Metadata.StudentID)
	assert.Equal(t, models.RoleIDStaff, h.accounts.requests[0].Metadata.RoleID)
	assert.Nil(t, h.profiles.profiles[0].StudentID)
}

func TestController_ValidationFailureSkipsNetwork(t *testing.T) {
	d := validDraft()
	d.ConfirmPassword = "different"
	h := newHarness(d)

	_, err := h.ctrl.Submit(context.Background())
	requireValidationCode(t, err, CodePasswordMismatch)

	assert.Empty(t, h.accounts.requests)
	snap := h.ctrl.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, "Passwords do not match", snap.ErrorMessage)
}

func TestController_AuthFailureSurfacesMessageVerbatim(t *testing.T) {
	h := newHarness(validDraft())
	h.accounts.err = &apperrors.ServiceError{Service: "auth", Status: 422, Message: "User already registered"}

	_, err := h.ctrl.Submit(context.Background())
	require.Error(t, err)

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, StageCreateAccount, subErr.Stage)
	assert.Equal(t, "User already registered", subErr.Message)
	assert.False(t, subErr.Orphaned())

	assert.Empty(t, h.profiles.profiles, "profile insert is not attempted")
	snap := h.ctrl.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, "User already registered", snap.ErrorMessage)
	assert.Nil(t, h.scheduler.fn)
}

func TestController_ProfileInsertFailureFlagsOrphanAndDoesNotNavigate(t *testing.T) {
	h := newHarness(validDraft())
	h.profiles.err = &apperrors.ServiceError{Service: "datastore", Message: `duplicate key value violates unique constraint "users_email_key"`}

	_, err := h.ctrl.Submit(context.Background())

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, StageInsertProfile, subErr.Stage)
	assert.Equal(t, `duplicate key value violates unique constraint "users_email_key"`, subErr.Message)
	assert.True(t, subErr.Orphaned())
	assert.Equal(t, "acc-1", subErr.AccountID)

	snap := h.ctrl.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.False(t, snap.Succeeded)
	assert.Equal(t, subErr.Message, snap.ErrorMessage)
	assert.Nil(t, h.scheduler.fn)
	assert.Empty(t, h.navigator.destinations)
}

func TestController_ResubmitAfterFailure(t *testing.T) {
	h := newHarness(validDraft())
	h.accounts.err = errors.New("network unreachable")

	_, err := h.ctrl.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "network unreachable", h.ctrl.Snapshot().ErrorMessage)

	h.accounts.err = nil
	_, err = h.ctrl.Submit(context.Background())
	require.NoError(t, err)
	assert.Len(t, h.accounts.requests, 2)
	assert.Empty(t, h.ctrl.Snapshot().ErrorMessage)
}

func TestController_RejectsConcurrentSubmit(t *testing.T) {
	h := newHarness(validDraft())
	h.accounts.block = make(chan struct{})
	h.accounts.started = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := h.ctrl.Submit(context.Background())
		done <- err
	}()
	<-h.accounts.started

	assert.Equal(t, StateSubmitting, h.ctrl.Snapshot().State)
	_, err := h.ctrl.Submit(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrSubmissionInProgress)
	assert.ErrorIs(t, h.ctrl.Validate(), apperrors.ErrSubmissionInProgress)

	close(h.accounts.block)
	require.NoError(t, <-done)
	assert.Len(t, h.accounts.requests, 1)
}

func TestController_AbandonDuringSubmitIgnoresResponse(t *testing.T) {
	h := newHarness(validDraft())
	h.accounts.block = make(chan struct{})
	h.accounts.started = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := h.ctrl.Submit(context.Background())
		done <- err
	}()
	<-h.accounts.started

	h.ctrl.Abandon()
	close(h.accounts.block)

	assert.ErrorIs(t, <-done, apperrors.ErrDraftAbandoned)
	snap := h.ctrl.Snapshot()
	assert.False(t, snap.Succeeded)
	assert.Nil(t, h.scheduler.fn, "no navigation is scheduled")
}

func TestController_AbandonDuringSubmitKeepsOrphanedFailure(t *testing.T) {
	h := newHarness(validDraft())
	h.profiles.err = errors.New("permission denied for table users")
	h.accounts.block = make(chan struct{})
	h.accounts.started = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := h.ctrl.Submit(context.Background())
		done <- err
	}()
	<-h.accounts.started

	h.ctrl.Abandon()
	close(h.accounts.block)

	err := <-done
	assert.ErrorIs(t, err, apperrors.ErrDraftAbandoned)
	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.True(t, subErr.Orphaned())
	assert.Equal(t, "acc-1", subErr.AccountID)
	assert.False(t, h.ctrl.Snapshot().Succeeded)
	assert.Nil(t, h.scheduler.fn)
}

func TestController_AbandonCancelsPendingNavigation(t *testing.T) {
	h := newHarness(validDraft())

	_, err := h.ctrl.Submit(context.Background())
	require.NoError(t, err)

	h.ctrl.Abandon()
	assert.True(t, h.scheduler.stopped)

	h.scheduler.fn()
	assert.Empty(t, h.navigator.destinations)
	assert.Equal(t, StateSucceeded, h.ctrl.Snapshot().State)
}

func TestController_ClosedDraftRejectsChanges(t *testing.T) {
	h := newHarness(validDraft())
	_, err := h.ctrl.Submit(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, h.ctrl.UpdateField(FieldEmail, "x@ashesi.edu.gh"), apperrors.ErrAlreadySubmitted)
	_, err = h.ctrl.Submit(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrAlreadySubmitted)

	h.ctrl.Abandon()
	assert.ErrorIs(t, h.ctrl.Validate(), apperrors.ErrDraftAbandoned)
}

func TestController_ValidateSurfacesAndClearsError(t *testing.T) {
	h := newHarness(NewDraft())

	require.NoError(t, h.ctrl.UpdateField(FieldPassword, "Abc123!@"))
	require.NoError(t, h.ctrl.UpdateField(FieldConfirmPassword, "Abc123!@"))
	require.NoError(t, h.ctrl.UpdateField(FieldEmail, "ama@gmail.com"))

	requireValidationCode(t, h.ctrl.Validate(), CodeEmailDomain)
	assert.NotEmpty(t, h.ctrl.Snapshot().ErrorMessage)

	require.NoError(t, h.ctrl.UpdateField(FieldEmail, "ama@ashesi.edu.gh"))
	require.NoError(t, h.ctrl.UpdateField(FieldStudentID, "12342023"))
	require.NoError(t, h.ctrl.Validate())
	assert.Empty(t, h.ctrl.Snapshot().ErrorMessage)
	assert.Empty(t, h.accounts.requests)
}

func TestController_PasswordStrength(t *testing.T) {
	h := newHarness(NewDraft())

	assert.Equal(t, 0, h.ctrl.PasswordStrength().Score)

	require.NoError(t, h.ctrl.UpdateField(FieldPassword, "Abc123!@"))
	strength := h.ctrl.PasswordStrength()
	assert.Equal(t, 3, strength.Score)
	assert.Equal(t, "good", strength.Label)
}

func TestController_WithoutSchedulerReturnsDestinationOnly(t *testing.T) {
	accounts := &fakeAccounts{account: Account{ID: "acc-2"}}
	ctrl := NewController(DefaultRules(), NewPipeline(accounts, &fakeProfiles{}, "", nil),
		WithDraft(validDraft()), WithScheduler(nil))

	result, err := ctrl.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/dashboard/student", result.Destination)
	assert.Equal(t, StateSucceeded, ctrl.Snapshot().State)
}
