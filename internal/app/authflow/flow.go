// Package authflow drives the onboarding state machine: splash to either
// login or registration, registration through location capture and OTP
// verification, and finally into the app. Each step validates its own
// inputs and only a successful submission advances the flow; registration
// details accumulate across steps and are discarded on logout.
package authflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"

	"leaguehub/internal/app/catalog"
	"leaguehub/internal/app/session"
	"leaguehub/internal/domain/users"
	"leaguehub/internal/logging"
	"leaguehub/internal/metrics"
)

// Step is a screen of the onboarding flow.
type Step string

const (
	StepSplash   Step = "SPLASH"
	StepLogin    Step = "LOGIN"
	StepRegister Step = "REGISTER"
	StepLocation Step = "LOCATION"
	StepOTP      Step = "OTP"
	StepApp      Step = "APP"
)

var (
	// ErrInvalidStep indicates an operation called from the wrong step.
	ErrInvalidStep = errors.New("operation not valid in current step")
	// ErrEmptyCredentials indicates a login submission with a blank field.
	ErrEmptyCredentials = errors.New("email and password are required")
	// ErrMissingContact indicates a registration submission with a blank field.
	ErrMissingContact = errors.New("name and mobile number are required")
	// ErrRoleNotChosen indicates the registration role sub-step was skipped.
	ErrRoleNotChosen = errors.New("role not chosen")
	// ErrInvalidOTP indicates a code that is not exactly four digits.
	ErrInvalidOTP = errors.New("code must be four digits")
)

// ContactInfo is the first registration sub-step.
type ContactInfo struct {
	Name   string
	Mobile string
}

// RegistrationInfo accumulates across the registration sub-steps.
type RegistrationInfo struct {
	ContactInfo
	Role users.Role
}

// LocationSelection is the location step's input.
type LocationSelection struct {
	DistrictID string
	VillageID  string
	Area       string
}

// Flow is the onboarding state machine.
type Flow struct {
	mu   sync.Mutex
	step Step

	// Registration accumulators, cleared when the flow completes or resets.
	reg      RegistrationInfo
	roleSet  bool
	location LocationSelection

	sessions *session.Service
	catalog  *catalog.Service
	logger   *slog.Logger
	recorder *metrics.Recorder

	newID func() string
}

// New constructs a flow at the splash step.
func New(sessions *session.Service, cat *catalog.Service, logger *slog.Logger, recorder *metrics.Recorder) *Flow {
	return &Flow{
		step:     StepSplash,
		sessions: sessions,
		catalog:  cat,
		logger:   logger,
		recorder: recorder,
		newID:    uuid.NewString,
	}
}

// Step returns the current step.
func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Registration returns the accumulated registration details and whether the
// role sub-step has been completed.
func (f *Flow) Registration() (RegistrationInfo, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reg, f.roleSet
}

// Restore short-circuits the flow to the app when a persisted session
// exists. It is called once at startup, before any user interaction.
func (f *Flow) Restore(ctx context.Context) (bool, error) {
	profile, ok, err := f.sessions.Restore(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	f.transition(StepApp)
	logging.Info(f.logger, "session restored",
		slog.String(logging.FieldRole, string(profile.Role)))
	return true, nil
}

// BeginLogin moves from splash to the login step.
func (f *Flow) BeginLogin() error {
	return f.advance(StepSplash, StepLogin)
}

// BeginRegister moves from splash to the registration step.
func (f *Flow) BeginRegister() error {
	return f.advance(StepSplash, StepRegister)
}

// Back retreats one step. Within registration the role sub-step falls back
// to the contact sub-step before leaving the screen. Backing out of the
// flow discards everything accumulated so far.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.step {
	case StepLogin:
		f.toLocked(StepSplash)
	case StepRegister:
		if f.roleSet {
			f.roleSet = false
			f.reg.Role = ""
			return nil
		}
		f.reg = RegistrationInfo{}
		f.toLocked(StepSplash)
	case StepLocation:
		f.toLocked(StepRegister)
	case StepOTP:
		f.toLocked(StepLocation)
	default:
		return fmt.Errorf("%w: back from %s", ErrInvalidStep, f.step)
	}
	return nil
}

// SubmitLogin signs in with the demo identity. Any non-empty credential
// pair succeeds; there is no account verification in this deployment.
func (f *Flow) SubmitLogin(ctx context.Context, email, password string) (users.Profile, error) {
	if err := f.require(StepLogin); err != nil {
		return users.Profile{}, err
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return users.Profile{}, ErrEmptyCredentials
	}

	profile := users.Profile{
		ID:     "u1",
		Name:   "Demo User",
		Email:  "user@leaguehub.in",
		Role:   users.RoleViewer,
		Status: users.StatusApproved,
	}
	if err := f.sessions.Establish(ctx, profile); err != nil {
		return users.Profile{}, err
	}

	f.transition(StepApp)
	return profile, nil
}

// SubmitContact records the contact sub-step of registration.
func (f *Flow) SubmitContact(info ContactInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepRegister {
		return fmt.Errorf("%w: contact from %s", ErrInvalidStep, f.step)
	}
	if strings.TrimSpace(info.Name) == "" || strings.TrimSpace(info.Mobile) == "" {
		return ErrMissingContact
	}
	f.reg.ContactInfo = info
	return nil
}

// ChooseRole records the role sub-step and advances to location capture.
// The contact sub-step must have been completed first.
func (f *Flow) ChooseRole(role users.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepRegister {
		return fmt.Errorf("%w: role from %s", ErrInvalidStep, f.step)
	}
	if f.reg.Name == "" {
		return ErrMissingContact
	}
	if !role.Valid() {
		return session.ErrInvalidRole
	}
	f.reg.Role = role
	f.roleSet = true
	f.toLocked(StepLocation)
	return nil
}

// SubmitLocation validates the selection against the catalog and advances
// to OTP verification.
func (f *Flow) SubmitLocation(sel LocationSelection) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepLocation {
		return fmt.Errorf("%w: location from %s", ErrInvalidStep, f.step)
	}
	if err := f.catalog.ValidateSelection(sel.DistrictID, sel.VillageID); err != nil {
		return err
	}
	f.location = sel
	f.toLocked(StepOTP)
	return nil
}

// VerifyOTP accepts any four-digit code, creates the registered profile,
// and completes the flow. The accumulated registration state is cleared.
func (f *Flow) VerifyOTP(ctx context.Context, code string) (users.Profile, error) {
	if err := f.require(StepOTP); err != nil {
		return users.Profile{}, err
	}
	if !validOTP(code) {
		return users.Profile{}, ErrInvalidOTP
	}

	f.mu.Lock()
	if !f.roleSet {
		f.mu.Unlock()
		return users.Profile{}, ErrRoleNotChosen
	}
	profile := users.Profile{
		ID:         f.newID(),
		Name:       f.reg.Name,
		Email:      "user@example.com",
		Role:       f.reg.Role,
		Status:     users.DefaultStatusFor(f.reg.Role),
		DistrictID: f.location.DistrictID,
		VillageID:  f.location.VillageID,
		Area:       f.location.Area,
	}
	f.mu.Unlock()

	if err := f.sessions.Establish(ctx, profile); err != nil {
		return users.Profile{}, err
	}

	f.mu.Lock()
	f.reg = RegistrationInfo{}
	f.roleSet = false
	f.location = LocationSelection{}
	f.mu.Unlock()

	f.transition(StepApp)
	logging.Info(f.logger, "registration complete",
		slog.String(logging.FieldRole, string(profile.Role)),
		slog.String("status", string(profile.Status)))
	return profile, nil
}

// Logout clears the session and resets the flow to splash.
func (f *Flow) Logout(ctx context.Context) error {
	if err := f.require(StepApp); err != nil {
		return err
	}
	f.sessions.Clear(ctx)

	f.mu.Lock()
	f.reg = RegistrationInfo{}
	f.roleSet = false
	f.location = LocationSelection{}
	f.mu.Unlock()

	f.transition(StepSplash)
	return nil
}

func validOTP(code string) bool {
	if len(code) != 4 {
		return false
	}
	for _, r := range code {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (f *Flow) require(step Step) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != step {
		return fmt.Errorf("%w: need %s, at %s", ErrInvalidStep, step, f.step)
	}
	return nil
}

// advance moves from one step to another, failing when not at the
// expected origin.
func (f *Flow) advance(from, to Step) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != from {
		return fmt.Errorf("%w: need %s, at %s", ErrInvalidStep, from, f.step)
	}
	f.toLocked(to)
	return nil
}

// transition moves to a step without an origin check; used where the
// origin was already validated outside the lock.
func (f *Flow) transition(to Step) {
	f.mu.Lock()
	f.toLocked(to)
	f.mu.Unlock()
}

// toLocked records the step change; callers hold the lock.
func (f *Flow) toLocked(to Step) {
	from := f.step
	f.step = to
	f.recorder.RecordAuthTransition(string(from), string(to))
	logging.Info(f.logger, "auth step changed",
		slog.String(logging.FieldStep, string(to)), slog.String("from", string(from)))
}
