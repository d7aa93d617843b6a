package authflow

import (
	"context"
	"errors"
	"testing"

	"leaguehub/internal/app/catalog"
	"leaguehub/internal/app/session"
	"leaguehub/internal/domain/locations"
	"leaguehub/internal/domain/users"
	"leaguehub/internal/metrics"
	"leaguehub/internal/storage/memory"
)

func newFlow(t *testing.T) (*Flow, *session.Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	sessions := session.NewService(store, nil, nil)
	f := New(sessions, catalog.NewService(), nil, metrics.NewRecorder())
	f.newID = func() string { return "fixed-id" }
	return f, sessions, store
}

func registerTo(t *testing.T, f *Flow, role users.Role, step Step) {
	t.Helper()
	if err := f.BeginRegister(); err != nil {
		t.Fatalf("BeginRegister: %v", err)
	}
	if step == StepRegister {
		return
	}
	if err := f.SubmitContact(ContactInfo{Name: "Priya", Mobile: "9876543210"}); err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}
	if err := f.ChooseRole(role); err != nil {
		t.Fatalf("ChooseRole: %v", err)
	}
	if step == StepLocation {
		return
	}
	sel := LocationSelection{DistrictID: locations.DistrictID("Salem"), VillageID: "v_attur"}
	if err := f.SubmitLocation(sel); err != nil {
		t.Fatalf("SubmitLocation: %v", err)
	}
}

func TestStartsAtSplash(t *testing.T) {
	f, _, _ := newFlow(t)
	if got := f.Step(); got != StepSplash {
		t.Fatalf("Step = %s, want SPLASH", got)
	}
}

func TestLoginPath(t *testing.T) {
	f, sessions, _ := newFlow(t)
	ctx := context.Background()

	if err := f.BeginLogin(); err != nil {
		t.Fatalf("BeginLogin: %v", err)
	}
	if got := f.Step(); got != StepLogin {
		t.Fatalf("Step = %s, want LOGIN", got)
	}

	if _, err := f.SubmitLogin(ctx, "", "secret"); !errors.Is(err, ErrEmptyCredentials) {
		t.Fatalf("blank email err = %v, want ErrEmptyCredentials", err)
	}
	if _, err := f.SubmitLogin(ctx, "a@b.c", ""); !errors.Is(err, ErrEmptyCredentials) {
		t.Fatalf("blank password err = %v, want ErrEmptyCredentials", err)
	}
	if got := f.Step(); got != StepLogin {
		t.Fatalf("rejected login moved the flow to %s", got)
	}

	profile, err := f.SubmitLogin(ctx, "anything@example.com", "anything")
	if err != nil {
		t.Fatalf("SubmitLogin: %v", err)
	}
	if profile.ID != "u1" || profile.Name != "Demo User" || profile.Role != users.RoleViewer {
		t.Fatalf("demo profile = %+v", profile)
	}
	if profile.Status != users.StatusApproved {
		t.Fatalf("demo Status = %q, want APPROVED", profile.Status)
	}
	if got := f.Step(); got != StepApp {
		t.Fatalf("Step = %s, want APP", got)
	}
	if _, ok := sessions.Current(); !ok {
		t.Fatal("login did not establish a session")
	}
}

func TestRegistrationPathOrganizer(t *testing.T) {
	f, _, store := newFlow(t)
	registerTo(t, f, users.RoleOrganizer, StepOTP)

	if got := f.Step(); got != StepOTP {
		t.Fatalf("Step = %s, want OTP", got)
	}

	profile, err := f.VerifyOTP(context.Background(), "1234")
	if err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	if profile.ID != "fixed-id" || profile.Name != "Priya" {
		t.Fatalf("profile = %+v", profile)
	}
	if profile.Role != users.RoleOrganizer || profile.Status != users.StatusPending {
		t.Fatalf("organizer registration = role %q status %q", profile.Role, profile.Status)
	}
	if profile.DistrictID != "salem" || profile.VillageID != "v_attur" {
		t.Fatalf("location not carried onto profile: %+v", profile)
	}
	if got := f.Step(); got != StepApp {
		t.Fatalf("Step = %s, want APP", got)
	}

	stored, err := store.LoadSession(context.Background())
	if err != nil || stored.ID != "fixed-id" {
		t.Fatalf("session not persisted: %+v, %v", stored, err)
	}
	if reg, roleSet := f.Registration(); roleSet || reg.Name != "" {
		t.Fatalf("registration state not cleared: %+v", reg)
	}
}

func TestRegistrationViewerApprovedImmediately(t *testing.T) {
	f, _, _ := newFlow(t)
	registerTo(t, f, users.RoleViewer, StepOTP)

	profile, err := f.VerifyOTP(context.Background(), "0000")
	if err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
	if profile.Status != users.StatusApproved {
		t.Fatalf("viewer Status = %q, want APPROVED", profile.Status)
	}
}

func TestOTPValidation(t *testing.T) {
	for _, code := range []string{"", "123", "12345", "12a4", "12 4", "١٢٣٤"} {
		f, _, _ := newFlow(t)
		registerTo(t, f, users.RoleViewer, StepOTP)
		if _, err := f.VerifyOTP(context.Background(), code); !errors.Is(err, ErrInvalidOTP) {
			t.Fatalf("VerifyOTP(%q) err = %v, want ErrInvalidOTP", code, err)
		}
		if got := f.Step(); got != StepOTP {
			t.Fatalf("rejected code moved the flow to %s", got)
		}
	}
}

func TestRegistrationRequiresContactBeforeRole(t *testing.T) {
	f, _, _ := newFlow(t)
	if err := f.BeginRegister(); err != nil {
		t.Fatalf("BeginRegister: %v", err)
	}
	if err := f.ChooseRole(users.RoleViewer); !errors.Is(err, ErrMissingContact) {
		t.Fatalf("err = %v, want ErrMissingContact", err)
	}
	if err := f.SubmitContact(ContactInfo{Name: "  ", Mobile: "9876543210"}); !errors.Is(err, ErrMissingContact) {
		t.Fatalf("blank name err = %v, want ErrMissingContact", err)
	}
}

func TestLocationValidatedAgainstCatalog(t *testing.T) {
	f, _, _ := newFlow(t)
	registerTo(t, f, users.RoleViewer, StepLocation)

	err := f.SubmitLocation(LocationSelection{DistrictID: "atlantis"})
	if !errors.Is(err, catalog.ErrUnknownDistrict) {
		t.Fatalf("err = %v, want ErrUnknownDistrict", err)
	}
	err = f.SubmitLocation(LocationSelection{DistrictID: "chennai", VillageID: "v_attur"})
	if !errors.Is(err, catalog.ErrVillageOutsideDistrict) {
		t.Fatalf("err = %v, want ErrVillageOutsideDistrict", err)
	}
	// A district alone is not enough; the village must be chosen too.
	err = f.SubmitLocation(LocationSelection{DistrictID: "chennai"})
	if !errors.Is(err, catalog.ErrVillageRequired) {
		t.Fatalf("district-only err = %v, want ErrVillageRequired", err)
	}
	if got := f.Step(); got != StepLocation {
		t.Fatalf("rejected location moved the flow to %s", got)
	}

	if err := f.SubmitLocation(LocationSelection{DistrictID: "chennai", VillageID: "v_adyar"}); err != nil {
		t.Fatalf("valid selection rejected: %v", err)
	}
	if got := f.Step(); got != StepOTP {
		t.Fatalf("Step = %s, want OTP", got)
	}
}

func TestBack(t *testing.T) {
	f, _, _ := newFlow(t)

	if err := f.BeginLogin(); err != nil {
		t.Fatalf("BeginLogin: %v", err)
	}
	if err := f.Back(); err != nil {
		t.Fatalf("Back from LOGIN: %v", err)
	}
	if got := f.Step(); got != StepSplash {
		t.Fatalf("Step = %s, want SPLASH", got)
	}

	// Within registration, back first undoes the role sub-step.
	if err := f.BeginRegister(); err != nil {
		t.Fatalf("BeginRegister: %v", err)
	}
	if err := f.SubmitContact(ContactInfo{Name: "Priya", Mobile: "9876543210"}); err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}
	if err := f.ChooseRole(users.RoleViewer); err != nil {
		t.Fatalf("ChooseRole: %v", err)
	}
	if err := f.Back(); err != nil { // LOCATION -> REGISTER
		t.Fatalf("Back from LOCATION: %v", err)
	}
	if got := f.Step(); got != StepRegister {
		t.Fatalf("Step = %s, want REGISTER", got)
	}
	if _, roleSet := f.Registration(); !roleSet {
		t.Fatal("returning to register dropped the chosen role")
	}
	if err := f.Back(); err != nil { // role sub-step -> contact sub-step
		t.Fatalf("Back within REGISTER: %v", err)
	}
	if got := f.Step(); got != StepRegister {
		t.Fatalf("Step = %s, want REGISTER", got)
	}
	reg, roleSet := f.Registration()
	if roleSet || reg.Role != "" {
		t.Fatalf("role sub-step not undone: %+v", reg)
	}
	if reg.Name != "Priya" {
		t.Fatal("contact info lost when undoing role sub-step")
	}
	if err := f.Back(); err != nil { // contact sub-step -> SPLASH
		t.Fatalf("Back to SPLASH: %v", err)
	}
	if got := f.Step(); got != StepSplash {
		t.Fatalf("Step = %s, want SPLASH", got)
	}
	if reg, _ := f.Registration(); reg.Name != "" {
		t.Fatal("leaving registration kept contact info")
	}

	if err := f.Back(); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("Back from SPLASH err = %v, want ErrInvalidStep", err)
	}
}

func TestWrongStepOperationsRejected(t *testing.T) {
	f, _, _ := newFlow(t)
	ctx := context.Background()

	if _, err := f.SubmitLogin(ctx, "a@b.c", "x"); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("SubmitLogin at SPLASH err = %v, want ErrInvalidStep", err)
	}
	if err := f.SubmitContact(ContactInfo{Name: "x", Mobile: "1"}); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("SubmitContact at SPLASH err = %v, want ErrInvalidStep", err)
	}
	if _, err := f.VerifyOTP(ctx, "1234"); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("VerifyOTP at SPLASH err = %v, want ErrInvalidStep", err)
	}
	if err := f.Logout(ctx); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("Logout at SPLASH err = %v, want ErrInvalidStep", err)
	}
}

func TestLogoutResetsEverything(t *testing.T) {
	f, sessions, store := newFlow(t)
	ctx := context.Background()
	registerTo(t, f, users.RoleViewer, StepOTP)
	if _, err := f.VerifyOTP(ctx, "1234"); err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}

	if err := f.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if got := f.Step(); got != StepSplash {
		t.Fatalf("Step = %s, want SPLASH", got)
	}
	if _, ok := sessions.Current(); ok {
		t.Fatal("logout kept the session")
	}
	if _, err := store.LoadSession(ctx); err == nil {
		t.Fatal("logout kept the persisted session record")
	}
}

func TestRestoreShortCircuitsToApp(t *testing.T) {
	store := memory.New()
	seeded := session.NewService(store, nil, nil)
	if err := seeded.Establish(context.Background(), users.Profile{ID: "u1", Role: users.RoleViewer}); err != nil {
		t.Fatalf("Establish: %v", err)
	}

	sessions := session.NewService(store, nil, nil)
	f := New(sessions, catalog.NewService(), nil, metrics.NewRecorder())
	ok, err := f.Restore(context.Background())
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !ok {
		t.Fatal("expected restore to find a session")
	}
	if got := f.Step(); got != StepApp {
		t.Fatalf("Step = %s, want APP", got)
	}
}

func TestRestoreWithoutSessionStaysAtSplash(t *testing.T) {
	f, _, _ := newFlow(t)
	ok, err := f.Restore(context.Background())
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if ok {
		t.Fatal("restore reported a session from an empty store")
	}
	if got := f.Step(); got != StepSplash {
		t.Fatalf("Step = %s, want SPLASH", got)
	}
}

func TestTransitionsAreCounted(t *testing.T) {
	store := memory.New()
	recorder := metrics.NewRecorder()
	f := New(session.NewService(store, nil, nil), catalog.NewService(), nil, recorder)

	if err := f.BeginLogin(); err != nil {
		t.Fatalf("BeginLogin: %v", err)
	}
	if err := f.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if got := recorder.AuthTransitions(); got != 2 {
		t.Fatalf("AuthTransitions = %d, want 2", got)
	}
}
