package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/roadwatch/report-system/internal/core/ports"
)

func newSession(m *stubMirror) *SessionService {
	return NewSessionService(context.Background(), m, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestSessionService_Login_AdminLiteral(t *testing.T) {
	m := newStubMirror()
	svc := newSession(m)

	if !svc.Login(context.Background(), "admin", "1234") {
		t.Fatal("expected admin login to succeed")
	}
	if !svc.IsAdmin() {
		t.Error("admin login must set the admin flag")
	}
	id := svc.Identity()
	if id == nil || id.Username != "admin" {
		t.Errorf("unexpected identity: %+v", id)
	}
	if m.values[ports.KeyIsLoggedIn] != "true" {
		t.Errorf("expected mirrored isLoggedIn=true, got %q", m.values[ports.KeyIsLoggedIn])
	}
	if m.values[ports.KeyUserRole] != "admin" {
		t.Errorf("expected mirrored role admin, got %q", m.values[ports.KeyUserRole])
	}
}

func TestSessionService_Login_AdminWrongPassword(t *testing.T) {
	m := newStubMirror()
	svc := newSession(m)

	if svc.Login(context.Background(), "admin", "wrong") {
		t.Fatal("expected login to fail")
	}
	if svc.IsLoggedIn() {
		t.Error("failed login must not establish a session")
	}
	if svc.Identity() != nil {
		t.Error("failed login must leave identity nil")
	}
}

func TestSessionService_Login_UnknownUser(t *testing.T) {
	m := newStubMirror()
	svc := newSession(m)

	if svc.Login(context.Background(), "bob", "x") {
		t.Fatal("expected login to fail for a user that never signed up")
	}
	if svc.IsLoggedIn() {
		t.Error("identity must be unchanged")
	}
}

func TestSessionService_Login_StoredCredentials(t *testing.T) {
	m := newStubMirror()
	svc := newSession(m)

	svc.Signup(context.Background(), "maria", "maria@example.com", "s3cret", "")

	if !svc.Login(context.Background(), "maria", "s3cret") {
		t.Fatal("expected login with stored credentials to succeed")
	}
	if svc.IsAdmin() {
		t.Error("non-admin username must not get the admin flag")
	}
	if got := svc.Identity().Username; got != "maria" {
		t.Errorf("expected identity maria, got %q", got)
	}
}

func TestSessionService_Login_EmptyPairDoesNotMatchEmptyMirror(t *testing.T) {
	m := newStubMirror()
	svc := newSession(m)

	if svc.Login(context.Background(), "", "") {
		t.Fatal("empty credentials must never log in")
	}
}

// ---------------------------------------------------------------------------
// Logout tests
// ---------------------------------------------------------------------------

func TestSessionService_Logout_Idempotent(t *testing.T) {
	m := newStubMirror()
	svc := newSession(m)
	svc.Login(context.Background(), "admin", "1234")

	if !svc.Logout(context.Background()) {
		t.Fatal("first logout must succeed")
	}
	if svc.Identity() != nil {
		t.Error("identity must be nil after logout")
	}
	if !svc.Logout(context.Background()) {
		t.Fatal("second logout must also succeed")
	}
	if svc.Identity() != nil {
		t.Error("identity must stay nil")
	}
}

func TestSessionService_Logout_RetainsCredentials(t *testing.T) {
	m := newStubMirror()
	svc := newSession(m)
	svc.Signup(context.Background(), "maria", "maria@example.com", "s3cret", "")
	svc.Login(context.Background(), "maria", "s3cret")

	svc.Logout(context.Background())

	// Username and password stay mirrored so the account can log back in.
	if m.values[ports.KeyUsername] != "maria" || m.values[ports.KeyPassword] != "s3cret" {
		t.Error("logout must not clear the stored credential record")
	}
	if !svc.Login(context.Background(), "maria", "s3cret") {
		t.Error("re-login after logout must succeed")
	}
}

func TestSessionService_Logout_MirrorFailureLeavesStateUntouched(t *testing.T) {
	m := newStubMirror()
	svc := newSession(m)
	svc.Login(context.Background(), "admin", "1234")

	m.delErr = errors.New("disk full")
	if svc.Logout(context.Background()) {
		t.Fatal("logout must report failure when the mirror write fails")
	}
	if !svc.IsLoggedIn() || !svc.IsAdmin() {
		t.Error("failed logout must leave the in-memory session untouched")
	}
}

// ---------------------------------------------------------------------------
// Signup / update tests
// ---------------------------------------------------------------------------

func TestSessionService_Signup_LastSignupWins(t *testing.T) {
	m := newStubMirror()
	svc := newSession(m)

	if !svc.Signup(context.Background(), "first", "first@example.com", "pw1", "") {
		t.Fatal("signup must report success")
	}
	if !svc.Signup(context.Background(), "second", "second@example.com", "pw2", "") {
		t.Fatal("signup must report success")
	}

	if svc.Login(context.Background(), "first", "pw1") {
		t.Error("overwritten credentials must no longer log in")
	}
	if !svc.Login(context.Background(), "second", "pw2") {
		t.Error("latest credentials must log in")
	}
}

func TestSessionService_Signup_DefaultRole(t *testing.T) {
	m := newStubMirror()
	svc := newSession(m)

	svc.Signup(context.Background(), "maria", "maria@example.com", "pw", "")
	if m.values[ports.KeyUserRole] != "user" {
		t.Errorf("expected default role user, got %q", m.values[ports.KeyUserRole])
	}
}

func TestSessionService_UpdateUserInfo_WrongCurrentPassword(t *testing.T) {
	m := newStubMirror()
	svc := newSession(m)
	svc.Signup(context.Background(), "maria", "maria@example.com", "s3cret", "")

	if svc.UpdateUserInfo(context.Background(), "new", "wrongCurrent", "new2") {
		t.Fatal("update must fail on a wrong current password")
	}
	if m.values[ports.KeyUsername] != "maria" {
		t.Error("username must be unchanged after a rejected update")
	}
	if m.values[ports.KeyPassword] != "s3cret" {
		t.Error("password must be unchanged after a rejected update")
	}
}

func TestSessionService_UpdateUserInfo_DefaultPasswordFallback(t *testing.T) {
	m := newStubMirror()
	svc := newSession(m)

	// No password was ever stored, so the gate falls back to "1234".
	if !svc.UpdateUserInfo(context.Background(), "", "1234", "newpw") {
		t.Fatal("update gated on the fallback password must succeed")
	}
	if m.values[ports.KeyPassword] != "newpw" {
		t.Errorf("expected stored password newpw, got %q", m.values[ports.KeyPassword])
	}
}

func TestSessionService_UpdateUserInfo_RenameUpdatesIdentity(t *testing.T) {
	m := newStubMirror()
	svc := newSession(m)
	svc.Signup(context.Background(), "maria", "maria@example.com", "pw", "")
	svc.Login(context.Background(), "maria", "pw")

	if !svc.UpdateUserInfo(context.Background(), "mariam", "pw", "") {
		t.Fatal("rename must succeed with the right current password")
	}
	if got := svc.Identity().Username; got != "mariam" {
		t.Errorf("identity must follow the rename, got %q", got)
	}
	if m.values[ports.KeyUsername] != "mariam" {
		t.Errorf("mirror must follow the rename, got %q", m.values[ports.KeyUsername])
	}
}

func TestSessionService_UpdateUserInfo_LoggedOutRenameDoesNotLogIn(t *testing.T) {
	m := newStubMirror()
	svc := newSession(m)

	if !svc.UpdateUserInfo(context.Background(), "renamed", "1234", "") {
		t.Fatal("rename gated on the fallback password must succeed")
	}
	if svc.IsLoggedIn() {
		t.Error("a rename must not flip the session to logged-in")
	}
	if got := svc.Identity(); got != nil {
		t.Errorf("identity must stay nil while logged out, got %+v", got)
	}
	if m.values[ports.KeyUsername] != "renamed" {
		t.Errorf("the stored username must still change, got %q", m.values[ports.KeyUsername])
	}
}

// ---------------------------------------------------------------------------
// Rehydration tests
// ---------------------------------------------------------------------------

func TestSessionService_Rehydrate_AdminByUsername(t *testing.T) {
	m := newStubMirror()
	m.values[ports.KeyIsLoggedIn] = "true"
	m.values[ports.KeyUsername] = "admin"

	svc := newSession(m)
	if !svc.IsLoggedIn() || !svc.IsAdmin() {
		t.Error("expected a rehydrated admin session")
	}
}

func TestSessionService_Rehydrate_AdminByStoredRole(t *testing.T) {
	m := newStubMirror()
	m.values[ports.KeyIsLoggedIn] = "true"
	m.values[ports.KeyUsername] = "sam"
	m.values[ports.KeyUserRole] = "admin"

	svc := newSession(m)
	if !svc.IsAdmin() {
		t.Error("stored admin role must derive the admin flag")
	}
}

func TestSessionService_Rehydrate_PlainUser(t *testing.T) {
	m := newStubMirror()
	m.values[ports.KeyIsLoggedIn] = "true"
	m.values[ports.KeyUsername] = "sam"

	svc := newSession(m)
	if !svc.IsLoggedIn() {
		t.Fatal("expected a rehydrated session")
	}
	if svc.IsAdmin() {
		t.Error("plain user must not be admin")
	}
}

func TestSessionService_Rehydrate_NoSession(t *testing.T) {
	m := newStubMirror()
	m.values[ports.KeyUsername] = "sam" // credentials stored, but not logged in

	svc := newSession(m)
	if svc.IsLoggedIn() {
		t.Error("no login marker means no session")
	}
}
