// ABOUTME: Tests for the demo auth provider and role gating.
// ABOUTME: Verifies sign-up/in/out lifecycle and the demo-mode bypass.
package auth

import (
	"errors"
	"testing"

	"github.com/stslabs/motiv8r/internal/models"
	"github.com/stslabs/motiv8r/internal/store"
)

func newProvider() *DemoProvider {
	return NewDemoProvider(store.New(store.NewMemory()))
}

func TestSignUpAndCurrent(t *testing.T) {
	p := newProvider()

	profile, err := p.SignUp("Alex@Example.com", "hunter2", "Alex", models.RoleAthlete)
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if profile.Email != "alex@example.com" {
		t.Errorf("email not lowercased: %s", profile.Email)
	}

	current, err := p.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if current.ID != profile.ID || current.Role != models.RoleAthlete {
		t.Errorf("Current = %+v", current)
	}
}

func TestSignUpValidation(t *testing.T) {
	p := newProvider()

	if _, err := p.SignUp("a@b.c", "x", "A", "admin"); err == nil {
		t.Error("SignUp accepted unknown role")
	}
	if _, err := p.SignUp("", "x", "A", models.RoleCoach); err == nil {
		t.Error("SignUp accepted empty email")
	}
}

func TestSignInMatchesStoredProfile(t *testing.T) {
	p := newProvider()

	if _, err := p.SignIn("nobody@example.com", "x"); err == nil {
		t.Error("SignIn with no account should error")
	}

	if _, err := p.SignUp("alex@example.com", "x", "Alex", models.RoleAthlete); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if _, err := p.SignIn("ALEX@example.com", "x"); err != nil {
		t.Errorf("SignIn case-insensitive match failed: %v", err)
	}
	if _, err := p.SignIn("other@example.com", "x"); err == nil {
		t.Error("SignIn with wrong email should error")
	}
}

func TestSignInDemoBypass(t *testing.T) {
	p := newProvider()

	profile, err := p.SignInDemo(models.RoleCoach)
	if err != nil {
		t.Fatalf("SignInDemo failed: %v", err)
	}
	if profile.Role != models.RoleCoach {
		t.Errorf("role = %s, want coach", profile.Role)
	}

	if _, err := p.SignInDemo("nope"); err == nil {
		t.Error("SignInDemo accepted unknown role")
	}
}

func TestSignOut(t *testing.T) {
	p := newProvider()

	if _, err := p.SignInDemo(models.RoleAthlete); err != nil {
		t.Fatalf("SignInDemo failed: %v", err)
	}
	if err := p.SignOut(); err != nil {
		t.Fatalf("SignOut failed: %v", err)
	}

	if _, err := p.Current(); !errors.Is(err, ErrSignedOut) {
		t.Errorf("Current after sign-out = %v, want ErrSignedOut", err)
	}
}

func TestRequireRole(t *testing.T) {
	p := newProvider()

	if _, err := RequireRole(p, models.RoleCoach); err == nil {
		t.Error("RequireRole with no session should error")
	}

	if _, err := p.SignInDemo(models.RoleAthlete); err != nil {
		t.Fatalf("SignInDemo failed: %v", err)
	}
	if _, err := RequireRole(p, models.RoleCoach); err == nil {
		t.Error("athlete passed a coach gate")
	}
	if _, err := RequireRole(p, models.RoleAthlete); err != nil {
		t.Errorf("athlete failed the athlete gate: %v", err)
	}
}
