// ABOUTME: Auth provider interface and the local demo implementation.
// ABOUTME: Resolves the session to a role; callers branch on errors, never panic.
package auth

import (
	"fmt"
	"strings"

	"github.com/stslabs/motiv8r/internal/models"
	"github.com/stslabs/motiv8r/internal/store"
)

// Provider is the auth collaborator. A real federated backend would sit
// behind this interface; the app only ever branches on the returned error.
type Provider interface {
	SignUp(email, password, name string, role models.Role) (*models.Profile, error)
	SignIn(email, password string) (*models.Profile, error)
	SignInDemo(role models.Role) (*models.Profile, error)
	SignOut() error
	ResetPassword(email string) error
	Current() (*models.Profile, error)
}

// ErrSignedOut is returned by Current when no profile is active.
var ErrSignedOut = fmt.Errorf("not signed in")

// demoUsers back the demo-mode bypass.
var demoUsers = map[models.Role]struct{ name, email string }{
	models.RoleAthlete: {"Demo Athlete", "athlete@demo.motiv8r"},
	models.RoleCoach:   {"Demo Coach", "coach@demo.motiv8r"},
}

// DemoProvider keeps the active profile in the local store. Passwords are
// accepted but not verified; this is the offline demo path, not security.
type DemoProvider struct {
	store *store.Store
}

// NewDemoProvider creates a provider over the given store.
func NewDemoProvider(s *store.Store) *DemoProvider {
	return &DemoProvider{store: s}
}

// SignUp creates and activates a new profile.
func (p *DemoProvider) SignUp(email, password, name string, role models.Role) (*models.Profile, error) {
	if !models.IsValidRole(string(role)) {
		return nil, fmt.Errorf("unknown role: %s", role)
	}
	if email == "" || name == "" {
		return nil, fmt.Errorf("email and name are required")
	}
	profile := models.NewProfile(name, strings.ToLower(email), role)
	if err := p.store.Set(store.KeyProfile, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// SignIn activates the profile matching the email. The stored profile is
// the only account this store knows about.
func (p *DemoProvider) SignIn(email, password string) (*models.Profile, error) {
	var profile models.Profile
	if !p.store.Get(store.KeyProfile, &profile) {
		return nil, fmt.Errorf("no account found for %s", email)
	}
	if !strings.EqualFold(profile.Email, email) {
		return nil, fmt.Errorf("no account found for %s", email)
	}
	return &profile, nil
}

// SignInDemo activates a canned profile for the role, bypassing credentials.
func (p *DemoProvider) SignInDemo(role models.Role) (*models.Profile, error) {
	u, ok := demoUsers[role]
	if !ok {
		return nil, fmt.Errorf("unknown role: %s", role)
	}
	profile := models.NewProfile(u.name, u.email, role)
	if err := p.store.Set(store.KeyProfile, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// SignOut clears the active profile.
func (p *DemoProvider) SignOut() error {
	return p.store.Delete(store.KeyProfile)
}

// ResetPassword is a no-op for the demo provider.
func (p *DemoProvider) ResetPassword(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

// Current returns the active profile, or ErrSignedOut.
func (p *DemoProvider) Current() (*models.Profile, error) {
	var profile models.Profile
	if !p.store.Get(store.KeyProfile, &profile) {
		return nil, ErrSignedOut
	}
	return &profile, nil
}

// RequireRole checks the active profile's role before a gated action.
func RequireRole(p Provider, role models.Role) (*models.Profile, error) {
	profile, err := p.Current()
	if err != nil {
		return nil, err
	}
	if profile.Role != role {
		return nil, fmt.Errorf("requires %s role, signed in as %s", role, profile.Role)
	}
	return profile, nil
}
