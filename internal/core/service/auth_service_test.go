package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lunchbox/catering-api/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.nextID++
	r.users[copy.Email] = cloneUser(copy)
	return copy, nil
}

func newAuthService(t *testing.T) (*AuthService, *stubUserRepo, *JWTTokenService) {
	t.Helper()
	repo := newStubUserRepo()
	tokens, err := NewJWTTokenService("test-secret-for-testing-only", 0)
	if err != nil {
		t.Fatalf("NewJWTTokenService: %v", err)
	}
	return NewAuthService(repo, NewBcryptHasher(), tokens), repo, tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, tokens := newAuthService(t)

	token, user, err := svc.Register(context.Background(), "Alice Jones", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.ID == 0 {
		t.Fatalf("expected a store-assigned id")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if user.Role != domain.RoleParent {
		t.Fatalf("expected default role %s, got %s", domain.RoleParent, user.Role)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email || claims.Role != user.Role {
		t.Fatalf("claims do not match user: %+v vs %+v", claims, user)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, _, _ := newAuthService(t)

	cases := [][3]string{
		{"", "a@example.com", "pass"},
		{"Alice", "", "pass"},
		{"Alice", "a@example.com", ""},
	}
	for _, c := range cases {
		if _, _, err := svc.Register(context.Background(), c[0], c[1], c[2]); !errors.Is(err, domain.ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields for %v, got %v", c, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, repo, _ := newAuthService(t)

	_, first, err := svc.Register(context.Background(), "Bob Smith", "bob@example.com", "pass")
	if err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	if _, _, err := svc.Register(context.Background(), "Bob Impostor", "bob@example.com", "pass2"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// The stored row from the first registration must be untouched.
	stored, err := repo.FindByEmail(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.ID != first.ID || stored.FullName != "Bob Smith" {
		t.Fatalf("duplicate registration altered the stored row: %+v", stored)
	}
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	// Simulate the race where the pre-insert lookup misses but the store's
	// uniqueness constraint fires on insert.
	repo := newStubUserRepo()
	tokens, err := NewJWTTokenService("test-secret-for-testing-only", 0)
	if err != nil {
		t.Fatalf("NewJWTTokenService: %v", err)
	}
	svc := NewAuthService(&raceUserRepo{stubUserRepo: repo}, NewBcryptHasher(), tokens)

	if _, _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "pass"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists from store conflict, got %v", err)
	}
}

// raceUserRepo reports the email as free on lookup but rejects the insert,
// mimicking a concurrent registration winning between check and act.
type raceUserRepo struct {
	*stubUserRepo
}

func (r *raceUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *raceUserRepo) Create(_ context.Context, _ *domain.User) (*domain.User, error) {
	return nil, domain.ErrUserExists
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, tokens := newAuthService(t)

	_, registered, err := svc.Register(context.Background(), "Dana Lee", "dana@example.com", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "dana@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || user.ID != registered.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if claims.UserID != registered.ID {
		t.Fatalf("expected userId %d in claims, got %d", registered.ID, claims.UserID)
	}
}

func TestAuthService_Login_Indistinguishable(t *testing.T) {
	svc, _, _ := newAuthService(t)

	if _, _, err := svc.Register(context.Background(), "Eve", "eve@example.com", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, unknownErr := svc.Login(context.Background(), "nonexistent@x", "any")
	_, _, wrongErr := svc.Login(context.Background(), "eve@example.com", "wrongpassword")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("failure messages must be identical: %q vs %q", unknownErr, wrongErr)
	}
}

func TestAuthService_Login_MissingHash(t *testing.T) {
	svc, repo, _ := newAuthService(t)

	// A row without a usable hash must look exactly like bad credentials.
	repo.users["legacy@example.com"] = &domain.User{
		ID:       99,
		FullName: "Legacy Import",
		Email:    "legacy@example.com",
		Role:     domain.RoleParent,
	}

	if _, _, err := svc.Login(context.Background(), "legacy@example.com", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_EndToEnd(t *testing.T) {
	svc, _, tokens := newAuthService(t)

	_, registered, err := svc.Register(context.Background(), "Test User", "t@example.com", "password123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if registered.Email != "t@example.com" {
		t.Fatalf("unexpected email: %s", registered.Email)
	}

	token, _, err := svc.Login(context.Background(), "t@example.com", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token verify failed: %v", err)
	}
	if claims.UserID != registered.ID {
		t.Fatalf("expected userId %d, got %d", registered.ID, claims.UserID)
	}

	if _, _, err := svc.Login(context.Background(), "t@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
