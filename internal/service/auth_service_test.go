package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"portfolio_backend/internal/models"
)

// fakeUsersRepo is a lightweight in-test fake for repository.Users.
type fakeUsersRepo struct {
	CreateFn        func(ctx context.Context, username, hash string) (int, error)
	GetByUsernameFn func(ctx context.Context, username string) (*models.User, error)

	createCalls []struct {
		username string
		hash     string
	}
	getCalls []string
}

func (f *fakeUsersRepo) Create(ctx context.Context, username, hash string) (int, error) {
	f.createCalls = append(f.createCalls, struct {
		username string
		hash     string
	}{username: username, hash: hash})
	return f.CreateFn(ctx, username, hash)
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	f.getCalls = append(f.getCalls, username)
	return f.GetByUsernameFn(ctx, username)
}

// fakeSessionsRepo is a map-backed fake for repository.Sessions. Guarded by
// a mutex so tests may poll it while a sweeper goroutine runs.
type fakeSessionsRepo struct {
	mu    sync.Mutex
	store map[string]models.Session

	setErr     error
	getErr     error
	destroyErr error

	destroyCalls []string
	purgeCalls   int
}

func newFakeSessionsRepo() *fakeSessionsRepo {
	return &fakeSessionsRepo{store: map[string]models.Session{}}
}

func (f *fakeSessionsRepo) Set(ctx context.Context, s models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.store[s.Token] = s
	return nil
}

func (f *fakeSessionsRepo) Get(ctx context.Context, token string) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	s, ok := f.store[token]
	if !ok || s.Expired(time.Now().UTC()) {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeSessionsRepo) Destroy(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyCalls = append(f.destroyCalls, token)
	if f.destroyErr != nil {
		return f.destroyErr
	}
	delete(f.store, token)
	return nil
}

func (f *fakeSessionsRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.purgeCalls++
	var n int64
	for tok, s := range f.store {
		if s.Expired(now) {
			delete(f.store, tok)
			n++
		}
	}
	return n, nil
}

func (f *fakeSessionsRepo) purgeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.purgeCalls
}

func (f *fakeSessionsRepo) put(s models.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[s.Token] = s
}

func (f *fakeSessionsRepo) has(token string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.store[token]
	return ok
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := hashPassword(password)
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	return h
}

func TestAuthService_Login_Success(t *testing.T) {
	hash := mustHash(t, "s3cr3t")
	users := &fakeUsersRepo{
		GetByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{ID: 1, Username: "rizqi", PasswordHash: hash}, nil
		},
	}
	sessions := newFakeSessionsRepo()
	svc := NewAuthService(users, sessions, time.Hour)

	sess, err := svc.Login(context.Background(), "rizqi", "s3cr3t")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if sess.Token == "" {
		t.Fatalf("expected a session token")
	}
	if sess.UserID != 1 || sess.Username != "rizqi" {
		t.Fatalf("unexpected session identity: %+v", sess)
	}
	if got := sess.ExpiresAt.Sub(sess.CreatedAt); got != time.Hour {
		t.Fatalf("expected 1h TTL, got %v", got)
	}
	if _, ok := sessions.store[sess.Token]; !ok {
		t.Fatalf("session not persisted in store")
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownUserLookTheSame(t *testing.T) {
	hash := mustHash(t, "rightpass")
	users := &fakeUsersRepo{
		GetByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			if username == "rizqi" {
				return &models.User{ID: 1, Username: "rizqi", PasswordHash: hash}, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(users, newFakeSessionsRepo(), time.Hour)

	_, errWrongPass := svc.Login(context.Background(), "rizqi", "wrongpass")
	_, errNoUser := svc.Login(context.Background(), "nouser", "x")

	if !errors.Is(errWrongPass, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", errNoUser)
	}
	if errWrongPass.Error() != errNoUser.Error() {
		t.Fatalf("error shapes differ: %q vs %q", errWrongPass, errNoUser)
	}
}

func TestAuthService_Login_RepoErrorIsPropagated(t *testing.T) {
	users := &fakeUsersRepo{
		GetByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewAuthService(users, newFakeSessionsRepo(), time.Hour)

	_, err := svc.Login(context.Background(), "rizqi", "x")
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestAuthService_Logout_IsIdempotent(t *testing.T) {
	sessions := newFakeSessionsRepo()
	svc := NewAuthService(&fakeUsersRepo{}, sessions, time.Hour)

	if err := svc.Logout(context.Background(), "unknown-token"); err != nil {
		t.Fatalf("Logout with unknown token: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("Logout with empty token: %v", err)
	}
	// empty token never reaches the store
	if len(sessions.destroyCalls) != 1 {
		t.Fatalf("expected 1 Destroy call, got %d", len(sessions.destroyCalls))
	}
}

func TestAuthService_Check(t *testing.T) {
	sessions := newFakeSessionsRepo()
	now := time.Now().UTC()
	sessions.store["live"] = models.Session{
		Token: "live", UserID: 1, Username: "rizqi",
		CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	}
	sessions.store["stale"] = models.Session{
		Token: "stale", UserID: 1, Username: "rizqi",
		CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour),
	}
	svc := NewAuthService(&fakeUsersRepo{}, sessions, time.Hour)

	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{"live session", "live", true},
		{"expired session", "stale", false},
		{"unknown token", "nope", false},
		{"no token", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, err := svc.Check(context.Background(), tc.token)
			if err != nil {
				t.Fatalf("Check error: %v", err)
			}
			if status.Authenticated != tc.want {
				t.Fatalf("authenticated=%v, want %v", status.Authenticated, tc.want)
			}
			if tc.want && (status.User == nil || status.User.Username != "rizqi") {
				t.Fatalf("missing user in authenticated status: %+v", status)
			}
			if !tc.want && status.User != nil {
				t.Fatalf("unexpected user in unauthenticated status: %+v", status)
			}
		})
	}
}

func TestAuthService_EnsureAdmin_CreatesOnceWithHashedPassword(t *testing.T) {
	var stored *models.User
	users := &fakeUsersRepo{
		GetByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return stored, nil
		},
		CreateFn: func(ctx context.Context, username, hash string) (int, error) {
			stored = &models.User{ID: 1, Username: username, PasswordHash: hash}
			return 1, nil
		},
	}
	svc := NewAuthService(users, newFakeSessionsRepo(), time.Hour)

	if err := svc.EnsureAdmin(context.Background(), "rizqi", "s3cr3t"); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	if len(users.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(users.createCalls))
	}
	call := users.createCalls[0]
	if call.hash == "s3cr3t" {
		t.Fatalf("password stored unhashed")
	}
	if err := verifyPassword(call.hash, "s3cr3t"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}

	// second run is a no-op
	if err := svc.EnsureAdmin(context.Background(), "rizqi", "other"); err != nil {
		t.Fatalf("EnsureAdmin rerun: %v", err)
	}
	if len(users.createCalls) != 1 {
		t.Fatalf("EnsureAdmin rerun created a user: %d calls", len(users.createCalls))
	}
}

func TestAuthService_EnsureAdmin_RejectsBlankInputs(t *testing.T) {
	svc := NewAuthService(&fakeUsersRepo{}, newFakeSessionsRepo(), time.Hour)

	if err := svc.EnsureAdmin(context.Background(), "  ", "pass"); err == nil {
		t.Fatalf("expected error for blank username")
	}

	users := &fakeUsersRepo{
		GetByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return nil, nil
		},
	}
	svc = NewAuthService(users, newFakeSessionsRepo(), time.Hour)
	if err := svc.EnsureAdmin(context.Background(), "rizqi", ""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}
