package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/BarkaHamza235/store-management-again6/internal/config"
	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"
	"github.com/BarkaHamza235/store-management-again6/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) seed(t *testing.T, username, email, password string, active bool) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleCashier,
		Active:       active,
	}
	r.users[u.ID] = u
	return u
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username || strings.EqualFold(existing.Email, u.Email) {
			return errors.New(`duplicate key value violates unique constraint "idx_users_username"`)
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context, _ dto.EmployeeFilter, excludeID uuid.UUID) ([]model.User, int64, error) {
	var out []model.User
	for _, u := range r.users {
		if u.ID != excludeID {
			out = append(out, *u)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) CountActive(_ context.Context, _ dto.EmployeeFilter, excludeID uuid.UUID, active bool) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.ID != excludeID && u.Active == active {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) DB() *gorm.DB { return nil }

var _ repository.UserRepository = (*stubUserRepo)(nil)

// stubTokenStore is an in-memory ResetTokenStore without real expiry.
type stubTokenStore struct {
	tokens map[string]uuid.UUID
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{tokens: make(map[string]uuid.UUID)}
}

func (s *stubTokenStore) Save(_ context.Context, token string, userID uuid.UUID, _ time.Duration) error {
	s.tokens[token] = userID
	return nil
}

func (s *stubTokenStore) Lookup(_ context.Context, token string) (uuid.UUID, error) {
	id, ok := s.tokens[token]
	if !ok {
		return uuid.Nil, errors.New("token not found")
	}
	return id, nil
}

func (s *stubTokenStore) Delete(_ context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

type stubMailer struct {
	to    []string
	links []string
	err   error
}

func (m *stubMailer) SendPasswordReset(to, resetLink string) error {
	if m.err != nil {
		return m.err
	}
	m.to = append(m.to, to)
	m.links = append(m.links, resetLink)
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func buildAuthSvc(t *testing.T) (AuthService, *stubUserRepo, *stubTokenStore, *stubMailer) {
	t.Helper()
	repo := newStubUserRepo()
	tokens := newStubTokenStore()
	mailer := &stubMailer{}
	cfg := &config.Config{
		BaseURL:             "http://localhost:8000",
		JWTSecret:           "test-secret",
		JWTExpirationHours:  8,
		ResetTokenTTLMinute: 30,
	}
	svc := NewAuthService(repo, &stubActivity{}, tokens, mailer, cfg)
	return svc, repo, tokens, mailer
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestLoginWithUsername(t *testing.T) {
	svc, repo, _, _ := buildAuthSvc(t)
	repo.seed(t, "marie", "marie@example.com", "s3cretpass", true)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "marie", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "marie", resp.User.Username)
}

func TestLoginResolvesEmailToUsername(t *testing.T) {
	svc, repo, _, _ := buildAuthSvc(t)
	repo.seed(t, "marie", "marie@example.com", "s3cretpass", true)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "Marie@Example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "marie", resp.User.Username)
}

func TestLoginErrorsAreIndistinguishable(t *testing.T) {
	svc, repo, _, _ := buildAuthSvc(t)
	repo.seed(t, "marie", "marie@example.com", "s3cretpass", true)

	_, unknownEmail := svc.Login(context.Background(), dto.LoginRequest{
		Username: "nobody@example.com", Password: "whatever",
	})
	_, badPassword := svc.Login(context.Background(), dto.LoginRequest{
		Username: "marie", Password: "wrong",
	})
	_, unknownUser := svc.Login(context.Background(), dto.LoginRequest{
		Username: "ghost", Password: "whatever",
	})

	require.Error(t, unknownEmail)
	require.Error(t, badPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, badPassword.Error(), unknownEmail.Error())
	assert.Equal(t, badPassword.Error(), unknownUser.Error())
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	svc, repo, _, _ := buildAuthSvc(t)
	repo.seed(t, "paul", "paul@example.com", "s3cretpass", false)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "paul", Password: "s3cretpass"})
	require.Error(t, err)
	assert.Equal(t, errBadCredentials.Error(), err.Error())
}

func TestRegisterDefaultsToCashier(t *testing.T) {
	svc, repo, _, _ := buildAuthSvc(t)

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username:        "nadia",
		Email:           "nadia@example.com",
		FirstName:       "Nadia",
		LastName:        "B",
		Password:        "longenough",
		PasswordConfirm: "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleCashier, resp.Role)

	stored, err := repo.FindByUsername(context.Background(), "nadia")
	require.NoError(t, err)
	assert.True(t, stored.Active)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("longenough")))
}

func TestRegisterRejectsMismatchedPasswords(t *testing.T) {
	svc, _, _, _ := buildAuthSvc(t)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username:        "nadia",
		Email:           "nadia@example.com",
		Password:        "longenough",
		PasswordConfirm: "different",
	})
	require.Error(t, err)
}

func TestRegisterDuplicateUsernameIsConflict(t *testing.T) {
	svc, repo, _, _ := buildAuthSvc(t)
	repo.seed(t, "marie", "marie@example.com", "s3cretpass", true)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username:        "marie",
		Email:           "other@example.com",
		Password:        "longenough",
		PasswordConfirm: "longenough",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestPasswordResetFlow(t *testing.T) {
	svc, repo, tokens, mailer := buildAuthSvc(t)
	user := repo.seed(t, "marie", "marie@example.com", "oldpassword", true)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "marie@example.com"))
	require.Len(t, mailer.to, 1)
	assert.Equal(t, "marie@example.com", mailer.to[0])
	require.Len(t, tokens.tokens, 1)

	var token string
	for tok := range tokens.tokens {
		token = tok
	}
	assert.Contains(t, mailer.links[0], token)
	require.NoError(t, svc.ValidateResetToken(context.Background(), token))

	require.NoError(t, svc.ConfirmPasswordReset(context.Background(), dto.PasswordResetConfirmRequest{
		Token:           token,
		Password:        "newpassword",
		PasswordConfirm: "newpassword",
	}))

	stored := repo.users[user.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpassword")))

	// One-shot: the consumed token no longer validates.
	require.Error(t, svc.ValidateResetToken(context.Background(), token))
}

func TestPasswordResetUnknownEmailDisclosesNothing(t *testing.T) {
	svc, _, tokens, mailer := buildAuthSvc(t)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "ghost@example.com"))
	assert.Empty(t, mailer.to)
	assert.Empty(t, tokens.tokens)
}
