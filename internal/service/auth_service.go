package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BarkaHamza235/store-management-again6/internal/config"
	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"
	"github.com/BarkaHamza235/store-management-again6/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Client-facing authentication failures are deliberately identical for
// unknown email, unknown username and wrong password.
var errBadCredentials = errors.New("nom d'utilisateur/email ou mot de passe incorrect")

// ResetTokenStore persists one-shot password-reset tokens with a TTL.
type ResetTokenStore interface {
	Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	// Lookup returns the user id for a live token.
	Lookup(ctx context.Context, token string) (uuid.UUID, error)
	Delete(ctx context.Context, token string) error
}

// Mailer sends the password-reset email.
type Mailer interface {
	SendPasswordReset(to, resetLink string) error
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Logout(ctx context.Context, userID uuid.UUID)
	RequestPasswordReset(ctx context.Context, email string) error
	ValidateResetToken(ctx context.Context, token string) error
	ConfirmPasswordReset(ctx context.Context, req dto.PasswordResetConfirmRequest) error
}

type authService struct {
	repo     repository.UserRepository
	activity ActivityRecorder
	tokens   ResetTokenStore
	mailer   Mailer
	cfg      *config.Config
}

func NewAuthService(
	repo repository.UserRepository,
	activity ActivityRecorder,
	tokens ResetTokenStore,
	mailer Mailer,
	cfg *config.Config,
) AuthService {
	return &authService{repo: repo, activity: activity, tokens: tokens, mailer: mailer, cfg: cfg}
}

// Login authenticates by username or email. An input containing "@" is first
// resolved to the matching username; a failed resolution logs a server-side
// warning but falls through to the same generic error as a bad password.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	username := req.Username
	if strings.Contains(username, "@") {
		u, err := s.repo.FindByEmail(ctx, username)
		if err != nil {
			log.Warn().Str("email", username).Msg("login attempt with unknown email")
			return nil, errBadCredentials
		}
		username = u.Username
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		log.Warn().Str("username", username).Msg("login failed")
		return nil, errBadCredentials
	}
	if !user.Active {
		return nil, errBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Str("username", username).Msg("login failed")
		return nil, errBadCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, user.ID, "Connexion réussie", model.LevelPrimary, "sign-in-alt")

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        userToResponse(user),
	}, nil
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	if req.Password != req.PasswordConfirm {
		return nil, errors.New("les deux mots de passe ne correspondent pas")
	}
	role := req.Role
	if role == "" {
		role = model.RoleCashier
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Active:       true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, fmt.Errorf("%w: un compte avec ce nom d'utilisateur ou cet email existe déjà", ErrConflict)
		}
		return nil, err
	}

	log.Info().Str("username", user.Username).Str("role", user.Role).Msg("new account created")
	s.activity.Record(ctx, user.ID, "Compte créé", model.LevelSuccess, "user-plus")

	resp := userToResponse(user)
	return &resp, nil
}

// Logout only records the audit entry; tokens are stateless and expire on
// their own.
func (s *authService) Logout(ctx context.Context, userID uuid.UUID) {
	s.activity.Record(ctx, userID, "Déconnexion", model.LevelInfo, "sign-out-alt")
}

// RequestPasswordReset never discloses whether the email exists: unknown
// addresses return nil after a server-side warning.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Warn().Str("email", email).Msg("password reset requested for unknown email")
		return nil
	}

	token := uuid.NewString()
	ttl := time.Duration(s.cfg.ResetTokenTTLMinute) * time.Minute
	if err := s.tokens.Save(ctx, token, user.ID, ttl); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/password-reset/confirm?token=%s", s.cfg.BaseURL, token)
	if err := s.mailer.SendPasswordReset(user.Email, link); err != nil {
		return fmt.Errorf("envoi de l'email de réinitialisation: %w", err)
	}
	return nil
}

func (s *authService) ValidateResetToken(ctx context.Context, token string) error {
	if _, err := s.tokens.Lookup(ctx, token); err != nil {
		return fmt.Errorf("%w: lien de réinitialisation invalide ou expiré", ErrNotFound)
	}
	return nil
}

func (s *authService) ConfirmPasswordReset(ctx context.Context, req dto.PasswordResetConfirmRequest) error {
	if req.Password != req.PasswordConfirm {
		return errors.New("les deux mots de passe ne correspondent pas")
	}
	userID, err := s.tokens.Lookup(ctx, req.Token)
	if err != nil {
		return fmt.Errorf("%w: lien de réinitialisation invalide ou expiré", ErrNotFound)
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: utilisateur", ErrNotFound)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}
	// One-shot token: gone as soon as the reset completes.
	return s.tokens.Delete(ctx, req.Token)
}

func (s *authService) generateToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func userToResponse(u *model.User) dto.UserResponse {
	var hireDate *string
	if u.HireDate != nil {
		d := u.HireDate.Format("2006-01-02")
		hireDate = &d
	}
	return dto.UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Role:      u.Role,
		Phone:     u.Phone,
		Address:   u.Address,
		HireDate:  hireDate,
		Active:    u.Active,
		JoinedAt:  u.CreatedAt.Format("02/01/2006"),
	}
}
