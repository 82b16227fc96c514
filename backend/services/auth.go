package services

import (
	"context"
	"errors"
	"strings"

	"pandas-platform/backend/config"
	"pandas-platform/backend/models"
	"pandas-platform/backend/store"
	"pandas-platform/backend/utils"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid email or password"

// maxPasswordBytes is the longest input bcrypt accepts. Longer passwords are
// cut to this length before hashing and before comparing.
const maxPasswordBytes = 72

type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=50,alphaspace"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128,pwcomplex"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is a freshly issued token and the user it belongs to.
type Session struct {
	Token string
	User  models.PublicUser
}

type AuthService struct {
	users store.UserStore
	cfg   *config.Config
	log   zerolog.Logger
}

func NewAuthService(users store.UserStore, cfg *config.Config, log zerolog.Logger) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
		log:   log.With().Str("component", "auth").Logger(),
	}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in.Email = normalizeEmail(in.Email)
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}

	if _, err := s.users.FindUserByEmail(ctx, in.Email); err == nil {
		return nil, utils.NewConflictError("User with this email already exists")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, utils.NewInternalError("Internal server error during registration", err)
	}

	hash, err := bcrypt.GenerateFromPassword(passwordBytes(in.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, utils.NewInternalError("Internal server error during registration", err)
	}

	user := &models.User{Name: in.Name, Email: in.Email, PasswordHash: string(hash)}
	if err := s.users.CreateUser(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, store.ErrDuplicate) {
			return nil, utils.NewConflictError("User with this email already exists")
		}
		return nil, utils.NewInternalError("Internal server error during registration", err)
	}

	s.log.Info().Uint("user_id", user.ID).Msg("user registered")
	return s.issue(user)
}

// Login never tells an unknown email apart from a wrong password.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*Session, error) {
	in.Email = normalizeEmail(in.Email)
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}

	user, err := s.users.FindUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, utils.NewAuthError(invalidCredentials)
		}
		return nil, utils.NewInternalError("Internal server error during login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), passwordBytes(in.Password)); err != nil {
		return nil, utils.NewAuthError(invalidCredentials)
	}

	return s.issue(user)
}

// ResolveSession turns a token into the user it was issued for. Tokens are
// stateless: a token stays valid until it expires, even after logout.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*models.PublicUser, error) {
	userID, err := utils.ParseJWTToken(token, s.cfg)
	switch {
	case errors.Is(err, utils.ErrTokenMissing):
		return nil, utils.NewAuthError("Access denied. No authentication token provided.")
	case errors.Is(err, utils.ErrTokenExpired):
		return nil, utils.NewAuthError("Authentication token has expired. Please login again.")
	case err != nil:
		return nil, utils.NewAuthError("Invalid authentication token.")
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, utils.NewAuthError("Authentication failed. User not found.")
		}
		return nil, utils.NewInternalError("Internal server error during authentication", err)
	}

	public := user.Public()
	return &public, nil
}

func (s *AuthService) issue(user *models.User) (*Session, error) {
	token, err := utils.GenerateJWTToken(user.ID, s.cfg)
	if err != nil {
		return nil, utils.NewInternalError("Could not generate token", err)
	}
	return &Session{Token: token, User: user.Public()}, nil
}

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
