package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/quizmaster/config"
	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/model"
	"github.com/lshigami/quizmaster/internal/repository"
	"github.com/lshigami/quizmaster/internal/session"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, tokenID string, until time.Time) error
	Me(ctx context.Context, userID uint) (*dto.UserResponse, error)
	EnsureAdmin(ctx context.Context) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *session.TokenManager
	store    session.Store
	cfg      *config.Config
	db       *gorm.DB
}

func NewAuthService(userRepo repository.UserRepository, tokens *session.TokenManager, store session.Store, cfg *config.Config, db *gorm.DB) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, store: store, cfg: cfg, db: db}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	email := normalizeEmail(req.Email)
	fullName := strings.TrimSpace(req.FullName)
	if email == "" || fullName == "" {
		return nil, apperr.Validation("email and full_name are required")
	}
	if len(req.Password) < 6 {
		return nil, apperr.Validation("password must be at least 6 characters")
	}

	user := model.User{
		Email:         email,
		FullName:      fullName,
		Qualification: strings.TrimSpace(req.Qualification),
		Role:          model.RoleUser,
	}
	if req.DOB != "" {
		dob, err := time.Parse(dateLayout, req.DOB)
		if err != nil {
			return nil, apperr.Validation("dob must be formatted as YYYY-MM-DD")
		}
		user.DOB = &dob
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err, "hashing password")
	}
	user.PasswordHash = string(hash)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.userRepo.WithTx(tx)
		exists, err := users.EmailExists(ctx, email)
		if err != nil {
			return apperr.Internal(err, "checking email")
		}
		if exists {
			return apperr.Conflict("email %s is already registered", email)
		}
		if err := users.Create(ctx, &user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict("email %s is already registered", email)
			}
			return apperr.Internal(err, "creating user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("userID", user.ID).Str("email", user.Email).Msg("User registered")
	return toUserResponse(&user), nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, apperr.Unauthorized("invalid email or password")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Uint("userID", user.ID).Msg("Login with wrong password")
		return nil, apperr.Unauthorized("invalid email or password")
	}

	token, claims, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperr.Internal(err, "issuing token")
	}
	return &dto.LoginResponse{
		UserID:    user.ID,
		Role:      user.Role,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *authService) Logout(ctx context.Context, tokenID string, until time.Time) error {
	if tokenID == "" {
		return apperr.Unauthorized("missing session")
	}
	if err := s.store.Revoke(ctx, tokenID, until); err != nil {
		return apperr.Internal(err, "revoking session")
	}
	return nil
}

func (s *authService) Me(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// EnsureAdmin creates the configured administrator account when it does not
// exist yet. An existing account with that email is left untouched.
func (s *authService) EnsureAdmin(ctx context.Context) error {
	email := normalizeEmail(s.cfg.Auth.AdminEmail)
	if email == "" || s.cfg.Auth.AdminPassword == "" {
		log.Warn().Msg("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		if !existing.IsAdmin() {
			log.Warn().Str("email", email).Msg("Configured admin email belongs to a non-admin account")
		}
		return nil
	}
	if !apperr.Is(err, apperr.KindNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal(err, "hashing admin password")
	}
	admin := model.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Administrator",
		Role:         model.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, &admin); err != nil {
		return apperr.Internal(err, "creating admin")
	}
	log.Info().Str("email", email).Msg("Admin account created")
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(user *model.User) *dto.UserResponse {
	var resp dto.UserResponse
	copier.Copy(&resp, user)
	return &resp
}
