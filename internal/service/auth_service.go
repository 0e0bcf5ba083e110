package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Sujithrababu/attendance-system/config"
	"github.com/Sujithrababu/attendance-system/internal/dto"
	"github.com/Sujithrababu/attendance-system/internal/model"
	"github.com/Sujithrababu/attendance-system/internal/repository"
	"github.com/Sujithrababu/attendance-system/pkg/jwt"
	"github.com/Sujithrababu/attendance-system/pkg/redis"
)

// ── auth errors ──

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrStudentIDRequired  = errors.New("student_id is required for student accounts")
)

// AuthService covers registration, login, logout and the current-user view.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	Me(ctx context.Context, userID string) (*dto.UserResponse, error)
	EnsureDefaultAdmin(ctx context.Context) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates the AuthService.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if req.Role == model.RoleStudent && req.StudentID == "" {
		return nil, ErrStudentIDRequired
	}

	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("lookup username failed", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
		StudentID:    req.StudentID,
		Name:         req.Name,
		Department:   req.Department,
		Year:         req.Year,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error("create user failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("username", user.Username),
		zap.String("role", user.Role),
	)

	return toUserResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("lookup user failed", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Username, user.Role, user.StudentID)
	if err != nil {
		s.logger.Error("generate access token failed", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Username, user.Role, user.StudentID)
	if err != nil {
		s.logger.Error("generate refresh token failed", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         *toUserResponse(user),
	}, nil
}

// Logout revokes the presented access token for its remaining lifetime.
// Without Redis the blacklist is unavailable and logout is a no-op.
func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil || claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("blacklist token failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("lookup user failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return toUserResponse(user), nil
}

// EnsureDefaultAdmin creates the bootstrap admin account once.
func (s *authService) EnsureDefaultAdmin(ctx context.Context) error {
	if _, err := s.repo.User.GetByUsername(ctx, "admin"); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		Name:         "System Administrator",
	}
	if err := s.repo.User.Create(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil // raced with another instance
		}
		return err
	}

	s.logger.Info("default admin account created")
	return nil
}

func toUserResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		UserID:     user.UserID,
		Username:   user.Username,
		Role:       user.Role,
		StudentID:  user.StudentID,
		Name:       user.Name,
		Department: user.Department,
		Year:       user.Year,
	}
}
