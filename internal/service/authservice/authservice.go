package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/watchearn/watchearn/internal/domain"
	"github.com/watchearn/watchearn/pkg/auth"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type SessionRepo interface {
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	FindActive(ctx context.Context, token string) (*domain.Session, error)
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type Service struct {
	userRepo    UserRepo
	sessionRepo SessionRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	sessionTTL  time.Duration
}

func New(userRepo UserRepo, sessionRepo SessionRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, sessionTTL time.Duration) *Service {
	return &Service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hashService: hashService,
		jwtService:  jwtService,
		sessionTTL:  sessionTTL,
	}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

// Login verifies credentials and issues a token backed by a session row;
// the auth middleware requires both the JWT and the live session.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, "", ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, "", ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.sessionTTL)
	token, err := s.jwtService.GenerateJWT(user.ID, expiresAt)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return nil, "", err
	}

	if _, err := s.sessionRepo.Create(ctx, &domain.Session{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}); err != nil {
		zap.L().Error("can't create session: ", zap.Error(err))
		return nil, "", err
	}

	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, token, nil
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't load profile", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// IsSessionActive satisfies the auth middleware's session check.
func (s *Service) IsSessionActive(ctx context.Context, token string) (bool, error) {
	session, err := s.sessionRepo.FindActive(ctx, token)
	if err != nil {
		return false, err
	}
	return session != nil, nil
}
