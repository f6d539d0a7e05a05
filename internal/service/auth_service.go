package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/employee-directory-api/internal/config"
	"github.com/employee-directory-api/internal/domain"
	"github.com/employee-directory-api/internal/dto"
	"github.com/employee-directory-api/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// AuthService определяет интерфейс работы с учётными записями и токенами
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	VerifyAccess(tokenString string) (int64, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      config.JWTConfig
}

// NewAuthService создаёт новый экземпляр сервиса
func NewAuthService(userRepo repository.UserRepository, cfg config.JWTConfig) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// tokenClaims - полезная нагрузка JWT
type tokenClaims struct {
	UserID    int64  `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	email := NormalizeEmail(req.Email)

	ve := &domain.ValidationError{}

	taken, err := s.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		ve.Add("username", "A user with that username already exists.")
	}

	taken, err = s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		ve.Add("email", "A user with that email already exists.")
	}

	if !ve.Empty() {
		return nil, ve
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Гонка на уникальном индексе - отдаём как ошибку валидации
		if errors.Is(err, domain.ErrDuplicateUsername) {
			ve := &domain.ValidationError{}
			ve.Add("username", "A user with that username already exists.")
			return nil, ve
		}
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	access, err := s.issueToken(user.ID, tokenTypeAccess, s.cfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.issueToken(user.ID, tokenTypeRefresh, s.cfg.RefreshTTL)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPairResponse{Access: access, Refresh: refresh}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.parseToken(refreshToken, tokenTypeRefresh)
	if err != nil {
		return "", err
	}

	// Учётная запись могла быть удалена после выпуска refresh-токена
	if _, err := s.userRepo.GetByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidToken
		}
		return "", err
	}

	return s.issueToken(claims.UserID, tokenTypeAccess, s.cfg.AccessTTL)
}

func (s *authService) VerifyAccess(tokenString string) (int64, error) {
	claims, err := s.parseToken(tokenString, tokenTypeAccess)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func (s *authService) issueToken(userID int64, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *authService) parseToken(tokenString, wantType string) (*tokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || claims.TokenType != wantType {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
