package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
	"github.com/crazydog22/sistema-gerenciamento-voos/internal/repository"
)

var (
	ErrEmailInUse         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthTokens struct {
	AccessToken    string    `json:"access_token"`
	AccessExpires  time.Time `json:"access_expires"`
	RefreshToken   string    `json:"refresh_token"`
	RefreshExpires time.Time `json:"refresh_expires"`
}

type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, *AuthTokens, error)
	Login(ctx context.Context, email, password string) (*models.User, *AuthTokens, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, refreshToken string) error
	GetUser(ctx context.Context, id uint) (*models.User, error)
	UpdateProfile(ctx context.Context, id uint, name, email *string) (*models.User, error)
	ChangePassword(ctx context.Context, id uint, current, updated string) error
	ListUsers(ctx context.Context) ([]models.User, error)
	VerifyAccessToken(token string) (uint, error)
}

type userService struct {
	userRepo   repository.UserRepository
	tokenRepo  repository.TokenRepository
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewUserService(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	secret string,
	accessTTL, refreshTTL time.Duration,
) UserService {
	return &userService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *userService) Register(ctx context.Context, name, email, password string) (*models.User, *AuthTokens, error) {
	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, nil, ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*models.User, *AuthTokens, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Refresh rotates a refresh token: the presented token is consumed and a new
// pair is issued.
func (s *userService) Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	userID, err := s.verifyToken(refreshToken, "refresh")
	if err != nil {
		return nil, ErrInvalidToken
	}

	doc, err := s.tokenRepo.FindActive(ctx, refreshToken, models.TokenRefresh)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if err := s.tokenRepo.Delete(ctx, doc.ID); err != nil {
		return nil, fmt.Errorf("consume refresh token: %w", err)
	}

	return s.issueTokens(ctx, user)
}

func (s *userService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.tokenRepo.FindActive(ctx, refreshToken, models.TokenRefresh); err != nil {
		return ErrInvalidToken
	}
	return s.tokenRepo.Blacklist(ctx, refreshToken)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uint, name, email *string) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if email != nil && *email != user.Email {
		exists, err := s.userRepo.EmailExists(ctx, *email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailInUse
		}
		user.Email = *email
	}
	if name != nil {
		user.Name = *name
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, id uint, current, updated string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(updated), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	return s.userRepo.Save(ctx, user)
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *userService) VerifyAccessToken(token string) (uint, error) {
	return s.verifyToken(token, "access")
}

type tokenClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

func (s *userService) issueTokens(ctx context.Context, user *models.User) (*AuthTokens, error) {
	now := time.Now()

	accessExpires := now.Add(s.accessTTL)
	accessToken, err := s.signToken(user.ID, "access", now, accessExpires)
	if err != nil {
		return nil, err
	}

	refreshExpires := now.Add(s.refreshTTL)
	refreshToken, err := s.signToken(user.ID, "refresh", now, refreshExpires)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Create(ctx, &models.Token{
		Token:     refreshToken,
		UserID:    user.ID,
		Type:      models.TokenRefresh,
		ExpiresAt: refreshExpires,
	}); err != nil {
		return nil, fmt.Errorf("save refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:    accessToken,
		AccessExpires:  accessExpires,
		RefreshToken:   refreshToken,
		RefreshExpires: refreshExpires,
	}, nil
}

func (s *userService) signToken(userID uint, tokenType string, issuedAt, expires time.Time) (string, error) {
	claims := tokenClaims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (s *userService) verifyToken(token, tokenType string) (uint, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Type != tokenType {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(userID), nil
}
