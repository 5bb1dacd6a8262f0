package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kaineetam/internal/auth"
	"kaineetam/internal/model"
	"kaineetam/internal/repository"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSenderAlreadyExists is returned when trying to register an existing sender.
	ErrSenderAlreadyExists = errors.New("sender already exists")
	// ErrInvalidRefreshToken is returned when refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// AuthService handles sender profile authentication. Profiles are optional:
// blessings can be created anonymously, a profile only exists so a sender can
// come back and list theirs.
type AuthService interface {
	Register(ctx context.Context, email, password, name, defaultUPIID string) (*model.Sender, error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, sender *model.Sender, err error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	senderRepo repository.SenderRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(senderRepo repository.SenderRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		senderRepo: senderRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Register creates a new sender profile with hashed password.
func (s *authService) Register(ctx context.Context, email, password, name, defaultUPIID string) (*model.Sender, error) {
	existing, err := s.senderRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrSenderAlreadyExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check sender existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	sender := &model.Sender{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         name,
		DefaultUPIID: defaultUPIID,
	}

	if err := s.senderRepo.Create(ctx, sender); err != nil {
		return nil, fmt.Errorf("create sender: %w", err)
	}

	return sender, nil
}

// Login authenticates a sender and returns access and refresh tokens.
func (s *authService) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, sender *model.Sender, err error) {
	sender, err = s.senderRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(sender.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	senderID := sender.ID.String()
	accessToken, err = s.jwtService.GenerateAccessToken(senderID, sender.Email)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(senderID, sender.Email)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, senderID, sender.Email, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, sender, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	senderID, email, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(senderID, email)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return ErrInvalidRefreshToken
	}

	if err := s.tokenStore.DeleteRefreshToken(ctx, tokenID); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}

	return nil
}
