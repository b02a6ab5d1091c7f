package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/internal/domain/repository"
	"github.com/sangkips/vendor-ledger-api/pkg/apperror"
	"github.com/sangkips/vendor-ledger-api/pkg/utils"
	"go.uber.org/zap"
)

// AuthService handles operator sign-in and token refresh
type AuthService struct {
	operatorRepo repository.OperatorRepository
	jwtManager   *utils.JWTManager
	logger       *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(operatorRepo repository.OperatorRepository, jwtManager *utils.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		operatorRepo: operatorRepo,
		jwtManager:   jwtManager,
		logger:       logger.Named("auth"),
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Operator     *entity.Operator
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// Login authenticates an operator and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	operator, err := s.operatorRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if operator == nil || !utils.CheckPasswordHash(input.Password, operator.Password) {
		s.logger.Warn("failed login", zap.String("email", input.Email))
		return nil, apperror.ErrInvalidCredentials
	}

	out, err := s.issue(operator)
	if err != nil {
		return nil, err
	}

	if err := s.operatorRepo.TouchLastLogin(ctx, operator.ID, time.Now()); err != nil {
		s.logger.Warn("failed to record last login", zap.Error(err))
	}
	s.logger.Info("operator signed in", zap.String("operator_id", operator.ID.String()))
	return out, nil
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	operatorID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	operator, err := s.operatorRepo.GetByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, apperror.ErrInvalidToken
	}
	return s.issue(operator)
}

// GetProfile returns the signed-in operator
func (s *AuthService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	operator, err := s.operatorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, apperror.NewNotFoundError("Operator")
	}
	return operator, nil
}

func (s *AuthService) issue(operator *entity.Operator) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(operator.ID, operator.Email, operator.Roles())
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(operator.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Operator:     operator,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.AccessTokenExpiry().Seconds()),
	}, nil
}
