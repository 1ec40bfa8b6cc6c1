package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/GoArmGo/MovieApp/internal/core/ports"
	"github.com/GoArmGo/MovieApp/internal/domain"
)

// identityUseCase implements IdentityUseCase
type identityUseCase struct {
	users  ports.UserStorage
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger *slog.Logger
}

// NewIdentityUseCase создает новый экземпляр IdentityUseCase
func NewIdentityUseCase(
	users ports.UserStorage,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	logger *slog.Logger,
) IdentityUseCase {
	return &identityUseCase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

func (uc *identityUseCase) LookupField(ctx context.Context, email string, field domain.UserField) (string, error) {
	user, err := uc.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("usecase: lookup %s by email: %w", field, err)
	}

	switch field {
	case domain.UserFieldName:
		return user.Name, nil
	case domain.UserFieldLastName:
		return user.LastName, nil
	case domain.UserFieldID:
		return strconv.FormatInt(user.ID, 10), nil
	default:
		return "", fmt.Errorf("usecase: unknown user field %q", field)
	}
}

func (uc *identityUseCase) SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.AuthResult, error) {
	hashed, err := uc.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("usecase: signup: %w", err)
	}

	user := &domain.User{
		Email:          req.Email,
		HashedPassword: hashed,
		Name:           req.Name,
		LastName:       req.LastName,
	}
	if err := uc.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("usecase: signup: %w", err)
	}

	token, err := uc.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("usecase: signup: %w", err)
	}

	uc.logger.Info("user signed up", "user_id", user.ID)
	return &domain.AuthResult{Email: user.Email, Token: token}, nil
}

func (uc *identityUseCase) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error) {
	user, err := uc.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("usecase: login: %w", err)
	}

	if err := uc.hasher.Compare(user.HashedPassword, req.Password); err != nil {
		uc.logger.Warn("login rejected", "user_id", user.ID, "error", err)
		return nil, fmt.Errorf("usecase: login: %w", err)
	}

	token, err := uc.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("usecase: login: %w", err)
	}

	uc.logger.Info("user logged in", "user_id", user.ID)
	return &domain.AuthResult{Email: user.Email, Token: token}, nil
}
