// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"bookrack/internal/domain/entity"
	domainerrors "bookrack/internal/domain/errors"
	"bookrack/internal/domain/repository"
	"bookrack/internal/domain/service"
	"bookrack/internal/infra/metrics"
	"bookrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It orchestrates the
// account repository for registration and credential checks and the token
// service for session token issuance.
type authService struct {
	accountRepo  repository.AccountRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo:  params.AccountRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register creates a new account after the uniqueness check. Registration is
// not idempotent: a second call with the same username conflicts.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil || input.Username == "" || input.Password == "" {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username and password are required")
	}

	account := &entity.Account{
		Username: input.Username,
		Password: input.Password,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			srv.logger.Warn("Registration conflict", slog.String("username", input.Username))
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()

			return nil, errors.Wrap(domainerrors.ErrUsernameTaken, "username not available")
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.logger.Info("Account registered", slog.String("username", account.Username))
	metrics.RegistrationsTotal.WithLabelValues("created").Inc()

	return &usecase.RegisterOutput{Username: account.Username}, nil
}

// Login verifies credentials and issues a fresh access token. The caller is
// responsible for persisting the session record alongside the token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Username == "" || input.Password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username and password are required")
	}

	if !srv.accountRepo.VerifyCredentials(ctx, input.Username, input.Password) {
		srv.logger.Warn("Login denied", slog.String("username", input.Username))
		metrics.LoginsTotal.WithLabelValues("denied").Inc()

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "credential check failed")
	}

	token, err := srv.tokenService.Issue(input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.logger.Info("Login successful", slog.String("username", input.Username))
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return &usecase.LoginOutput{
		AccessToken: token,
		Username:    input.Username,
	}, nil
}
