package impl

import (
	"io"
	"log/slog"

	"bookrack/config"
	"bookrack/internal/domain/repository"
	"bookrack/internal/infra/auth"
	"bookrack/internal/infra/persistence/memory"
	"bookrack/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func newTestAuthService(accountRepo repository.AccountRepository) usecase.AuthUsecase {
	tokenService, err := auth.NewJWTService(newTestConfig())
	if err != nil {
		panic(err)
	}

	return NewAuthService(AuthServiceParams{
		AccountRepo:  accountRepo,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})
}

func newTestReviewService(catalog repository.Catalog) usecase.ReviewUsecase {
	return NewReviewService(ReviewServiceParams{
		Catalog: catalog,
		Logger:  newDiscardLogger(),
	})
}

func newTestCatalogService() usecase.CatalogUsecase {
	return NewCatalogService(CatalogServiceParams{
		Catalog: memory.NewCatalog(),
		Logger:  newDiscardLogger(),
	})
}
