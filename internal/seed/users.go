// Package seed creates the default accounts at startup.
package seed

import (
	"context"
	"fmt"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/sirupsen/logrus"
)

type Account struct {
	Name     string
	Lastname string
	Email    string
	Password string
	Role     domain.Role
}

// Users creates each account that does not exist yet. Accounts without an
// email or password are skipped. Running it twice changes nothing.
func Users(ctx context.Context, authUC usecase.AuthUseCase, accounts []Account, log *logrus.Logger) error {
	for _, account := range accounts {
		if account.Email == "" || account.Password == "" {
			log.Debugf("Seeder: Skipping %s account, credentials not configured", account.Role)
			continue
		}

		_, created, err := authUC.EnsureUser(ctx, &domain.User{
			Name:     account.Name,
			Lastname: account.Lastname,
			Email:    account.Email,
			Role:     account.Role,
		}, account.Password)
		if err != nil {
			return fmt.Errorf("could not seed %s account %s: %w", account.Role, account.Email, err)
		}
		if created {
			log.Infof("Seeder: Created %s account %s", account.Role, account.Email)
		}
	}
	return nil
}
