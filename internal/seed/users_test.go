package seed_test

import (
	"context"
	"testing"
	"time"

	"catalog_service/internal/auth"
	"catalog_service/internal/domain"
	"catalog_service/internal/repository"
	"catalog_service/internal/seed"
	"catalog_service/internal/testutil"
	"catalog_service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers(t *testing.T) {
	ctx := context.Background()
	logger := testutil.NewLogger()
	db := testutil.NewDB(t)
	authUC := usecase.NewAuthUseCase(
		repository.NewUserRepository(db, logger),
		auth.NewTokenManager("secret", time.Hour, "catalog"),
		logger,
	)

	accounts := []seed.Account{
		{Name: "Super", Lastname: "Admin", Email: "root@example.com", Password: "rootpw", Role: domain.RoleSuperAdmin},
		{Name: "User", Lastname: "Client", Email: "client@example.com", Password: "clientpw", Role: domain.RoleUser},
		{Name: "No", Lastname: "Password", Email: "nopw@example.com", Role: domain.RoleAdmin},
		{Name: "No", Lastname: "Email", Password: "x", Role: domain.RoleAdmin},
	}

	require.NoError(t, seed.Users(ctx, authUC, accounts, logger))
	require.NoError(t, seed.Users(ctx, authUC, accounts, logger))

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	resp, err := authUC.Login(ctx, "root@example.com", "rootpw")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, resp.User.Role)

	_, err = authUC.Login(ctx, "nopw@example.com", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
