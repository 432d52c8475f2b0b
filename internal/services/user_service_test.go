package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dealpipeline/internal/models"
	"dealpipeline/internal/repositories"
	"dealpipeline/internal/repositories/mocks"
	"dealpipeline/internal/services"
)

func newUserService(repo *mocks.UserRepository) services.UserService {
	return services.NewUserService(repo, services.NewAuthService(30*time.Minute), nil)
}

func TestUserService_RegisterDefaultsRole(t *testing.T) {
	repo := &mocks.UserRepository{}
	repo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		return u.Role == models.RoleAnalyst && u.IsActive && u.PasswordHash != "secret123"
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = 5
	}).Return(nil)

	svc := newUserService(repo)
	user, err := svc.Register(&models.RegisterRequest{
		Email:    "a@fund.vc",
		Password: "secret123",
		FullName: "Ann Analyst",
	})
	require.NoError(t, err)
	require.Equal(t, 5, user.ID)
	require.Equal(t, models.RoleAnalyst, user.Role)
	repo.AssertExpectations(t)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	repo := &mocks.UserRepository{}
	repo.On("Create", mock.Anything).Return(repositories.ErrDuplicate)

	svc := newUserService(repo)
	_, err := svc.Register(&models.RegisterRequest{Email: "a@fund.vc", Password: "secret123"})
	require.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestUserService_Authenticate(t *testing.T) {
	auth := services.NewAuthService(30 * time.Minute)
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	repo := &mocks.UserRepository{}
	repo.On("GetByEmail", "a@fund.vc").Return(&models.User{
		ID: 5, Email: "a@fund.vc", PasswordHash: hash, Role: models.RolePartner, IsActive: true,
	}, nil)

	svc := services.NewUserService(repo, auth, nil)

	user, err := svc.Authenticate("a@fund.vc", "secret123")
	require.NoError(t, err)
	require.Equal(t, 5, user.ID)

	_, err = svc.Authenticate("a@fund.vc", "wrong-password")
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestUserService_AuthenticateUnknownEmail(t *testing.T) {
	repo := &mocks.UserRepository{}
	repo.On("GetByEmail", "nobody@fund.vc").Return((*models.User)(nil), nil)

	svc := newUserService(repo)
	_, err := svc.Authenticate("nobody@fund.vc", "whatever1")
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestUserService_AuthenticateInactive(t *testing.T) {
	auth := services.NewAuthService(30 * time.Minute)
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	repo := &mocks.UserRepository{}
	repo.On("GetByEmail", "a@fund.vc").Return(&models.User{
		ID: 5, Email: "a@fund.vc", PasswordHash: hash, IsActive: false,
	}, nil)

	svc := services.NewUserService(repo, auth, nil)
	_, err = svc.Authenticate("a@fund.vc", "secret123")
	require.ErrorIs(t, err, services.ErrUserInactive)
}

func TestUserService_UpdateRehashesPassword(t *testing.T) {
	auth := services.NewAuthService(30 * time.Minute)
	oldHash, err := auth.HashPassword("oldpass12")
	require.NoError(t, err)

	repo := &mocks.UserRepository{}
	repo.On("GetByID", 5).Return(&models.User{ID: 5, Email: "a@fund.vc", PasswordHash: oldHash, IsActive: true}, nil)
	repo.On("Update", mock.MatchedBy(func(u *models.User) bool {
		return u.PasswordHash != oldHash && auth.CheckPassword(u.PasswordHash, "newpass12")
	})).Return(nil)

	svc := services.NewUserService(repo, auth, nil)
	_, err = svc.Update(5, &models.UserUpdate{Password: strPtr("newpass12")})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUserService_UpdateNotFound(t *testing.T) {
	repo := &mocks.UserRepository{}
	repo.On("GetByID", 42).Return((*models.User)(nil), nil)

	svc := newUserService(repo)
	_, err := svc.Update(42, &models.UserUpdate{})
	require.ErrorIs(t, err, services.ErrUserNotFound)
}
