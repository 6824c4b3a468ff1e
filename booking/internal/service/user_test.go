package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/seat-booking/booking/internal/errs"
	"github.com/Astemirdum/seat-booking/booking/internal/model"
	"github.com/Astemirdum/seat-booking/booking/internal/service"
	"github.com/Astemirdum/seat-booking/pkg/auth"
)

func TestService_Register(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u model.User) (model.User, error) {
			require.Equal(t, "john@mail.com", u.Email)
			require.Equal(t, auth.RoleUser, u.Role)
			require.True(t, auth.ComparePassword(u.Password, "secret1"))
			u.ID = userID
			return u, nil
		})

		u, err := svc.Register(context.Background(), model.RegisterRequest{Email: "John@Mail.com", Password: "secret1", Name: "John"})
		require.NoError(t, err)
		require.Equal(t, userID, u.ID)
	})

	t.Run("err. duplicate email", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(model.User{}, errs.Conflict("user with this email already exists"))

		_, err := svc.Register(context.Background(), model.RegisterRequest{Email: "a@b.com", Password: "secret1", Name: "John"})
		require.True(t, errs.IsConflict(err))
	})
}

func TestService_Login(t *testing.T) {
	t.Parallel()
	issuer := auth.NewIssuer(auth.Config{Secret: "test-secret", TTL: time.Hour})
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	user := model.User{ID: userID, Email: "john@mail.com", Password: hash, Role: auth.RoleLibrarian}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t, service.WithIssuer(issuer))
		repo.EXPECT().GetUserByEmail(gomock.Any(), "john@mail.com").Return(user, nil)

		resp, err := svc.Login(context.Background(), model.LoginRequest{Email: "john@mail.com", Password: "secret1"})
		require.NoError(t, err)
		claims, err := issuer.Parse(resp.Token)
		require.NoError(t, err)
		require.Equal(t, userID, claims.UserID)
		require.Equal(t, auth.RoleLibrarian, claims.Role)
	})

	t.Run("err. wrong password", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t, service.WithIssuer(issuer))
		repo.EXPECT().GetUserByEmail(gomock.Any(), "john@mail.com").Return(user, nil)

		_, err := svc.Login(context.Background(), model.LoginRequest{Email: "john@mail.com", Password: "wrong-one"})
		var aerr *errs.AuthError
		require.ErrorAs(t, err, &aerr)
		require.Equal(t, "invalid email or password", aerr.Message)
	})

	t.Run("err. unknown email", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t, service.WithIssuer(issuer))
		repo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@mail.com").Return(model.User{}, errs.NotFound("user"))

		_, err := svc.Login(context.Background(), model.LoginRequest{Email: "nobody@mail.com", Password: "secret1"})
		var aerr *errs.AuthError
		require.ErrorAs(t, err, &aerr)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	name := "  Johnny "
	repo.EXPECT().UpdateUserName(gomock.Any(), userID, "Johnny").Return(model.User{ID: userID, Name: "Johnny"}, nil)
	repo.EXPECT().GetUser(gomock.Any(), userID).Return(model.User{ID: userID, Name: "Johnny"}, nil)

	u, err := svc.UpdateProfile(context.Background(), userID, model.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Johnny", u.Name)

	u, err = svc.UpdateProfile(context.Background(), userID, model.UpdateProfileRequest{})
	require.NoError(t, err)
	require.Equal(t, "Johnny", u.Name)
}
