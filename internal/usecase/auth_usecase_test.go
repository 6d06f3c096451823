package usecase

import (
	"context"
	"errors"
	"testing"

	"lomba_backend/internal/domain/entities"
	mock_interfaces "lomba_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func newAuthUseCaseForTest(t *testing.T) (*AuthUseCase, *mock_interfaces.MockIUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	return NewAuthUseCase(repo, []byte(testJWTSecret)), repo
}

func hashForTest(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	return string(hash)
}

func TestAuthUseCase_SignUp(t *testing.T) {
	t.Run("invalid payloads", func(t *testing.T) {
		uc, _ := newAuthUseCaseForTest(t)
		cases := []SignUpInput{
			{Email: "", Password: "password123", Name: "Budi"},
			{Email: "not-an-email", Password: "password123", Name: "Budi"},
			{Email: "budi@test.com", Password: "short", Name: "Budi"},
			{Email: "budi@test.com", Password: "password123", Name: "B"},
		}
		for _, in := range cases {
			if _, err := uc.SignUp(context.Background(), in); !errors.Is(err, ErrInvalidSignUp) {
				t.Fatalf("input %+v: expected ErrInvalidSignUp, got %v", in, err)
			}
		}
	})

	t.Run("email already registered", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "budi@test.com").Return(entities.User{ID: "user-1"}, nil)

		_, err := uc.SignUp(context.Background(), SignUpInput{Email: "budi@test.com", Password: "password123", Name: "Budi"})
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("success normalizes email and hashes password", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "budi@test.com").Return(entities.User{}, nil)

		var persisted entities.User
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user entities.User) (entities.User, error) {
				persisted = user
				return user, nil
			})

		out, err := uc.SignUp(context.Background(), SignUpInput{Email: " Budi@Test.com ", Password: "password123", Name: "Budi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if persisted.Email != "budi@test.com" {
			t.Fatalf("expected lowercased email, got %q", persisted.Email)
		}
		if persisted.Role != entities.RoleUser {
			t.Fatalf("expected user role, got %s", persisted.Role)
		}
		if persisted.PasswordHash == "password123" || persisted.PasswordHash == "" {
			t.Fatal("expected password to be hashed")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("password123")); err != nil {
			t.Fatalf("stored hash does not match password: %v", err)
		}
		if out.ID == "" {
			t.Fatal("expected generated id")
		}
	})
}

func TestAuthUseCase_SignIn(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "budi@test.com").Return(entities.User{}, nil)

		_, _, err := uc.SignIn(context.Background(), "budi@test.com", "password123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "budi@test.com").Return(entities.User{
			ID: "user-1", Email: "budi@test.com", PasswordHash: hashForTest(t, "password123"), Role: entities.RoleUser,
		}, nil)

		_, _, err := uc.SignIn(context.Background(), "budi@test.com", "wrong-password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("token round-trips through Authenticate", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		user := entities.User{ID: "user-1", Email: "budi@test.com", PasswordHash: hashForTest(t, "password123"), Role: entities.RoleUser}
		repo.EXPECT().GetByEmail(gomock.Any(), "budi@test.com").Return(user, nil)
		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(user, nil)

		token, signedIn, err := uc.SignIn(context.Background(), "Budi@Test.com", "password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if signedIn.ID != "user-1" {
			t.Fatalf("expected user-1, got %q", signedIn.ID)
		}

		resolved, err := uc.Authenticate(context.Background(), token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resolved.ID != "user-1" {
			t.Fatalf("expected user-1 from token, got %q", resolved.ID)
		}
	})
}

func TestAuthUseCase_AdminSignIn(t *testing.T) {
	t.Run("participant cannot use the admin door", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "budi@test.com").Return(entities.User{
			ID: "user-1", PasswordHash: hashForTest(t, "password123"), Role: entities.RoleUser,
		}, nil)

		_, _, err := uc.AdminSignIn(context.Background(), "budi@test.com", "password123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("admin signs in", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "admin@test.com").Return(entities.User{
			ID: "admin-1", PasswordHash: hashForTest(t, "password123"), Role: entities.RoleAdmin,
		}, nil)

		token, user, err := uc.AdminSignIn(context.Background(), "admin@test.com", "password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" || user.Role != entities.RoleAdmin {
			t.Fatalf("expected signed admin token, got token=%q role=%s", token, user.Role)
		}
	})
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		uc, _ := newAuthUseCaseForTest(t)
		_, err := uc.Authenticate(context.Background(), "not.a.token")
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		user := entities.User{ID: "user-1", PasswordHash: hashForTest(t, "password123"), Role: entities.RoleUser}
		repo.EXPECT().GetByEmail(gomock.Any(), "budi@test.com").Return(user, nil)
		token, _, err := uc.SignIn(context.Background(), "budi@test.com", "password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		foreign := NewAuthUseCase(repo, []byte("other-secret"))
		if _, err := foreign.Authenticate(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("token for a deleted account", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		user := entities.User{ID: "user-1", PasswordHash: hashForTest(t, "password123"), Role: entities.RoleUser}
		repo.EXPECT().GetByEmail(gomock.Any(), "budi@test.com").Return(user, nil)
		token, _, err := uc.SignIn(context.Background(), "budi@test.com", "password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{}, nil)
		if _, err := uc.Authenticate(context.Background(), token); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
