package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"lomba_backend/internal/domain/entities"
	"lomba_backend/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidSignUp      = errors.New("invalid sign up payload")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

const tokenTTL = 24 * time.Hour

type IAuthUseCase interface {
	SignUp(ctx context.Context, in SignUpInput) (entities.User, error)
	SignIn(ctx context.Context, email, password string) (string, entities.User, error)
	AdminSignIn(ctx context.Context, email, password string) (string, entities.User, error)
	// Authenticate resolves a bearer token into the account it belongs to.
	Authenticate(ctx context.Context, token string) (entities.User, error)
}

type SignUpInput struct {
	Email    string
	Password string
	Name     string
	FullName string
	Phone    string
}

type AuthUseCase struct {
	users     interfaces.IUserRepository
	jwtSecret []byte
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, jwtSecret []byte) *AuthUseCase {
	return &AuthUseCase{users: users, jwtSecret: jwtSecret}
}

func (u *AuthUseCase) SignUp(ctx context.Context, in SignUpInput) (entities.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || !strings.Contains(in.Email, "@") || len(in.Password) < 8 || len(strings.TrimSpace(in.Name)) < 2 {
		return entities.User{}, ErrInvalidSignUp
	}

	existing, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(in.Name),
		FullName:     strings.TrimSpace(in.FullName),
		Phone:        strings.TrimSpace(in.Phone),
		Role:         entities.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := u.users.Create(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	log.Printf("[auth][usecase] signup user_id=%s", created.ID)
	return created, nil
}

func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (string, entities.User, error) {
	return u.signIn(ctx, email, password, "")
}

func (u *AuthUseCase) AdminSignIn(ctx context.Context, email, password string) (string, entities.User, error) {
	return u.signIn(ctx, email, password, entities.RoleAdmin)
}

func (u *AuthUseCase) signIn(ctx context.Context, email, password string, requireRole entities.Role) (string, entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.User{}, err
	}
	if user.ID == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}
	if requireRole != "" && user.Role != requireRole {
		return "", entities.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", entities.User{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(u.jwtSecret)
	if err != nil {
		return "", entities.User{}, err
	}
	log.Printf("[auth][usecase] signin user_id=%s role=%s", user.ID, user.Role)
	return signed, user, nil
}

func (u *AuthUseCase) Authenticate(ctx context.Context, tokenString string) (entities.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return u.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return entities.User{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entities.User{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return entities.User{}, ErrInvalidToken
	}

	user, err := u.users.GetByID(ctx, sub)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
