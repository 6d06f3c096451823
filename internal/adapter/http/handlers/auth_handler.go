package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "lomba_backend/internal/adapter/http/dto/request"
	response "lomba_backend/internal/adapter/http/dto/response"
	"lomba_backend/internal/adapter/http/middleware"
	"lomba_backend/internal/domain/entities"
	"lomba_backend/internal/usecase"
	"lomba_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// AuthHandler handles sign up and sign in for participants and admins.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// SignUp registers a new participant account.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.SignUp(c.Request.Context(), usecase.SignUpInput{
		Email:    payload.Email,
		Password: payload.Password,
		Name:     payload.Name,
		FullName: payload.FullName,
		Phone:    payload.Phone,
	})
	if err != nil {
		log.Printf("[auth][handler] signup failed err=%v", err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK("Account created", response.FromUser(user)))
}

// SignIn exchanges credentials for a bearer token.
func (h *AuthHandler) SignIn(c *gin.Context) {
	h.signIn(c, h.usecase.SignIn)
}

// AdminSignIn is the admin-only door; participant credentials are rejected.
func (h *AuthHandler) AdminSignIn(c *gin.Context) {
	h.signIn(c, h.usecase.AdminSignIn)
}

func (h *AuthHandler) signIn(c *gin.Context, signIn func(ctx context.Context, email, password string) (string, entities.User, error)) {
	var payload request.SignInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	token, user, err := signIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		log.Printf("[auth][handler] signin failed email=%s err=%v", payload.Email, err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("Signed in", response.FromSignIn(token, user)))
}

// Me returns the account behind the current bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, response.OK("", response.FromUser(middleware.CurrentUser(c))))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSignUp):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid sign up payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
