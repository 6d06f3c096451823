package handlers

import (
	"errors"
	"log"
	"net/http"

	request "lomba_backend/internal/adapter/http/dto/request"
	response "lomba_backend/internal/adapter/http/dto/response"
	"lomba_backend/internal/adapter/http/middleware"
	"lomba_backend/internal/domain/entities"
	"lomba_backend/internal/infrastructure/idrx"
	"lomba_backend/internal/usecase"
	"lomba_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTransactionPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// TransactionHandler handles registration payments: creation by the team
// leader, the provider webhook, and the admin surface.

type TransactionHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewTransactionHandler(uc usecase.IPaymentUseCase) *TransactionHandler {
	return &TransactionHandler{usecase: uc}
}

// Create registers a mint request for the team and returns the checkout URL.
func (h *TransactionHandler) Create(c *gin.Context) {
	var payload request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}

	requester := middleware.CurrentUser(c)
	log.Printf("[transaction][handler] create start team_id=%s amount=%d requester_id=%s", payload.TeamID, payload.Amount, requester.ID)

	out, err := h.usecase.Create(c.Request.Context(), usecase.CreatePaymentInput{
		TeamID:         payload.TeamID,
		Amount:         payload.Amount,
		ExpiryHours:    payload.ExpiryPeriod,
		ProductDetails: payload.ProductDetails,
		RequesterID:    requester.ID,
	})
	if err != nil {
		log.Printf("[transaction][handler] create failed team_id=%s err=%v", payload.TeamID, err)
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[transaction][handler] create success payment_id=%s team_id=%s", out.Payment.ID, payload.TeamID)

	c.JSON(http.StatusCreated, response.OK("Payment created", response.FromCreatedPayment(out.Payment, out.PaymentURL)))
}

// Get returns a single payment owned by the requester's team.
func (h *TransactionHandler) Get(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"), middleware.CurrentUser(c).ID)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("", response.FromPayment(payment)))
}

// ListByTeam returns the payment history of one of the requester's teams.
func (h *TransactionHandler) ListByTeam(c *gin.Context) {
	payments, err := h.usecase.ListByTeam(c.Request.Context(), c.Param("team_id"), middleware.CurrentUser(c).ID)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("", response.FromPayments(payments)))
}

// Webhook ingests the provider's asynchronous payment notification. It is
// unauthenticated; a forged event can at most nudge a payment into a state
// the scheduler would verify against the provider anyway.
func (h *TransactionHandler) Webhook(c *gin.Context) {
	var payload request.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}
	log.Printf("[transaction][webhook] received reference=%s status=%s", payload.Reference, payload.Status)

	payment, err := h.usecase.ApplyWebhookEvent(c.Request.Context(), payload.Reference, payload.Status, payload.PaidAt)
	if err != nil {
		log.Printf("[transaction][webhook] failed reference=%s err=%v", payload.Reference, err)
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("Webhook processed", response.FromPayment(payment)))
}

// PaymentMethods proxies the provider's payment method catalogue.
func (h *TransactionHandler) PaymentMethods(c *gin.Context) {
	methods, err := h.usecase.PaymentMethods(c.Request.Context())
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("", methods))
}

// AdminList returns payments across all teams, optionally filtered by status.
func (h *TransactionHandler) AdminList(c *gin.Context) {
	page, limit := pageParams(c)
	status := entities.PaymentStatus(c.Query("status"))

	payments, total, err := h.usecase.AdminList(c.Request.Context(), status, page, limit)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("", response.Paginated{
		Items: response.FromPayments(payments),
		Page:  page,
		Limit: limit,
		Total: total,
	}))
}

// AdminVerify forces a payment to COMPLETED without provider confirmation.
func (h *TransactionHandler) AdminVerify(c *gin.Context) {
	paymentID := c.Param("payment_id")
	payment, err := h.usecase.AdminVerify(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[transaction][handler] admin verify failed payment_id=%s err=%v", paymentID, err)
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("Payment verified", response.FromPayment(payment)))
}

func mapTransactionError(err error) *pkg.AppError {
	var providerErr *idrx.ProviderError

	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentAmount), errors.Is(err, usecase.ErrInvalidExpiryPeriod), errors.Is(err, usecase.ErrMissingReference):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentTeamNotFound):
		return pkg.NewDomainErrorSimple("TEAM_NOT_FOUND", "Team not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotTeamLeader):
		return pkg.NewDomainErrorSimple("NOT_TEAM_LEADER", "Only the team leader may do this", http.StatusForbidden)
	case errors.Is(err, usecase.ErrActivePaymentExists):
		return pkg.NewDomainErrorSimple("ACTIVE_PAYMENT_EXISTS", "Team already has an active payment", http.StatusConflict)
	case errors.As(err, &providerErr):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider rejected the request", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
