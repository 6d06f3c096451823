package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	request "lomba_backend/internal/adapter/http/dto/request"
	response "lomba_backend/internal/adapter/http/dto/response"
	"lomba_backend/internal/adapter/http/middleware"
	"lomba_backend/internal/domain/entities"
	"lomba_backend/internal/usecase"
	"lomba_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTeamPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// TeamHandler handles team registration and membership for leaders, plus the
// admin verification surface.

type TeamHandler struct {
	usecase usecase.ITeamUseCase
}

func NewTeamHandler(uc usecase.ITeamUseCase) *TeamHandler {
	return &TeamHandler{usecase: uc}
}

// Create registers a new team with the requester as leader.
func (h *TeamHandler) Create(c *gin.Context) {
	var payload request.CreateTeamRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTeamPayload.HTTPStatus, errInvalidTeamPayload.ToHTTPError())
		return
	}

	leader := middleware.CurrentUser(c)
	team, err := h.usecase.Create(c.Request.Context(), payload.Name, entities.CompetitionCategory(payload.Category), leader.ID)
	if err != nil {
		log.Printf("[team][handler] create failed leader_id=%s err=%v", leader.ID, err)
		appErr := mapTeamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK("Team created", response.FromTeam(team)))
}

// Get returns one of the requester's teams.
func (h *TeamHandler) Get(c *gin.Context) {
	team, err := h.usecase.GetByID(c.Request.Context(), c.Param("team_id"), middleware.CurrentUser(c).ID)
	if err != nil {
		appErr := mapTeamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("", response.FromTeam(team)))
}

// ListMine returns the teams led by the requester.
func (h *TeamHandler) ListMine(c *gin.Context) {
	page, limit := pageParams(c)
	teams, total, err := h.usecase.ListMine(c.Request.Context(), middleware.CurrentUser(c).ID, page, limit)
	if err != nil {
		appErr := mapTeamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("", response.Paginated{
		Items: response.FromTeams(teams),
		Page:  page,
		Limit: limit,
		Total: total,
	}))
}

// Update edits the team profile; locked once paid or verified.
func (h *TeamHandler) Update(c *gin.Context) {
	var payload request.UpdateTeamRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTeamPayload.HTTPStatus, errInvalidTeamPayload.ToHTTPError())
		return
	}

	team, err := h.usecase.Update(c.Request.Context(), c.Param("team_id"), middleware.CurrentUser(c).ID, payload.Name, entities.CompetitionCategory(payload.Category))
	if err != nil {
		appErr := mapTeamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("Team updated", response.FromTeam(team)))
}

// AddMember appends a member record to the team.
func (h *TeamHandler) AddMember(c *gin.Context) {
	var payload request.AddMemberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTeamPayload.HTTPStatus, errInvalidTeamPayload.ToHTTPError())
		return
	}

	team, err := h.usecase.AddMember(c.Request.Context(), c.Param("team_id"), middleware.CurrentUser(c).ID, entities.Member{
		Name:           payload.Name,
		Email:          payload.Email,
		Phone:          payload.Phone,
		BirthDate:      payload.BirthDate,
		EducationLevel: payload.EducationLevel,
		Institution:    payload.Institution,
		IsLeader:       payload.IsLeader,
	})
	if err != nil {
		appErr := mapTeamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("Member added", response.FromTeam(team)))
}

// AdminList returns all teams, paginated.
func (h *TeamHandler) AdminList(c *gin.Context) {
	page, limit := pageParams(c)
	teams, total, err := h.usecase.AdminList(c.Request.Context(), page, limit)
	if err != nil {
		appErr := mapTeamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("", response.Paginated{
		Items: response.FromTeams(teams),
		Page:  page,
		Limit: limit,
		Total: total,
	}))
}

// AdminVerify approves a pending team registration.
func (h *TeamHandler) AdminVerify(c *gin.Context) {
	h.adminReview(c, h.usecase.AdminVerify, "Team verified")
}

// AdminReject declines a pending team registration.
func (h *TeamHandler) AdminReject(c *gin.Context) {
	h.adminReview(c, h.usecase.AdminReject, "Team rejected")
}

func (h *TeamHandler) adminReview(c *gin.Context, review func(ctx context.Context, id string) (entities.Team, error), message string) {
	teamID := c.Param("team_id")
	team, err := review(c.Request.Context(), teamID)
	if err != nil {
		log.Printf("[team][handler] admin review failed team_id=%s err=%v", teamID, err)
		appErr := mapTeamError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(message, response.FromTeam(team)))
}

func mapTeamError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTeamName), errors.Is(err, usecase.ErrInvalidCategory):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTeamNotFound):
		return pkg.NewDomainErrorSimple("TEAM_NOT_FOUND", "Team not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotTeamLeader):
		return pkg.NewDomainErrorSimple("NOT_TEAM_LEADER", "Only the team leader may do this", http.StatusForbidden)
	case errors.Is(err, usecase.ErrTeamLocked):
		return pkg.NewDomainErrorSimple("TEAM_LOCKED", "Team is verified or paid and can no longer be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrTeamAlreadyReviewed):
		return pkg.NewDomainErrorSimple("TEAM_ALREADY_REVIEWED", "Team verification already decided", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
