package routes

import (
	"lomba_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathTeams = "/teams"

func addTeamRoutes(rg *gin.RouterGroup, teamHandler *handlers.TeamHandler, requireAuth, requireAdmin gin.HandlerFunc) {
	teams := rg.Group(PathTeams, requireAuth)
	{
		teams.POST("", teamHandler.Create)
		teams.GET("/my-teams", teamHandler.ListMine)
		teams.GET("/:team_id", teamHandler.Get)
		teams.PUT("/:team_id", teamHandler.Update)
		teams.POST("/:team_id/members", teamHandler.AddMember)
	}

	admin := teams.Group("/admin", requireAdmin)
	{
		admin.GET("/all", teamHandler.AdminList)
		admin.PATCH("/:team_id/verify", teamHandler.AdminVerify)
		admin.PATCH("/:team_id/reject", teamHandler.AdminReject)
	}
}
