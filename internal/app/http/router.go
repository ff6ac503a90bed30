package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teamchat/internal/app/http/handler"
	"teamchat/internal/app/http/middleware"
)

func NewRouter(h *handler.Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.ZapLogger(log),
		middleware.ZapRecovery(log),
	)

	r.GET("/health", h.Health)

	r.PUT("/session", h.SessionSet)

	r.POST("/profiles/team/load", h.ProfilesTeamLoad)
	r.POST("/profiles/channel/load", h.ProfilesChannelLoad)
	r.GET("/profiles/get", h.ProfileGet)

	r.POST("/members/team/loadForProfiles", h.MembersTeamLoadForProfiles)
	r.POST("/members/channel/loadForProfiles", h.MembersChannelLoadForProfiles)
	r.POST("/members/loadForProfiles", h.MembersLoadForProfiles)

	r.POST("/preferences/theme", h.ThemeSave)
	r.GET("/themes", h.ThemesList)

	return r
}
