package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamchat/internal/app/dto"
	"teamchat/internal/domain/state"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) SessionSet(c *gin.Context) {
	var body dto.Session
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.UserID == "" {
		h.badRequest(c, "user_id is required")
		return
	}

	err := h.States.SetSession(c.Request.Context(), state.Session{
		UserID:           body.UserID,
		CurrentTeamID:    body.CurrentTeamID,
		CurrentChannelID: body.CurrentChannelID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, body)
}

func (h *Handler) snapshot(c *gin.Context, userID string, teamIDs, channelIDs []string) (state.Snapshot, bool) {
	snap, err := h.States.Snapshot(c.Request.Context(), state.Query{
		UserID:     userID,
		TeamIDs:    teamIDs,
		ChannelIDs: channelIDs,
	})
	if err != nil {
		h.writeError(c, err)
		return state.Snapshot{}, false
	}
	return snap, true
}
