package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamchat/internal/app/dto"
	"teamchat/internal/domain/preference"
)

func (h *Handler) ThemeSave(c *gin.Context) {
	var body dto.SaveThemeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.UserID == "" {
		h.badRequest(c, "user_id is required")
		return
	}

	var theme preference.EncodedTheme
	switch {
	case body.ThemeName != "" && len(body.Theme) > 0:
		h.badRequest(c, "theme_name and theme are mutually exclusive")
		return
	case body.ThemeName != "":
		builtin, err := preference.ThemeByName(body.ThemeName)
		if err != nil {
			h.writeError(c, err)
			return
		}
		if theme, err = builtin.Encode(); err != nil {
			h.writeError(c, err)
			return
		}
	case len(body.Theme) > 0:
		var err error
		if theme, err = preference.ParseTheme(body.Theme); err != nil {
			h.writeError(c, err)
			return
		}
	default:
		h.badRequest(c, "theme_name or theme is required")
		return
	}

	snap, ok := h.snapshot(c, body.UserID, nil, nil)
	if !ok {
		return
	}

	if err := h.PrefSvc.SaveTheme(c.Request.Context(), snap, body.TeamID, theme); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ThemesList(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ThemesResponse{Themes: preference.ThemeNames()})
}
