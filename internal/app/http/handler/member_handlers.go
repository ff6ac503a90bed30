package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamchat/internal/app/dto"
	"teamchat/internal/domain"
	"teamchat/internal/domain/member"
)

const defaultPerPage = 60

func (h *Handler) ProfilesTeamLoad(c *gin.Context) {
	body, ok := h.bindLoadProfiles(c)
	if !ok {
		return
	}

	snap, ok := h.snapshot(c, body.UserID, []string{body.TeamID}, nil)
	if !ok {
		return
	}

	profiles, err := h.MemberSvc.LoadProfilesAndTeamMembers(c.Request.Context(), snap, body.Page, body.PerPage, body.TeamID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoadProfilesResponse{Profiles: toProfileDTOs(profiles)})
}

func (h *Handler) ProfilesChannelLoad(c *gin.Context) {
	body, ok := h.bindLoadProfiles(c)
	if !ok {
		return
	}

	snap, ok := h.snapshot(c, body.UserID, []string{body.TeamID}, []string{body.ChannelID})
	if !ok {
		return
	}

	profiles, err := h.MemberSvc.LoadProfilesAndTeamMembersAndChannelMembers(c.Request.Context(), snap, body.Page, body.PerPage, body.TeamID, body.ChannelID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoadProfilesResponse{Profiles: toProfileDTOs(profiles)})
}

func (h *Handler) ProfileGet(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		h.badRequest(c, "user_id is required")
		return
	}

	p, found, err := h.Profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !found {
		h.writeError(c, &domain.DomainError{
			Code:       domain.ErrorCodeNotFound,
			Message:    "profile not loaded",
			HTTPStatus: http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, toProfileDTOs([]member.Profile{p})[0])
}

func (h *Handler) MembersTeamLoadForProfiles(c *gin.Context) {
	body, ok := h.bindLoadMembers(c)
	if !ok {
		return
	}

	snap, ok := h.snapshot(c, body.UserID, []string{body.TeamID}, nil)
	if !ok {
		return
	}

	if err := h.MemberSvc.LoadTeamMembersForProfilesList(c.Request.Context(), snap, fromProfileDTOs(body.Profiles), body.TeamID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) MembersChannelLoadForProfiles(c *gin.Context) {
	body, ok := h.bindLoadMembers(c)
	if !ok {
		return
	}

	snap, ok := h.snapshot(c, body.UserID, nil, []string{body.ChannelID})
	if !ok {
		return
	}

	if err := h.MemberSvc.LoadChannelMembersForProfilesList(c.Request.Context(), snap, fromProfileDTOs(body.Profiles), body.ChannelID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) MembersLoadForProfiles(c *gin.Context) {
	body, ok := h.bindLoadMembers(c)
	if !ok {
		return
	}

	snap, ok := h.snapshot(c, body.UserID, []string{body.TeamID}, []string{body.ChannelID})
	if !ok {
		return
	}

	if err := h.MemberSvc.LoadTeamMembersAndChannelMembersForProfilesList(c.Request.Context(), snap, fromProfileDTOs(body.Profiles), body.TeamID, body.ChannelID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) bindLoadProfiles(c *gin.Context) (dto.LoadProfilesRequest, bool) {
	var body dto.LoadProfilesRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return body, false
	}
	if body.UserID == "" {
		h.badRequest(c, "user_id is required")
		return body, false
	}
	if body.Page < 0 || body.PerPage < 0 {
		h.badRequest(c, "page and per_page must not be negative")
		return body, false
	}
	if body.PerPage == 0 {
		body.PerPage = defaultPerPage
	}
	return body, true
}

func (h *Handler) bindLoadMembers(c *gin.Context) (dto.LoadMembersRequest, bool) {
	var body dto.LoadMembersRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return body, false
	}
	if body.UserID == "" {
		h.badRequest(c, "user_id is required")
		return body, false
	}
	for _, p := range body.Profiles {
		if p.UserID == "" {
			h.badRequest(c, "every profile needs a user_id")
			return body, false
		}
	}
	return body, true
}

func toProfileDTOs(profiles []member.Profile) []dto.Profile {
	res := make([]dto.Profile, 0, len(profiles))
	for _, p := range profiles {
		res = append(res, dto.Profile{
			UserID:    p.ID,
			Username:  p.Username,
			Email:     p.Email,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Nickname:  p.Nickname,
		})
	}
	return res
}

func fromProfileDTOs(profiles []dto.Profile) []member.Profile {
	res := make([]member.Profile, 0, len(profiles))
	for _, p := range profiles {
		res = append(res, member.Profile{
			ID:        p.UserID,
			Username:  p.Username,
			Email:     p.Email,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Nickname:  p.Nickname,
		})
	}
	return res
}
