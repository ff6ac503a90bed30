package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"teamchat/internal/domain/member"
)

type userDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Nickname  string `json:"nickname"`
}

type teamMemberDTO struct {
	TeamID string `json:"team_id"`
	UserID string `json:"user_id"`
	Roles  string `json:"roles"`
}

type channelMemberDTO struct {
	ChannelID string `json:"channel_id"`
	UserID    string `json:"user_id"`
	Roles     string `json:"roles"`
}

func (c *Client) GetProfilesInTeam(ctx context.Context, teamID string, page, perPage int) ([]member.Profile, error) {
	return c.getProfiles(ctx, "in_team", teamID, page, perPage)
}

func (c *Client) GetProfilesInChannel(ctx context.Context, channelID string, page, perPage int) ([]member.Profile, error) {
	return c.getProfiles(ctx, "in_channel", channelID, page, perPage)
}

func (c *Client) getProfiles(ctx context.Context, scopeParam, scopeID string, page, perPage int) ([]member.Profile, error) {
	q := url.Values{}
	q.Set(scopeParam, scopeID)
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	var users []userDTO
	if err := c.do(ctx, http.MethodGet, "/users", q, nil, &users); err != nil {
		return nil, err
	}

	res := make([]member.Profile, 0, len(users))
	for _, u := range users {
		res = append(res, member.Profile{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Nickname:  u.Nickname,
		})
	}
	return res, nil
}

func (c *Client) GetTeamMembersByIDs(ctx context.Context, teamID string, userIDs []string) ([]member.TeamMember, error) {
	var list []teamMemberDTO
	if err := c.do(ctx, http.MethodPost, "/teams/"+url.PathEscape(teamID)+"/members/ids", nil, userIDs, &list); err != nil {
		return nil, err
	}

	res := make([]member.TeamMember, 0, len(list))
	for _, m := range list {
		res = append(res, member.TeamMember{TeamID: m.TeamID, UserID: m.UserID, Roles: m.Roles})
	}
	return res, nil
}

func (c *Client) GetChannelMembersByIDs(ctx context.Context, channelID string, userIDs []string) ([]member.ChannelMember, error) {
	var list []channelMemberDTO
	if err := c.do(ctx, http.MethodPost, "/channels/"+url.PathEscape(channelID)+"/members/ids", nil, userIDs, &list); err != nil {
		return nil, err
	}

	res := make([]member.ChannelMember, 0, len(list))
	for _, m := range list {
		res = append(res, member.ChannelMember{ChannelID: m.ChannelID, UserID: m.UserID, Roles: m.Roles})
	}
	return res, nil
}
