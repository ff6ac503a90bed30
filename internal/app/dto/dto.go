package dto

import "encoding/json"

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error Error `json:"error"`
}

type Profile struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Nickname  string `json:"nickname,omitempty"`
}

type Session struct {
	UserID           string `json:"user_id"`
	CurrentTeamID    string `json:"current_team_id"`
	CurrentChannelID string `json:"current_channel_id"`
}

type LoadProfilesRequest struct {
	UserID    string `json:"user_id"`
	Page      int    `json:"page"`
	PerPage   int    `json:"per_page"`
	TeamID    string `json:"team_id"`
	ChannelID string `json:"channel_id"`
}

type LoadProfilesResponse struct {
	Profiles []Profile `json:"profiles"`
}

type LoadMembersRequest struct {
	UserID    string    `json:"user_id"`
	TeamID    string    `json:"team_id"`
	ChannelID string    `json:"channel_id"`
	Profiles  []Profile `json:"profiles"`
}

type SaveThemeRequest struct {
	UserID string `json:"user_id"`
	TeamID string `json:"team_id"`
	// Either a built-in theme name or a full theme object.
	ThemeName string          `json:"theme_name"`
	Theme     json.RawMessage `json:"theme,omitempty"`
}

type ThemesResponse struct {
	Themes []string `json:"themes"`
}
