package remote

import (
	"context"
	"net/http"
	"net/url"

	"teamchat/internal/domain/preference"
)

type preferenceDTO struct {
	UserID   string `json:"user_id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Value    string `json:"value,omitempty"`
}

func toPreferenceDTOs(prefs []preference.Preference) []preferenceDTO {
	res := make([]preferenceDTO, 0, len(prefs))
	for _, p := range prefs {
		res = append(res, preferenceDTO{
			UserID:   p.UserID,
			Category: p.Category,
			Name:     p.Name,
			Value:    p.Value,
		})
	}
	return res
}

func (c *Client) SavePreferences(ctx context.Context, userID string, prefs []preference.Preference) error {
	return c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(userID)+"/preferences", nil, toPreferenceDTOs(prefs), nil)
}

func (c *Client) DeletePreferences(ctx context.Context, userID string, prefs []preference.Preference) error {
	return c.do(ctx, http.MethodPost, "/users/"+url.PathEscape(userID)+"/preferences/delete", nil, toPreferenceDTOs(prefs), nil)
}
