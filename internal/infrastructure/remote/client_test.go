package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"teamchat/internal/domain/member"
	"teamchat/internal/domain/preference"
	"teamchat/internal/infrastructure/remote"
)

func newClient(t *testing.T, h http.HandlerFunc) *remote.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return remote.NewClient(srv.URL+"/", "secret", time.Second, zap.NewNop())
}

func TestGetProfilesInTeam(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v4/users", r.URL.Path)
		require.Equal(t, "team_1", r.URL.Query().Get("in_team"))
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "60", r.URL.Query().Get("per_page"))
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[{"id":"u1","username":"alice","first_name":"Alice"}]`))
	})

	got, err := c.GetProfilesInTeam(context.Background(), "team_1", 2, 60)
	require.NoError(t, err)
	require.Equal(t, []member.Profile{{ID: "u1", Username: "alice", FirstName: "Alice"}}, got)
}

func TestGetProfilesInChannel(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "current_channel_id", r.URL.Query().Get("in_channel"))
		_, _ = w.Write([]byte(`[]`))
	})

	got, err := c.GetProfilesInChannel(context.Background(), "current_channel_id", 0, 60)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestGetTeamMembersByIDs(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v4/teams/team_1/members/ids", r.URL.Path)

		var ids []string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ids))
		require.Equal(t, []string{"other_user_id"}, ids)

		_, _ = w.Write([]byte(`[{"team_id":"team_1","user_id":"other_user_id","roles":"team_user"}]`))
	})

	got, err := c.GetTeamMembersByIDs(context.Background(), "team_1", []string{"other_user_id"})
	require.NoError(t, err)
	require.Equal(t, []member.TeamMember{{TeamID: "team_1", UserID: "other_user_id", Roles: "team_user"}}, got)
}

func TestGetChannelMembersByIDs(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v4/channels/current_channel_id/members/ids", r.URL.Path)
		_, _ = w.Write([]byte(`[{"channel_id":"current_channel_id","user_id":"other_user_id","roles":"channel_user"}]`))
	})

	got, err := c.GetChannelMembersByIDs(context.Background(), "current_channel_id", []string{"other_user_id"})
	require.NoError(t, err)
	require.Equal(t, []member.ChannelMember{{ChannelID: "current_channel_id", UserID: "other_user_id", Roles: "channel_user"}}, got)
}

func TestSaveAndDeletePreferences(t *testing.T) {
	type body []map[string]string
	var calls []string
	var bodies []body

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		var b body
		require.NoError(t, json.NewDecoder(r.Body).Decode(&b))
		bodies = append(bodies, b)
		w.WriteHeader(http.StatusOK)
	})

	ctx := context.Background()
	require.NoError(t, c.SavePreferences(ctx, "u1", []preference.Preference{
		{Category: "theme", Name: "", UserID: "u1", Value: `{"type":"Onyx"}`},
	}))
	require.NoError(t, c.DeletePreferences(ctx, "u1", []preference.Preference{
		preference.Key("theme", "team_1", "u1"),
	}))

	require.Equal(t, []string{
		"PUT /api/v4/users/u1/preferences",
		"POST /api/v4/users/u1/preferences/delete",
	}, calls)
	require.Equal(t, body{{"user_id": "u1", "category": "theme", "name": "", "value": `{"type":"Onyx"}`}}, bodies[0])
	require.Equal(t, body{{"user_id": "u1", "category": "theme", "name": "team_1"}}, bodies[1])
}

func TestAPIError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"You do not have the appropriate permissions."}`))
	})

	_, err := c.GetTeamMembersByIDs(context.Background(), "team_1", []string{"u1"})

	var apiErr *remote.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	require.Equal(t, "You do not have the appropriate permissions.", apiErr.Message)
}

func TestAPIError_PlainBody(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	err := c.SavePreferences(context.Background(), "u1", nil)

	var apiErr *remote.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "bad gateway", apiErr.Message)
}
