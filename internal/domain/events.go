package domain

import "context"

const (
	EventProfilesFetched       = "profiles.fetched"
	EventTeamMembersFetched    = "members.team_fetched"
	EventChannelMembersFetched = "members.channel_fetched"
	EventThemeSaved            = "theme.saved"
	EventThemeOverridesDeleted = "theme.overrides_deleted"
)

type Event struct {
	Type    string
	Payload map[string]any
}

type EventBus interface {
	Publish(ctx context.Context, e Event)
}
