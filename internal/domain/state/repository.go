package state

import "context"

type Session struct {
	UserID           string
	CurrentTeamID    string
	CurrentChannelID string
}

// Query selects what a snapshot loads. Membership is loaded only for the
// listed scopes plus the session's current team and channel.
type Query struct {
	UserID     string
	TeamIDs    []string
	ChannelIDs []string
}

type Repository interface {
	Snapshot(ctx context.Context, q Query) (Snapshot, error)
	SetSession(ctx context.Context, s Session) error
}
