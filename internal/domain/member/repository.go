package member

import "context"

// Fetcher is the remote side: the chat server API.
type Fetcher interface {
	GetProfilesInTeam(ctx context.Context, teamID string, page, perPage int) ([]Profile, error)
	GetProfilesInChannel(ctx context.Context, channelID string, page, perPage int) ([]Profile, error)
	GetTeamMembersByIDs(ctx context.Context, teamID string, userIDs []string) ([]TeamMember, error)
	GetChannelMembersByIDs(ctx context.Context, channelID string, userIDs []string) ([]ChannelMember, error)
}

// Repository is the local store fetched entities are written to.
type Repository interface {
	UpsertProfiles(ctx context.Context, profiles []Profile) error
	UpsertTeamMembers(ctx context.Context, members []TeamMember) error
	UpsertChannelMembers(ctx context.Context, members []ChannelMember) error
}
