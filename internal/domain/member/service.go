package member

import (
	"context"
	"net/http"

	"teamchat/internal/domain"
	"teamchat/internal/domain/state"
)

type Service interface {
	LoadProfilesAndTeamMembers(ctx context.Context, snap state.Snapshot, page, perPage int, teamID string) ([]Profile, error)
	LoadProfilesAndTeamMembersAndChannelMembers(ctx context.Context, snap state.Snapshot, page, perPage int, teamID, channelID string) ([]Profile, error)
	LoadTeamMembersForProfilesList(ctx context.Context, snap state.Snapshot, profiles []Profile, teamID string) error
	LoadChannelMembersForProfilesList(ctx context.Context, snap state.Snapshot, profiles []Profile, channelID string) error
	LoadTeamMembersAndChannelMembersForProfilesList(ctx context.Context, snap state.Snapshot, profiles []Profile, teamID, channelID string) error
}

type service struct {
	uow     domain.UnitOfWork
	remote  Fetcher
	members Repository
	events  domain.EventBus
}

func NewService(
	uow domain.UnitOfWork,
	remote Fetcher,
	members Repository,
	events domain.EventBus,
) Service {
	return &service{
		uow:     uow,
		remote:  remote,
		members: members,
		events:  events,
	}
}

func (s *service) LoadProfilesAndTeamMembers(ctx context.Context, snap state.Snapshot, page, perPage int, teamID string) ([]Profile, error) {
	teamID = snap.TeamIDOrCurrent(teamID)
	if err := requireScope("team", teamID); err != nil {
		return nil, err
	}

	profiles, err := s.remote.GetProfilesInTeam(ctx, teamID, page, perPage)
	if err != nil {
		return nil, err
	}
	if err := s.storeProfiles(ctx, profiles, "team_id", teamID); err != nil {
		return nil, err
	}

	if err := s.LoadTeamMembersForProfilesList(ctx, snap, profiles, teamID); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *service) LoadProfilesAndTeamMembersAndChannelMembers(ctx context.Context, snap state.Snapshot, page, perPage int, teamID, channelID string) ([]Profile, error) {
	teamID = snap.TeamIDOrCurrent(teamID)
	channelID = snap.ChannelIDOrCurrent(channelID)
	if err := requireScope("team", teamID); err != nil {
		return nil, err
	}
	if err := requireScope("channel", channelID); err != nil {
		return nil, err
	}

	profiles, err := s.remote.GetProfilesInChannel(ctx, channelID, page, perPage)
	if err != nil {
		return nil, err
	}
	if err := s.storeProfiles(ctx, profiles, "channel_id", channelID); err != nil {
		return nil, err
	}

	if err := s.LoadTeamMembersAndChannelMembersForProfilesList(ctx, snap, profiles, teamID, channelID); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *service) LoadTeamMembersForProfilesList(ctx context.Context, snap state.Snapshot, profiles []Profile, teamID string) error {
	teamID = snap.TeamIDOrCurrent(teamID)

	missing := snap.MembersInTeam.Missing(teamID, profileIDs(profiles))
	if len(missing) == 0 {
		return nil
	}
	if err := requireScope("team", teamID); err != nil {
		return err
	}

	fetched, err := s.remote.GetTeamMembersByIDs(ctx, teamID, missing)
	if err != nil {
		return err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context) error {
		return s.members.UpsertTeamMembers(ctx, fetched)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, domain.EventTeamMembersFetched, map[string]any{
		"team_id":   teamID,
		"requested": len(missing),
		"received":  len(fetched),
	})
	return nil
}

func (s *service) LoadChannelMembersForProfilesList(ctx context.Context, snap state.Snapshot, profiles []Profile, channelID string) error {
	channelID = snap.ChannelIDOrCurrent(channelID)

	missing := snap.MembersInChannel.Missing(channelID, profileIDs(profiles))
	if len(missing) == 0 {
		return nil
	}
	if err := requireScope("channel", channelID); err != nil {
		return err
	}

	fetched, err := s.remote.GetChannelMembersByIDs(ctx, channelID, missing)
	if err != nil {
		return err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context) error {
		return s.members.UpsertChannelMembers(ctx, fetched)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, domain.EventChannelMembersFetched, map[string]any{
		"channel_id": channelID,
		"requested":  len(missing),
		"received":   len(fetched),
	})
	return nil
}

// LoadTeamMembersAndChannelMembersForProfilesList runs the team check and then
// the channel check. A failed team fetch stops before the channel check.
func (s *service) LoadTeamMembersAndChannelMembersForProfilesList(ctx context.Context, snap state.Snapshot, profiles []Profile, teamID, channelID string) error {
	if err := s.LoadTeamMembersForProfilesList(ctx, snap, profiles, snap.TeamIDOrCurrent(teamID)); err != nil {
		return err
	}
	return s.LoadChannelMembersForProfilesList(ctx, snap, profiles, snap.ChannelIDOrCurrent(channelID))
}

// requireScope rejects a scope id that is empty after falling back to the
// session's current team or channel.
func requireScope(kind, id string) error {
	if id != "" {
		return nil
	}
	return &domain.DomainError{
		Code:       domain.ErrorCodeBadRequest,
		Message:    kind + " is not set and there is no current " + kind,
		HTTPStatus: http.StatusBadRequest,
	}
}

func (s *service) storeProfiles(ctx context.Context, profiles []Profile, scopeKey, scopeID string) error {
	if len(profiles) == 0 {
		return nil
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		return s.members.UpsertProfiles(ctx, profiles)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, domain.EventProfilesFetched, map[string]any{
		scopeKey: scopeID,
		"count":  len(profiles),
	})
	return nil
}

func (s *service) publish(ctx context.Context, typ string, payload map[string]any) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, domain.Event{Type: typ, Payload: payload})
}
