package preference

import (
	"context"
	"net/http"

	"teamchat/internal/domain"
	"teamchat/internal/domain/state"
)

type Service interface {
	SaveTheme(ctx context.Context, snap state.Snapshot, teamID string, theme EncodedTheme) error
}

type service struct {
	uow    domain.UnitOfWork
	remote Remote
	prefs  Repository
	events domain.EventBus
}

func NewService(uow domain.UnitOfWork, remote Remote, prefs Repository, events domain.EventBus) Service {
	return &service{
		uow:    uow,
		remote: remote,
		prefs:  prefs,
		events: events,
	}
}

// SaveTheme stores theme for teamID. An empty teamID makes it the default for
// all teams and removes every per-team override, after the default is saved.
func (s *service) SaveTheme(ctx context.Context, snap state.Snapshot, teamID string, theme EncodedTheme) error {
	userID := snap.CurrentUserID
	if userID == "" {
		return &domain.DomainError{
			Code:       domain.ErrorCodeBadRequest,
			Message:    "current user is not set",
			HTTPStatus: http.StatusBadRequest,
		}
	}

	if theme == "" {
		return &domain.DomainError{
			Code:       domain.ErrorCodeBadRequest,
			Message:    "theme is empty",
			HTTPStatus: http.StatusBadRequest,
		}
	}

	saved := []Preference{{
		Category: CategoryTheme,
		Name:     teamID,
		UserID:   userID,
		Value:    string(theme),
	}}
	if err := s.remote.SavePreferences(ctx, userID, saved); err != nil {
		return err
	}
	if err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		return s.prefs.Upsert(ctx, saved)
	}); err != nil {
		return err
	}
	s.publish(ctx, domain.EventThemeSaved, map[string]any{
		"user_id": userID,
		"team_id": teamID,
	})

	if teamID != "" {
		return nil
	}

	var overrides []Preference
	for _, p := range snap.PreferencesInCategory(CategoryTheme) {
		if p.Name == "" {
			continue
		}
		overrides = append(overrides, Key(CategoryTheme, p.Name, userID))
	}
	if len(overrides) == 0 {
		return nil
	}

	if err := s.remote.DeletePreferences(ctx, userID, overrides); err != nil {
		return err
	}
	if err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		return s.prefs.Delete(ctx, overrides)
	}); err != nil {
		return err
	}
	s.publish(ctx, domain.EventThemeOverridesDeleted, map[string]any{
		"user_id": userID,
		"count":   len(overrides),
	})
	return nil
}

func (s *service) publish(ctx context.Context, typ string, payload map[string]any) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, domain.Event{Type: typ, Payload: payload})
}
