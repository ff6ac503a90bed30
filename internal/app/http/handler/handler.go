package handler

import (
	"context"

	"go.uber.org/zap"

	"teamchat/internal/domain/member"
	"teamchat/internal/domain/preference"
	"teamchat/internal/domain/state"
)

type ProfileReader interface {
	GetProfile(ctx context.Context, userID string) (member.Profile, bool, error)
}

type Handler struct {
	MemberSvc member.Service
	PrefSvc   preference.Service
	States    state.Repository
	Profiles  ProfileReader
	Log       *zap.Logger
}

func New(
	memberSvc member.Service,
	prefSvc preference.Service,
	states state.Repository,
	profiles ProfileReader,
	log *zap.Logger,
) *Handler {
	return &Handler{
		MemberSvc: memberSvc,
		PrefSvc:   prefSvc,
		States:    states,
		Profiles:  profiles,
		Log:       log,
	}
}
