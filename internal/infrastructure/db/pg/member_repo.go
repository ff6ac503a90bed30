package pg

import (
	"context"
	"database/sql"
	"errors"

	"teamchat/internal/domain/member"
)

type MemberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) UpsertProfiles(ctx context.Context, profiles []member.Profile) error {
	for _, p := range profiles {
		if _, err := exec(ctx, r.db,
			`INSERT INTO profiles (user_id, username, email, first_name, last_name, nickname)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (user_id) DO UPDATE
			   SET username = EXCLUDED.username,
			       email = EXCLUDED.email,
			       first_name = EXCLUDED.first_name,
			       last_name = EXCLUDED.last_name,
			       nickname = EXCLUDED.nickname,
			       updated_at = NOW()`,
			p.ID, p.Username, p.Email, p.FirstName, p.LastName, p.Nickname,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemberRepository) UpsertTeamMembers(ctx context.Context, members []member.TeamMember) error {
	for _, m := range members {
		if _, err := exec(ctx, r.db,
			`INSERT INTO team_members (team_id, user_id, roles)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (team_id, user_id) DO UPDATE
			   SET roles = EXCLUDED.roles`,
			m.TeamID, m.UserID, m.Roles,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemberRepository) UpsertChannelMembers(ctx context.Context, members []member.ChannelMember) error {
	for _, m := range members {
		if _, err := exec(ctx, r.db,
			`INSERT INTO channel_members (channel_id, user_id, roles)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (channel_id, user_id) DO UPDATE
			   SET roles = EXCLUDED.roles`,
			m.ChannelID, m.UserID, m.Roles,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemberRepository) GetProfile(ctx context.Context, userID string) (member.Profile, bool, error) {
	var p member.Profile
	err := queryRow(ctx, r.db,
		`SELECT user_id, username, email, first_name, last_name, nickname
		   FROM profiles
		  WHERE user_id = $1`,
		userID,
	).Scan(&p.ID, &p.Username, &p.Email, &p.FirstName, &p.LastName, &p.Nickname)
	if errors.Is(err, sql.ErrNoRows) {
		return member.Profile{}, false, nil
	}
	if err != nil {
		return member.Profile{}, false, err
	}
	return p, true, nil
}
