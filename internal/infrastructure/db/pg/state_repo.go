package pg

import (
	"context"
	"database/sql"
	"errors"

	"teamchat/internal/domain/state"
)

type StateRepository struct {
	db *sql.DB
}

func NewStateRepository(db *sql.DB) *StateRepository {
	return &StateRepository{db: db}
}

func (r *StateRepository) SetSession(ctx context.Context, s state.Session) error {
	_, err := exec(ctx, r.db,
		`INSERT INTO sessions (user_id, current_team_id, current_channel_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE
		   SET current_team_id = EXCLUDED.current_team_id,
		       current_channel_id = EXCLUDED.current_channel_id,
		       updated_at = NOW()`,
		s.UserID, s.CurrentTeamID, s.CurrentChannelID,
	)
	return err
}

func (r *StateRepository) Snapshot(ctx context.Context, q state.Query) (state.Snapshot, error) {
	snap := state.NewSnapshot(q.UserID)

	err := queryRow(ctx, r.db,
		`SELECT current_team_id, current_channel_id
		   FROM sessions
		  WHERE user_id = $1`,
		q.UserID,
	).Scan(&snap.CurrentTeamID, &snap.CurrentChannelID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return state.Snapshot{}, err
	}

	teamIDs := withCurrent(q.TeamIDs, snap.CurrentTeamID)
	if err := r.loadMembers(ctx,
		`SELECT team_id, user_id FROM team_members WHERE team_id = ANY($1)`,
		teamIDs, snap.MembersInTeam,
	); err != nil {
		return state.Snapshot{}, err
	}

	channelIDs := withCurrent(q.ChannelIDs, snap.CurrentChannelID)
	if err := r.loadMembers(ctx,
		`SELECT channel_id, user_id FROM channel_members WHERE channel_id = ANY($1)`,
		channelIDs, snap.MembersInChannel,
	); err != nil {
		return state.Snapshot{}, err
	}

	rows, err := query(ctx, r.db,
		`SELECT category, name, value
		   FROM preferences
		  WHERE user_id = $1`,
		q.UserID,
	)
	if err != nil {
		return state.Snapshot{}, err
	}
	defer rows.Close()

	for rows.Next() {
		p := state.Preference{UserID: q.UserID}
		if err := rows.Scan(&p.Category, &p.Name, &p.Value); err != nil {
			return state.Snapshot{}, err
		}
		snap.Preferences[state.PreferenceKey(p.Category, p.Name)] = p
	}
	if err := rows.Err(); err != nil {
		return state.Snapshot{}, err
	}
	return snap, nil
}

func (r *StateRepository) loadMembers(ctx context.Context, q string, scopeIDs []string, idx state.MembershipIndex) error {
	if len(scopeIDs) == 0 {
		return nil
	}

	rows, err := query(ctx, r.db, q, scopeIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var scopeID, userID string
		if err := rows.Scan(&scopeID, &userID); err != nil {
			return err
		}
		idx.Add(scopeID, userID)
	}
	return rows.Err()
}

func withCurrent(ids []string, current string) []string {
	res := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		if id != "" {
			res = append(res, id)
		}
	}
	if current != "" {
		res = append(res, current)
	}
	return res
}
