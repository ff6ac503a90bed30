package pg

import (
	"context"
	"database/sql"

	"teamchat/internal/domain/preference"
)

type PreferenceRepository struct {
	db *sql.DB
}

func NewPreferenceRepository(db *sql.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

func (r *PreferenceRepository) Upsert(ctx context.Context, prefs []preference.Preference) error {
	for _, p := range prefs {
		if _, err := exec(ctx, r.db,
			`INSERT INTO preferences (user_id, category, name, value)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (user_id, category, name) DO UPDATE
			   SET value = EXCLUDED.value`,
			p.UserID, p.Category, p.Name, p.Value,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *PreferenceRepository) Delete(ctx context.Context, prefs []preference.Preference) error {
	for _, p := range prefs {
		if _, err := exec(ctx, r.db,
			`DELETE FROM preferences
			  WHERE user_id = $1
			    AND category = $2
			    AND name = $3`,
			p.UserID, p.Category, p.Name,
		); err != nil {
			return err
		}
	}
	return nil
}
