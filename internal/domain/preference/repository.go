package preference

import "context"

// Remote persists preferences on the chat server.
type Remote interface {
	SavePreferences(ctx context.Context, userID string, prefs []Preference) error
	DeletePreferences(ctx context.Context, userID string, prefs []Preference) error
}

// Repository mirrors preferences into the local store.
type Repository interface {
	Upsert(ctx context.Context, prefs []Preference) error
	Delete(ctx context.Context, prefs []Preference) error
}
