package preference

import "teamchat/internal/domain/state"

const CategoryTheme = "theme"

type Preference = state.Preference

// Key identifies a record for deletion; the value is never sent.
func Key(category, name, userID string) Preference {
	return Preference{Category: category, Name: name, UserID: userID}
}
