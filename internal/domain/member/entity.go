package member

type Profile struct {
	ID        string
	Username  string
	Email     string
	FirstName string
	LastName  string
	Nickname  string
}

type TeamMember struct {
	TeamID string
	UserID string
	Roles  string
}

type ChannelMember struct {
	ChannelID string
	UserID    string
	Roles     string
}

func profileIDs(profiles []Profile) []string {
	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}
	return ids
}
