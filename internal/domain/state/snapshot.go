package state

import "sort"

// MembershipIndex maps a scope id (team or channel) to the set of user ids
// already known to be members of it.
type MembershipIndex map[string]map[string]struct{}

func (idx MembershipIndex) Has(scopeID, userID string) bool {
	members, ok := idx[scopeID]
	if !ok {
		return false
	}
	_, ok = members[userID]
	return ok
}

func (idx MembershipIndex) Add(scopeID string, userIDs ...string) {
	members, ok := idx[scopeID]
	if !ok {
		members = make(map[string]struct{}, len(userIDs))
		idx[scopeID] = members
	}
	for _, id := range userIDs {
		members[id] = struct{}{}
	}
}

// Missing returns the ids that are not members of scopeID, deduplicated and
// in the order they first appear in ids.
func (idx MembershipIndex) Missing(scopeID string, ids []string) []string {
	var res []string
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if !idx.Has(scopeID, id) {
			res = append(res, id)
		}
	}
	return res
}

type Preference struct {
	Category string
	Name     string
	UserID   string
	Value    string
}

func PreferenceKey(category, name string) string {
	return category + "--" + name
}

// Snapshot is a read-only view of the local store taken for one user at the
// time an action starts.
type Snapshot struct {
	CurrentUserID    string
	CurrentTeamID    string
	CurrentChannelID string
	MembersInTeam    MembershipIndex
	MembersInChannel MembershipIndex
	Preferences      map[string]Preference
}

func NewSnapshot(userID string) Snapshot {
	return Snapshot{
		CurrentUserID:    userID,
		MembersInTeam:    MembershipIndex{},
		MembersInChannel: MembershipIndex{},
		Preferences:      map[string]Preference{},
	}
}

func (s Snapshot) TeamIDOrCurrent(teamID string) string {
	if teamID == "" {
		return s.CurrentTeamID
	}
	return teamID
}

func (s Snapshot) ChannelIDOrCurrent(channelID string) string {
	if channelID == "" {
		return s.CurrentChannelID
	}
	return channelID
}

// PreferencesInCategory returns the current user's records of one category
// ordered by name.
func (s Snapshot) PreferencesInCategory(category string) []Preference {
	var res []Preference
	for _, p := range s.Preferences {
		if p.Category == category {
			res = append(res, p)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}
