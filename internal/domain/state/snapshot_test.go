package state_test

import (
	"reflect"
	"testing"

	"teamchat/internal/domain/state"
)

func TestMembershipIndex_Has(t *testing.T) {
	idx := state.MembershipIndex{}
	idx.Add("team_1", "u1", "u2")

	if !idx.Has("team_1", "u1") || !idx.Has("team_1", "u2") {
		t.Fatalf("expected members in team_1")
	}
	if idx.Has("team_1", "u3") {
		t.Fatalf("u3 is not a member")
	}
	if idx.Has("team_2", "u1") {
		t.Fatalf("team_2 has no members")
	}
}

func TestMembershipIndex_Missing(t *testing.T) {
	idx := state.MembershipIndex{}
	idx.Add("c1", "known")

	got := idx.Missing("c1", []string{"b", "known", "a", "b", "c"})
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Missing = %v, want %v", got, want)
	}

	if got := idx.Missing("c1", []string{"known"}); len(got) != 0 {
		t.Fatalf("expected nothing missing, got %v", got)
	}
	if got := idx.Missing("c1", nil); len(got) != 0 {
		t.Fatalf("expected nothing missing for empty input, got %v", got)
	}
}

func TestSnapshot_Defaults(t *testing.T) {
	snap := state.NewSnapshot("u1")
	snap.CurrentTeamID = "team_1"
	snap.CurrentChannelID = "c1"

	if snap.TeamIDOrCurrent("") != "team_1" || snap.TeamIDOrCurrent("team_2") != "team_2" {
		t.Fatalf("unexpected team fallback")
	}
	if snap.ChannelIDOrCurrent("") != "c1" || snap.ChannelIDOrCurrent("c2") != "c2" {
		t.Fatalf("unexpected channel fallback")
	}
}

func TestSnapshot_PreferencesInCategory(t *testing.T) {
	snap := state.NewSnapshot("u1")
	for _, p := range []state.Preference{
		{Category: "theme", Name: "team_2"},
		{Category: "theme", Name: ""},
		{Category: "theme", Name: "team_1"},
		{Category: "display_settings", Name: "use_military_time"},
	} {
		snap.Preferences[state.PreferenceKey(p.Category, p.Name)] = p
	}

	got := snap.PreferencesInCategory("theme")
	if len(got) != 3 || got[0].Name != "" || got[1].Name != "team_1" || got[2].Name != "team_2" {
		t.Fatalf("unexpected theme preferences: %+v", got)
	}
}
