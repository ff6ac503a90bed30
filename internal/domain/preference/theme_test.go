package preference_test

import (
	"encoding/json"
	"errors"
	"testing"

	"teamchat/internal/domain"
	"teamchat/internal/domain/preference"
)

func TestThemeByName_Known(t *testing.T) {
	for _, name := range preference.ThemeNames() {
		theme, err := preference.ThemeByName(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if theme.SidebarBg == "" || theme.CenterChannelBg == "" || theme.ButtonBg == "" {
			t.Fatalf("%s has empty core colors: %+v", name, theme)
		}
	}
}

func TestThemeByName_Unknown(t *testing.T) {
	_, err := preference.ThemeByName("this-theme-does-not-exist")
	var de *domain.DomainError
	if err == nil || !errors.As(err, &de) || de.Code != domain.ErrorCodeUnknownTheme {
		t.Fatalf("expected UNKNOWN_THEME, got %v", err)
	}
}

func TestThemeEncode(t *testing.T) {
	theme, err := preference.ThemeByName("denim")
	if err != nil {
		t.Fatalf("ThemeByName: %v", err)
	}
	encoded, err := theme.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var got preference.Theme
	if err := json.Unmarshal([]byte(encoded), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != theme {
		t.Fatalf("encoded theme differs: %+v", got)
	}
}

func TestParseTheme_KeepsCallerJSON(t *testing.T) {
	raw := `  {"type":"Custom","sidebarBg":"#000000","sidebarTeamBarBg":"#111111","mentionBj":"#222222"}
`
	got, err := preference.ParseTheme([]byte(raw))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	want := `{"type":"Custom","sidebarBg":"#000000","sidebarTeamBarBg":"#111111","mentionBj":"#222222"}`
	if string(got) != want {
		t.Fatalf("ParseTheme = %s, want %s", got, want)
	}
}

func TestParseTheme_Rejects(t *testing.T) {
	for _, raw := range []string{"", "null", "   null ", "{not json", `"denim"`, `["#000000"]`, "42"} {
		_, err := preference.ParseTheme([]byte(raw))
		var de *domain.DomainError
		if err == nil || !errors.As(err, &de) || de.Code != domain.ErrorCodeBadRequest {
			t.Fatalf("%q: expected BAD_REQUEST, got %v", raw, err)
		}
	}
}
