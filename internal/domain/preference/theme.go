package preference

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sort"

	"teamchat/internal/domain"
)

type Theme struct {
	Type                    string `json:"type,omitempty"`
	SidebarBg               string `json:"sidebarBg"`
	SidebarText             string `json:"sidebarText"`
	SidebarUnreadText       string `json:"sidebarUnreadText"`
	SidebarTextHoverBg      string `json:"sidebarTextHoverBg"`
	SidebarTextActiveBorder string `json:"sidebarTextActiveBorder"`
	SidebarTextActiveColor  string `json:"sidebarTextActiveColor"`
	SidebarHeaderBg         string `json:"sidebarHeaderBg"`
	SidebarHeaderTextColor  string `json:"sidebarHeaderTextColor"`
	OnlineIndicator         string `json:"onlineIndicator"`
	AwayIndicator           string `json:"awayIndicator"`
	DndIndicator            string `json:"dndIndicator"`
	MentionBg               string `json:"mentionBg"`
	MentionColor            string `json:"mentionColor"`
	CenterChannelBg         string `json:"centerChannelBg"`
	CenterChannelColor      string `json:"centerChannelColor"`
	NewMessageSeparator     string `json:"newMessageSeparator"`
	LinkColor               string `json:"linkColor"`
	ButtonBg                string `json:"buttonBg"`
	ButtonColor             string `json:"buttonColor"`
	ErrorTextColor          string `json:"errorTextColor"`
	MentionHighlightBg      string `json:"mentionHighlightBg"`
	MentionHighlightLink    string `json:"mentionHighlightLink"`
	CodeTheme               string `json:"codeTheme"`
}

// EncodedTheme is a theme in the serialized form stored as the preference
// value.
type EncodedTheme string

func (t Theme) Encode() (EncodedTheme, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return EncodedTheme(b), nil
}

// ParseTheme accepts a caller supplied theme. It must be a JSON object and is
// kept byte for byte, including keys the built-in themes do not have.
func ParseTheme(raw []byte) (EncodedTheme, error) {
	trimmed := bytes.TrimSpace(raw)
	if !json.Valid(trimmed) || len(trimmed) == 0 || trimmed[0] != '{' {
		return "", &domain.DomainError{
			Code:       domain.ErrorCodeBadRequest,
			Message:    "theme must be a JSON object",
			HTTPStatus: http.StatusBadRequest,
		}
	}
	return EncodedTheme(trimmed), nil
}

var themes = map[string]Theme{
	"denim": {
		Type:                    "Denim",
		SidebarBg:               "#1e325c",
		SidebarText:             "#ffffff",
		SidebarUnreadText:       "#ffffff",
		SidebarTextHoverBg:      "#28427b",
		SidebarTextActiveBorder: "#5d89ea",
		SidebarTextActiveColor:  "#ffffff",
		SidebarHeaderBg:         "#192a4d",
		SidebarHeaderTextColor:  "#ffffff",
		OnlineIndicator:         "#3db887",
		AwayIndicator:           "#ffbc1f",
		DndIndicator:            "#d24b4e",
		MentionBg:               "#ffffff",
		MentionColor:            "#1e325c",
		CenterChannelBg:         "#ffffff",
		CenterChannelColor:      "#3f4350",
		NewMessageSeparator:     "#cc8f00",
		LinkColor:               "#386fe5",
		ButtonBg:                "#1c58d9",
		ButtonColor:             "#ffffff",
		ErrorTextColor:          "#d24b4e",
		MentionHighlightBg:      "#ffd470",
		MentionHighlightLink:    "#1b1d22",
		CodeTheme:               "github",
	},
	"sapphire": {
		Type:                    "Sapphire",
		SidebarBg:               "#174ab5",
		SidebarText:             "#ffffff",
		SidebarUnreadText:       "#ffffff",
		SidebarTextHoverBg:      "#2a58ba",
		SidebarTextActiveBorder: "#57b5f0",
		SidebarTextActiveColor:  "#ffffff",
		SidebarHeaderBg:         "#1542a2",
		SidebarHeaderTextColor:  "#ffffff",
		OnlineIndicator:         "#3db887",
		AwayIndicator:           "#ffbc1f",
		DndIndicator:            "#d24b4e",
		MentionBg:               "#ffffff",
		MentionColor:            "#174ab5",
		CenterChannelBg:         "#ffffff",
		CenterChannelColor:      "#3f4350",
		NewMessageSeparator:     "#15b7b7",
		LinkColor:               "#1c58d9",
		ButtonBg:                "#1c58d9",
		ButtonColor:             "#ffffff",
		ErrorTextColor:          "#d24b4e",
		MentionHighlightBg:      "#7ff0f0",
		MentionHighlightLink:    "#0d6e6e",
		CodeTheme:               "github",
	},
	"quartz": {
		Type:                    "Quartz",
		SidebarBg:               "#f4f4f6",
		SidebarText:             "#090a0b",
		SidebarUnreadText:       "#2d3039",
		SidebarTextHoverBg:      "#ebebef",
		SidebarTextActiveBorder: "#32a4ec",
		SidebarTextActiveColor:  "#2d3039",
		SidebarHeaderBg:         "#e8e9ed",
		SidebarHeaderTextColor:  "#2d3039",
		OnlineIndicator:         "#3db887",
		AwayIndicator:           "#f5ab07",
		DndIndicator:            "#d24b4e",
		MentionBg:               "#1c58d9",
		MentionColor:            "#ffffff",
		CenterChannelBg:         "#ffffff",
		CenterChannelColor:      "#3f4350",
		NewMessageSeparator:     "#15b7b7",
		LinkColor:               "#1c58d9",
		ButtonBg:                "#1c58d9",
		ButtonColor:             "#ffffff",
		ErrorTextColor:          "#d24b4e",
		MentionHighlightBg:      "#7ff0f0",
		MentionHighlightLink:    "#0d6e6e",
		CodeTheme:               "github",
	},
	"indigo": {
		Type:                    "Indigo",
		SidebarBg:               "#151e32",
		SidebarText:             "#ffffff",
		SidebarUnreadText:       "#ffffff",
		SidebarTextHoverBg:      "#222c3f",
		SidebarTextActiveBorder: "#1c58d9",
		SidebarTextActiveColor:  "#ffffff",
		SidebarHeaderBg:         "#182240",
		SidebarHeaderTextColor:  "#ffffff",
		OnlineIndicator:         "#3db887",
		AwayIndicator:           "#ffbc1f",
		DndIndicator:            "#d24b4e",
		MentionBg:               "#1c58d9",
		MentionColor:            "#ffffff",
		CenterChannelBg:         "#0f1a2e",
		CenterChannelColor:      "#dddfe4",
		NewMessageSeparator:     "#81a3ef",
		LinkColor:               "#5d89ea",
		ButtonBg:                "#386fe5",
		ButtonColor:             "#ffffff",
		ErrorTextColor:          "#d24b4e",
		MentionHighlightBg:      "#133a91",
		MentionHighlightLink:    "#a4f4f4",
		CodeTheme:               "solarized-dark",
	},
	"onyx": {
		Type:                    "Onyx",
		SidebarBg:               "#202228",
		SidebarText:             "#ffffff",
		SidebarUnreadText:       "#ffffff",
		SidebarTextHoverBg:      "#25262a",
		SidebarTextActiveBorder: "#4a7ee6",
		SidebarTextActiveColor:  "#ffffff",
		SidebarHeaderBg:         "#24272d",
		SidebarHeaderTextColor:  "#ffffff",
		OnlineIndicator:         "#3db887",
		AwayIndicator:           "#ffbc1f",
		DndIndicator:            "#d24b4e",
		MentionBg:               "#4b7ee6",
		MentionColor:            "#ffffff",
		CenterChannelBg:         "#191b1f",
		CenterChannelColor:      "#dddfe4",
		NewMessageSeparator:     "#1adbdb",
		LinkColor:               "#5d89ea",
		ButtonBg:                "#4a7ee6",
		ButtonColor:             "#ffffff",
		ErrorTextColor:          "#da6c6e",
		MentionHighlightBg:      "#0d6e6e",
		MentionHighlightLink:    "#a4f4f4",
		CodeTheme:               "monokai",
	},
}

func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ThemeByName(name string) (Theme, error) {
	t, ok := themes[name]
	if !ok {
		return Theme{}, &domain.DomainError{
			Code:       domain.ErrorCodeUnknownTheme,
			Message:    "unknown theme " + name,
			HTTPStatus: http.StatusBadRequest,
		}
	}
	return t, nil
}
