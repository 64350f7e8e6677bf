package view

import "portal/models"

// Action kinds for credential affordances. Open actions link out in
// addition to being copyable; copy actions are copy-only.
const (
	ActionOpen = "open"
	ActionCopy = "copy"
)

// CredentialAction is one copy/open affordance in the credentials view.
// Field is the logical identifier the UI uses to key clipboard feedback.
type CredentialAction struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
	Kind  string `json:"kind"`
}

// CredentialActions derives the action groups for a hand-off record. Each
// field is independently optional: only present fields produce an action,
// and a record with none set yields an empty slice, in which case the
// whole credentials section is omitted from the view.
func CredentialActions(c models.ProjectCredentials) []CredentialAction {
	candidates := []CredentialAction{
		{Field: "live_link", Label: "Live Site", Value: c.LiveLink, Kind: ActionOpen},
		{Field: "admin_panel_link", Label: "Admin Panel", Value: c.AdminPanelLink, Kind: ActionOpen},
		{Field: "database_url", Label: "Database URL", Value: c.DatabaseURL, Kind: ActionCopy},
		{Field: "server_credentials", Label: "Server Credentials", Value: c.ServerCredentials, Kind: ActionCopy},
		{Field: "short_video_url", Label: "Short Video", Value: c.ShortVideoURL, Kind: ActionOpen},
		{Field: "full_video_url", Label: "Full Walkthrough", Value: c.FullVideoURL, Kind: ActionOpen},
	}

	actions := []CredentialAction{}
	for _, a := range candidates {
		if a.Value != "" {
			actions = append(actions, a)
		}
	}
	return actions
}

// HasCredentialActions reports whether the record has anything to show.
func HasCredentialActions(c models.ProjectCredentials) bool {
	return len(CredentialActions(c)) > 0
}

// CredentialCard is the display-ready projection of a hand-off record,
// actions included.
type CredentialCard struct {
	Credentials models.ProjectCredentials `json:"credentials"`
	Actions     []CredentialAction        `json:"actions"`
}

// CredentialCards builds cards for a collection, preserving input order.
func CredentialCards(records []models.ProjectCredentials) []CredentialCard {
	cards := make([]CredentialCard, len(records))
	for i, c := range records {
		cards[i] = CredentialCard{Credentials: c, Actions: CredentialActions(c)}
	}
	return cards
}
