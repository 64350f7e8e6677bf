// Package forms converts between the canonical Project record and the
// editable form state the portal UI binds to. The mapping is deterministic
// in both directions: loading fills every optional field with a defined
// value, saving produces a normalized patch in which empty strings are kept
// so a previously set field can be cleared explicitly.
package forms

import (
	"fmt"
	"time"

	"portal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for deadlines in form state
// and patches. Stored date-times are truncated to this on load.
const DateLayout = "2006-01-02"

// Details holds the project's descriptive fields.
type Details struct {
	Name        string `json:"name"`
	ClientID    string `json:"client_id"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Budget      string `json:"budget"`
	Progress    int    `json:"progress"`
	Deadline    string `json:"deadline"`
}

// Videos holds the demo video links.
type Videos struct {
	ShortVideoURL       string `json:"short_video_url"`
	FullFeatureVideoURL string `json:"full_feature_video_url"`
}

// Credentials holds the delivery access fields.
type Credentials struct {
	HostingLink      string `json:"hosting_link"`
	AdminLoginLink   string `json:"admin_login_link"`
	AdminUsername    string `json:"admin_username"`
	AdminPassword    string `json:"admin_password"`
	CredentialsNotes string `json:"credentials_notes"`
}

// ProjectForm is the complete editable state, grouped by concern so each
// group can be validated and rendered independently.
type ProjectForm struct {
	Details     Details     `json:"details"`
	Videos      Videos      `json:"videos"`
	Credentials Credentials `json:"credentials"`
}

// New returns the initial form state for the create flow.
func New() ProjectForm {
	return ProjectForm{
		Details: Details{
			Status:   string(models.StatusPlanning),
			Budget:   "0",
			Progress: 0,
		},
	}
}

// Load projects a canonical record into form state. Absent optional fields
// become empty strings, never missing values, so every form control has a
// defined value to bind to.
func Load(p models.Project) ProjectForm {
	f := ProjectForm{
		Details: Details{
			Name:        p.Name,
			ClientID:    p.ClientID.String(),
			Description: p.Description,
			Status:      string(p.Status),
			Progress:    p.Progress,
		},
		Videos: Videos{
			ShortVideoURL:       p.ShortVideoURL,
			FullFeatureVideoURL: p.FullFeatureVideoURL,
		},
		Credentials: Credentials{
			HostingLink:      p.HostingLink,
			AdminLoginLink:   p.AdminLoginLink,
			AdminUsername:    p.AdminUsername,
			AdminPassword:    p.AdminPassword,
			CredentialsNotes: p.CredentialsNotes,
		},
	}
	if p.Budget.Valid {
		f.Details.Budget = renderDecimal(p.Budget.Decimal)
	}
	if p.Deadline != nil {
		f.Details.Deadline = p.Deadline.Format(DateLayout)
	}
	return f
}

// Validate checks the details group. Video and credential fields are opaque
// strings and carry no rules of their own.
func (d Details) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&d.ClientID, validation.By(uuidString)),
		validation.Field(&d.Status, validation.In(statusStrings()...)),
		validation.Field(&d.Budget, validation.By(decimalString)),
		validation.Field(&d.Progress, validation.Min(0), validation.Max(100)),
		validation.Field(&d.Deadline, validation.Date(DateLayout)),
	)
}

// Validate checks the whole form.
func (f ProjectForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Details),
	)
}

// Save normalizes the form into a canonical patch. Every field is present
// in the result, empty strings included, so the store can distinguish
// "cleared" from "unchanged". Numeric-looking strings keep their canonical
// type: budget stays a decimal string, progress stays an integer.
func (f ProjectForm) Save() (models.ProjectPatch, error) {
	if err := f.Validate(); err != nil {
		return models.ProjectPatch{}, err
	}

	patch := models.ProjectPatch{
		Name:                ptr(f.Details.Name),
		Description:         ptr(f.Details.Description),
		Budget:              ptr(canonicalDecimal(f.Details.Budget)),
		Progress:            ptr(f.Details.Progress),
		Deadline:            ptr(f.Details.Deadline),
		ShortVideoURL:       ptr(f.Videos.ShortVideoURL),
		FullFeatureVideoURL: ptr(f.Videos.FullFeatureVideoURL),
		HostingLink:         ptr(f.Credentials.HostingLink),
		AdminLoginLink:      ptr(f.Credentials.AdminLoginLink),
		AdminUsername:       ptr(f.Credentials.AdminUsername),
		AdminPassword:       ptr(f.Credentials.AdminPassword),
		CredentialsNotes:    ptr(f.Credentials.CredentialsNotes),
	}

	if f.Details.ClientID != "" {
		id, err := uuid.Parse(f.Details.ClientID)
		if err != nil {
			return models.ProjectPatch{}, fmt.Errorf("invalid client id: %w", err)
		}
		patch.ClientID = &id
	}
	if f.Details.Status != "" {
		status := models.ProjectStatus(f.Details.Status)
		patch.Status = &status
	}

	return patch, nil
}

// NormalizePatch validates and canonicalizes a patch arriving at the API
// boundary. Nil fields are left alone; set fields get the same rules as the
// form's save direction.
func NormalizePatch(p models.ProjectPatch) (models.ProjectPatch, error) {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&p.Status, validation.In(statusValues()...)),
		validation.Field(&p.Budget, validation.By(decimalString)),
		validation.Field(&p.Progress, validation.Min(0), validation.Max(100)),
		validation.Field(&p.Deadline, validation.Date(DateLayout)),
	)
	if err != nil {
		return models.ProjectPatch{}, err
	}

	if p.Budget != nil {
		p.Budget = ptr(canonicalDecimal(*p.Budget))
	}
	return p, nil
}

func statusValues() []interface{} {
	vals := make([]interface{}, len(models.ProjectStatuses))
	for i, s := range models.ProjectStatuses {
		vals[i] = s
	}
	return vals
}

func statusStrings() []interface{} {
	vals := make([]interface{}, len(models.ProjectStatuses))
	for i, s := range models.ProjectStatuses {
		vals[i] = string(s)
	}
	return vals
}

// canonicalDecimal reduces a validated decimal string to its canonical
// rendering: leading zeros and signs normalized, scale preserved
// ("0750.00" becomes "750.00"). Empty stays empty.
func canonicalDecimal(s string) string {
	if s == "" {
		return ""
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return renderDecimal(d)
}

// renderDecimal keeps the value's scale in the string form. Decimal's own
// String trims trailing fractional zeros, which would turn 1200.50 into
// "1200.5".
func renderDecimal(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}

func decimalString(value interface{}) error {
	s, ok := indirectString(value)
	if !ok || s == "" {
		return nil
	}
	if _, err := decimal.NewFromString(s); err != nil {
		return fmt.Errorf("must be a decimal number")
	}
	return nil
}

func uuidString(value interface{}) error {
	s, ok := indirectString(value)
	if !ok || s == "" {
		return nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return fmt.Errorf("must be a valid UUID")
	}
	return nil
}

func indirectString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	default:
		return "", false
	}
}

// ParseDeadline converts a patch deadline string to a calendar date.
// Empty means "clear the deadline" and returns nil.
func ParseDeadline(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid deadline (expected %s): %w", DateLayout, err)
	}
	return &t, nil
}

func ptr[T any](v T) *T {
	return &v
}
