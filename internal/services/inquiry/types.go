package inquiry

import (
	"strings"
	"time"
)

// Input is a contact form submission.
type Input struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,loose_email,max=254"`
	Website string `json:"website" validate:"required,abs_url,max=2048"`
	Traffic string `json:"traffic" validate:"required,tier"`
	Message string `json:"message" validate:"max=2000"`
}

// Normalize trims surrounding whitespace from every field.
func (in Input) Normalize() Input {
	return Input{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Website: strings.TrimSpace(in.Website),
		Traffic: strings.TrimSpace(in.Traffic),
		Message: strings.TrimSpace(in.Message),
	}
}

// Receipt acknowledges an accepted submission. ResetAfter is how long the page
// shows its success message before clearing the form.
type Receipt struct {
	Reference        string        `json:"reference"`
	ReceivedAt       time.Time     `json:"received_at"`
	ResetAfter       time.Duration `json:"-"`
	ResetAfterMillis int64         `json:"reset_after_ms"`
}
