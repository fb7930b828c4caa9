package contact

import (
	"context"

	"github.com/central-adventures/trips/internal/models"
	"github.com/rs/zerolog/log"
)

const (
	SubmitLabel  = "Send Message"
	SendingLabel = "Sending..."

	SuccessMessage = "Message sent successfully! We'll get back to you soon."
	FailureMessage = "Failed to send message. Please try again or contact us directly via phone."
)

// Fields are the contact form controls by element id.
type Fields struct {
	Name    string `json:"contactName" required:"false"`
	Email   string `json:"contactEmail" required:"false"`
	Subject string `json:"contactSubject" required:"false"`
	Message string `json:"contactMessage" required:"false"`
}

func (f Fields) ContactMessage() models.ContactMessage {
	return models.ContactMessage{Name: f.Name, Email: f.Email, Subject: f.Subject, Message: f.Message}
}

type Button struct {
	Disabled bool   `json:"disabled"`
	Label    string `json:"label"`
}

// FormState is the contact form state between submissions.
type FormState struct {
	Fields Fields         `json:"fields"`
	Submit Button         `json:"submit"`
	Notice *models.Notice `json:"notice,omitempty"`
}

func NewForm(fields Fields) *FormState {
	return &FormState{Fields: fields, Submit: Button{Label: SubmitLabel}}
}

type Submitter struct {
	relay Relay
}

func NewSubmitter(relay Relay) *Submitter {
	return &Submitter{relay: relay}
}

// Submit sends the form through the relay. The submit button is disabled while
// sending and restored afterwards; fields are reset only when the relay accepted
// the message. The relay error is returned after it has been logged.
func (s *Submitter) Submit(ctx context.Context, form *FormState) error {
	form.Submit = Button{Disabled: true, Label: SendingLabel}
	form.Notice = nil

	err := s.relay.Send(ctx, form.Fields.ContactMessage())

	form.Submit = Button{Label: SubmitLabel}
	if err != nil {
		log.Error().Err(err).Str("email", form.Fields.Email).Msg("Contact relay error")
		form.Notice = &models.Notice{Kind: models.NoticeError, Message: FailureMessage}
		return err
	}

	form.Notice = &models.Notice{Kind: models.NoticeSuccess, Message: SuccessMessage}
	form.Fields = Fields{}
	return nil
}
