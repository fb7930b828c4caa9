package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/central-adventures/trips/internal/models"
)

type EmailJSRelay struct {
	client     *http.Client
	endpoint   string
	publicKey  string
	serviceID  string
	templateID string
}

var _ Relay = (*EmailJSRelay)(nil)

func NewEmailJSRelay(client *http.Client, endpoint, publicKey, serviceID, templateID string) *EmailJSRelay {
	return &EmailJSRelay{
		client:     client,
		endpoint:   endpoint,
		publicKey:  publicKey,
		serviceID:  serviceID,
		templateID: templateID,
	}
}

type emailJSTemplateParams struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

type emailJSRequest struct {
	ServiceID      string                `json:"service_id"`
	TemplateID     string                `json:"template_id"`
	UserID         string                `json:"user_id"`
	TemplateParams emailJSTemplateParams `json:"template_params"`
}

func (r *EmailJSRelay) Send(ctx context.Context, msg models.ContactMessage) error {
	payload, err := json.Marshal(emailJSRequest{
		ServiceID:  r.serviceID,
		TemplateID: r.templateID,
		UserID:     r.publicKey,
		TemplateParams: emailJSTemplateParams{
			FromName:  msg.Name,
			FromEmail: msg.Email,
			Subject:   msg.Subject,
			Message:   msg.Message,
		},
	})
	if err != nil {
		return fmt.Errorf("cannot encode emailjs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs request failed: %w", err)
	}
	defer resp.Body.Close()

	return checkResponse(resp, "emailjs")
}
