package contact

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/central-adventures/trips/internal/models"
)

// FormPostRelay posts the form fields, form-encoded, to a relay such as Formspree.
type FormPostRelay struct {
	client   *http.Client
	endpoint string
}

var _ Relay = (*FormPostRelay)(nil)

func NewFormPostRelay(client *http.Client, endpoint string) *FormPostRelay {
	return &FormPostRelay{client: client, endpoint: endpoint}
}

func (r *FormPostRelay) Send(ctx context.Context, msg models.ContactMessage) error {
	form := url.Values{}
	form.Set("name", msg.Name)
	form.Set("email", msg.Email)
	form.Set("subject", msg.Subject)
	form.Set("message", msg.Message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("form relay request failed: %w", err)
	}
	defer resp.Body.Close()

	return checkResponse(resp, "form relay")
}
