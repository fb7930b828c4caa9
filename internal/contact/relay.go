// Package contact delivers the site's contact form through an external relay.
package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/central-adventures/trips/internal/config"
	"github.com/central-adventures/trips/internal/models"
)

// ErrRejected is returned when the relay answered with a non-2xx status.
var ErrRejected = errors.New("relay rejected the message")

// Relay delivers one contact message. Implementations do not retry.
type Relay interface {
	Send(ctx context.Context, msg models.ContactMessage) error
}

// NewRelay builds the relay selected by cfg.ContactBackend.
func NewRelay(cfg *config.Config, client *http.Client) (Relay, error) {
	if client == nil {
		client = http.DefaultClient
	}

	switch cfg.ContactBackend {
	case config.ContactBackendEmailJS:
		return NewEmailJSRelay(client, cfg.EmailJSEndpoint, cfg.EmailJSPublicKey, cfg.EmailJSServiceID, cfg.EmailJSTemplateID), nil
	case config.ContactBackendFormPost:
		return NewFormPostRelay(client, cfg.FormPostEndpoint), nil
	case config.ContactBackendDiscord:
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			return nil, fmt.Errorf("cannot create discord session: %w", err)
		}
		session.Client = client
		return NewDiscordRelay(session, cfg.DiscordContactChannelID), nil
	default:
		return nil, fmt.Errorf("unknown contact backend %q", cfg.ContactBackend)
	}
}

func checkResponse(resp *http.Response, relay string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%s responded %d %s: %w", relay, resp.StatusCode, strings.TrimSpace(string(body)), ErrRejected)
}
