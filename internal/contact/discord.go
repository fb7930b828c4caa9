package contact

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/central-adventures/trips/internal/models"
)

// DiscordRelay posts contact messages to a staff channel instead of mailing them.
type DiscordRelay struct {
	session   *discordgo.Session
	channelID string
}

var _ Relay = (*DiscordRelay)(nil)

func NewDiscordRelay(session *discordgo.Session, channelID string) *DiscordRelay {
	return &DiscordRelay{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordRelay) Send(ctx context.Context, msg models.ContactMessage) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	message := fmt.Sprintf("📬 **%s**\n%s", AdminSubject(msg), AdminBody(msg))

	if _, err := n.session.ChannelMessageSend(n.channelID, message, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send discord message: %w", err)
	}
	return nil
}

func AdminSubject(msg models.ContactMessage) string {
	return "New Contact Message: " + msg.Subject
}

// AdminBody is the staff-facing text of a contact message.
func AdminBody(msg models.ContactMessage) string {
	return fmt.Sprintf(`You have received a new contact message from Central Adventures website.

From: %s
Email: %s
Subject: %s

Message:
%s

---
This message was sent via the contact form on the Central Adventures website.
`, msg.Name, msg.Email, msg.Subject, msg.Message)
}
