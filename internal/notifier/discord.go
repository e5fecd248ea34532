package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/models"
	"go.uber.org/zap"
)

// DiscordNotifier delivers notifications as direct messages to the user and
// mirrors them to the operations channel when one is configured.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
	logger    *zap.Logger
}

func NewDiscordNotifier(session *discordgo.Session, channelID string, logger *zap.Logger) *DiscordNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
		logger:    logger,
	}
}

func (n *DiscordNotifier) Publish(user models.User, topic Topic, notif Notification) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}

	message := formatMessage(topic, notif)

	if user.DiscordID != "" {
		channel, err := n.session.UserChannelCreate(user.DiscordID)
		if err != nil {
			n.logger.Warn("failed to open DM channel",
				zap.String("discord_id", user.DiscordID), zap.Error(err))
		} else if _, err := n.session.ChannelMessageSend(channel.ID, message); err != nil {
			n.logger.Warn("failed to send DM",
				zap.String("discord_id", user.DiscordID), zap.Error(err))
		}
	}

	if n.channelID == "" {
		return nil
	}
	if _, err := n.session.ChannelMessageSend(n.channelID, message); err != nil {
		return err
	}
	return nil
}

func formatMessage(topic Topic, n Notification) string {
	switch topic {
	case TopicRegistrationUpdated:
		return fmt.Sprintf("📋 **%s**\n**Event:** %s\n**Status:** %s", n.Label, n.EventTitle, n.Status)
	case TopicAttendanceUpdated:
		return fmt.Sprintf("🕒 **Attendance updated**\n**Event:** %s\n%s", n.EventTitle, n.Label)
	case TopicCertificateReady:
		return fmt.Sprintf("🎉 **Certificate ready**\n**Event:** %s\n%s", n.EventTitle, n.Label)
	case TopicRatingUpdated:
		return fmt.Sprintf("⭐ **Rating updated**\n**Event:** %s\n%s", n.EventTitle, n.Label)
	case TopicFeedbackSubmitted:
		return fmt.Sprintf("💬 **Feedback received**\n**Event:** %s\n%s", n.EventTitle, n.Label)
	default:
		return fmt.Sprintf("**%s**\n**Event:** %s", n.Label, n.EventTitle)
	}
}
