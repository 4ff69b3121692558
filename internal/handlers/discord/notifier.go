package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/gametime/internal/services/tracker"
)

// notifier posts tracker announcements to each guild's announcement
// channel
type notifier struct {
	session  *discordgo.Session
	resolver *channelResolver
}

// NewNotifier creates the Discord-backed tracker notifier. Channels
// are looked up by channelName in each guild.
func NewNotifier(session *discordgo.Session, channelName string) tracker.Notifier {
	return &notifier{
		session:  session,
		resolver: newChannelResolver(session, channelName),
	}
}

func (n *notifier) send(guildID, preferred, message string) error {
	channelID, err := n.resolver.resolve(guildID, preferred)
	if err != nil {
		return err
	}

	_, err = n.session.ChannelMessageSend(channelID, message)
	return err
}

// SessionStarted announces that a user started playing
func (n *notifier) SessionStarted(_ context.Context, input *tracker.SessionStartedInput) error {
	return n.send(input.GuildID, input.ChannelID,
		fmt.Sprintf("🎮 %s started playing **%s**!", userMention(input.UserID), input.GameName))
}

// SessionStopped announces that a user stopped playing
func (n *notifier) SessionStopped(_ context.Context, input *tracker.SessionStoppedInput) error {
	return n.send(input.GuildID, input.ChannelID,
		fmt.Sprintf("🛑 %s stopped playing **%s** after %s.",
			userMention(input.UserID), input.GameName, formatDuration(input.Played)))
}

// SessionSwitched announces that a user changed games
func (n *notifier) SessionSwitched(_ context.Context, input *tracker.SessionSwitchedInput) error {
	return n.send(input.GuildID, input.ChannelID,
		fmt.Sprintf("🔄 %s switched from **%s** to **%s**.",
			userMention(input.UserID), input.FromGame, input.ToGame))
}

// MilestoneReached announces a playtime threshold. The member is
// resolved first so a departed user's milestone comes back as an
// error instead of posting a dangling mention.
func (n *notifier) MilestoneReached(_ context.Context, input *tracker.MilestoneReachedInput) error {
	if _, err := n.member(input.GuildID, input.UserID); err != nil {
		return fmt.Errorf("failed to resolve member %s in guild %s: %w", input.UserID, input.GuildID, err)
	}

	return n.send(input.GuildID, input.ChannelID,
		fmt.Sprintf("%s %s (**%s**)", userMention(input.UserID), input.Message, input.GameName))
}

func (n *notifier) member(guildID, userID string) (*discordgo.Member, error) {
	if member, err := n.session.State.Member(guildID, userID); err == nil {
		return member, nil
	}
	return n.session.GuildMember(guildID, userID)
}

// PublishWeeklySummary posts a guild's weekly leaderboard summary
func (n *notifier) PublishWeeklySummary(_ context.Context, input *tracker.PublishWeeklySummaryInput) error {
	channelID, err := n.resolver.resolve(input.GuildID, "")
	if err != nil {
		return err
	}

	_, err = n.session.ChannelMessageSendEmbed(channelID, renderWeeklySummaryEmbed(input))
	return err
}
