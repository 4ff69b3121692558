package discord

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// channelResolver finds each guild's announcement channel by name and
// caches the result
type channelResolver struct {
	session     *discordgo.Session
	channelName string

	mu       sync.Mutex
	channels map[string]string // guild ID -> channel ID
}

func newChannelResolver(session *discordgo.Session, channelName string) *channelResolver {
	return &channelResolver{
		session:     session,
		channelName: channelName,
		channels:    make(map[string]string),
	}
}

// resolve returns the channel to announce in. A preferred channel ID,
// when set, wins over the lookup by name.
func (r *channelResolver) resolve(guildID, preferred string) (string, error) {
	if preferred != "" {
		return preferred, nil
	}

	r.mu.Lock()
	cached, ok := r.channels[guildID]
	r.mu.Unlock()
	if ok {
		return cached, nil
	}

	channels, err := r.guildChannels(guildID)
	if err != nil {
		return "", fmt.Errorf("failed to list channels for guild %s: %w", guildID, err)
	}

	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText && ch.Name == r.channelName {
			r.mu.Lock()
			r.channels[guildID] = ch.ID
			r.mu.Unlock()
			return ch.ID, nil
		}
	}

	return "", fmt.Errorf("guild %s has no #%s channel", guildID, r.channelName)
}

func (r *channelResolver) guildChannels(guildID string) ([]*discordgo.Channel, error) {
	if guild, err := r.session.State.Guild(guildID); err == nil && len(guild.Channels) > 0 {
		return guild.Channels, nil
	}
	return r.session.GuildChannels(guildID)
}
