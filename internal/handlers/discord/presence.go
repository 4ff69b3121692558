package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/gametime/internal/models"
	"github.com/KirkDiggler/gametime/internal/services/tracker"
)

// gameActivity picks the game being played out of a presence's
// activity list. Custom statuses and listening activities are not
// games.
func gameActivity(activities []*discordgo.Activity) string {
	for _, activity := range activities {
		if activity == nil {
			continue
		}
		if activity.Type == discordgo.ActivityTypeGame && activity.Name != "" {
			return activity.Name
		}
	}
	return ""
}

// handleGuildCreate seeds sessions for members already playing when
// the bot comes up, and primes the status table so the first presence
// event per user is not mistaken for a transition.
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	ctx := context.Background()

	for _, presence := range g.Presences {
		if presence.User == nil || presence.User.ID == "" {
			continue
		}

		b.recordStatus(g.ID, presence.User.ID, presence.Status)

		gameName := gameActivity(presence.Activities)
		if gameName == "" {
			continue
		}

		output, err := b.trackerService.StartSession(ctx, &tracker.StartSessionInput{
			UserID:    presence.User.ID,
			GuildID:   g.ID,
			ChannelID: b.announceChannelID(s, g.ID),
			GameName:  gameName,
			Silent:    true,
		})
		if err != nil {
			log.Warn().Err(err).
				Str("user_id", presence.User.ID).
				Str("guild_id", g.ID).
				Msg("failed to seed session from presence snapshot")
			continue
		}

		if !output.AlreadyPlaying {
			log.Info().
				Str("user_id", presence.User.ID).
				Str("game_name", gameName).
				Str("guild_id", g.ID).
				Msg("seeded session from presence snapshot")
		}
	}
}

// handlePresenceUpdate drives the session lifecycle from Discord
// presence events. The tracker's session table is the before-state;
// presence events only carry the after-state.
func (b *Bot) handlePresenceUpdate(s *discordgo.Session, p *discordgo.PresenceUpdate) {
	if p.User == nil || p.User.ID == "" || p.User.Bot {
		return
	}

	ctx := context.Background()
	userID := p.User.ID
	guildID := p.GuildID

	b.announceStatusChange(s, guildID, userID, p.Status)

	gameName := gameActivity(p.Activities)

	active, err := b.trackerService.ActiveSession(ctx, &tracker.ActiveSessionInput{UserID: userID})
	if err != nil {
		log.Error().Err(err).
			Str("user_id", userID).
			Msg("failed to look up active session")
		return
	}

	switch {
	case gameName != "" && !active.Playing:
		_, err = b.trackerService.StartSession(ctx, &tracker.StartSessionInput{
			UserID:    userID,
			GuildID:   guildID,
			ChannelID: b.announceChannelID(s, guildID),
			GameName:  gameName,
		})

	case gameName == "" && active.Playing && active.Session.GuildID == guildID:
		_, err = b.trackerService.StopSession(ctx, &tracker.StopSessionInput{
			UserID: userID,
		})

	case gameName != "" && active.Playing &&
		models.FoldGameName(gameName) != models.FoldGameName(active.Session.GameName):
		_, err = b.trackerService.SwitchSession(ctx, &tracker.SwitchSessionInput{
			UserID:      userID,
			GuildID:     guildID,
			ChannelID:   b.announceChannelID(s, guildID),
			NewGameName: gameName,
		})

	default:
		// Same game, or an unrelated presence change
		return
	}

	if err != nil {
		log.Error().Err(err).
			Str("user_id", userID).
			Str("game_name", gameName).
			Msg("failed to apply presence transition")
	}
}

// recordStatus stores a user's last seen status and returns the
// previous one
func (b *Bot) recordStatus(guildID, userID string, status discordgo.Status) (discordgo.Status, bool) {
	key := guildID + ":" + userID

	b.statusMu.Lock()
	defer b.statusMu.Unlock()

	prev, seen := b.lastStatus[key]
	b.lastStatus[key] = status
	return prev, seen
}

// announceStatusChange posts online/offline notices. Only the
// offline boundary is announced; moves between online, idle and dnd
// stay quiet.
func (b *Bot) announceStatusChange(s *discordgo.Session, guildID, userID string, status discordgo.Status) {
	prev, seen := b.recordStatus(guildID, userID, status)
	if !seen || prev == status {
		return
	}

	var message string
	switch {
	case status == discordgo.StatusOffline:
		message = fmt.Sprintf("📴 %s went offline.", userMention(userID))
	case prev == discordgo.StatusOffline:
		message = fmt.Sprintf("🟢 %s is now online.", userMention(userID))
	default:
		return
	}

	channelID := b.announceChannelID(s, guildID)
	if channelID == "" {
		return
	}

	if _, err := s.ChannelMessageSend(channelID, message); err != nil {
		log.Warn().Err(err).
			Str("user_id", userID).
			Str("guild_id", guildID).
			Msg("failed to announce status change")
	}
}
