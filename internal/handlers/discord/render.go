package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/gametime/internal/models"
	"github.com/KirkDiggler/gametime/internal/services/tracker"
)

// Embed colors
const (
	colorGreen  = 0x57f287
	colorBlue   = 0x3498db
	colorGold   = 0xf1c40f
	colorPurple = 0x9b59b6
)

var rankMedals = []string{"🥇", "🥈", "🥉"}

// formatDuration renders a duration the way the announcements show
// playtime: "2h 5m", "5m 30s", or "42s".
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	totalSeconds := int64(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// rankLabel returns the medal for the top three ranks and a plain
// number for the rest. rank is zero-based.
func rankLabel(rank int) string {
	if rank < len(rankMedals) {
		return rankMedals[rank]
	}
	return fmt.Sprintf("%d.", rank+1)
}

// userMention renders a Discord mention for a user ID
func userMention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// renderUserLeaderboardEmbed builds the weekly playtime leaderboard embed
func renderUserLeaderboardEmbed(entries []*models.LeaderboardEntry) *discordgo.MessageEmbed {
	if len(entries) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "🏆 Playtime Leaderboard",
			Description: "Nobody has logged any playtime this week.",
			Color:       colorGold,
		}
	}

	var sb strings.Builder
	for rank, entry := range entries {
		fmt.Fprintf(&sb, "%s %s · %s\n",
			rankLabel(rank),
			userMention(entry.Key),
			formatDuration(time.Duration(entry.TotalSeconds)*time.Second))
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Playtime Leaderboard",
		Description: sb.String(),
		Color:       colorGold,
	}
}

// renderTopGamesEmbed builds the most-played games embed
func renderTopGamesEmbed(entries []*models.LeaderboardEntry) *discordgo.MessageEmbed {
	if len(entries) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "🎮 Most Played Games",
			Description: "No games have been played this week.",
			Color:       colorPurple,
		}
	}

	var sb strings.Builder
	for rank, entry := range entries {
		fmt.Fprintf(&sb, "%s **%s** · %s\n",
			rankLabel(rank),
			entry.Key,
			formatDuration(time.Duration(entry.TotalSeconds)*time.Second))
	}

	return &discordgo.MessageEmbed{
		Title:       "🎮 Most Played Games",
		Description: sb.String(),
		Color:       colorPurple,
	}
}

// renderActivePlayersEmbed builds the who-plays embed for one game
func renderActivePlayersEmbed(gameName string, players []*tracker.ActivePlayer) *discordgo.MessageEmbed {
	if len(players) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "👀 Who's Playing",
			Description: fmt.Sprintf("Nobody is playing **%s** right now.", gameName),
			Color:       colorBlue,
		}
	}

	var sb strings.Builder
	for _, p := range players {
		fmt.Fprintf(&sb, "%s · **%s** for %s\n",
			userMention(p.UserID),
			p.GameName,
			formatDuration(p.Elapsed))
	}

	return &discordgo.MessageEmbed{
		Title:       "👀 Who's Playing",
		Description: sb.String(),
		Color:       colorBlue,
	}
}

// renderWeeklySummaryEmbed builds the end-of-week summary posted
// before the leaderboards reset
func renderWeeklySummaryEmbed(input *tracker.PublishWeeklySummaryInput) *discordgo.MessageEmbed {
	var fields []*discordgo.MessageEmbedField

	if input.TopUser != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "🏆 Gamer of the Week",
			Value: fmt.Sprintf("%s with %s of playtime!",
				userMention(input.TopUser.Key),
				formatDuration(time.Duration(input.TopUser.TotalSeconds)*time.Second)),
		})
	}

	for idx, entry := range input.RunnersUp {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%s Runner-up", rankLabel(idx+1)),
			Value: fmt.Sprintf("%s · %s",
				userMention(entry.Key),
				formatDuration(time.Duration(entry.TotalSeconds)*time.Second)),
		})
	}

	if input.TopGame != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "🎮 Game of the Week",
			Value: fmt.Sprintf("**%s** · %s played in total",
				input.TopGame.Key,
				formatDuration(time.Duration(input.TopGame.TotalSeconds)*time.Second)),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "📅 Weekly Gaming Recap",
		Description: "The leaderboards are resetting. Here is how the week went:",
		Color:       colorGreen,
		Fields:      fields,
	}
}
