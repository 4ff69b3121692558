package leaderboard

import "github.com/KirkDiggler/gametime/internal/models"

// SaveUserTotalsInput holds the user playtime document to persist
type SaveUserTotalsInput struct {
	Totals models.UserTotals
}

// LoadUserTotalsOutput holds the loaded user playtime document
type LoadUserTotalsOutput struct {
	Totals models.UserTotals
}

// SaveGameTotalsInput holds the game playtime document to persist
type SaveGameTotalsInput struct {
	Totals models.GameTotals
}

// LoadGameTotalsOutput holds the loaded game playtime document
type LoadGameTotalsOutput struct {
	Totals models.GameTotals
}
