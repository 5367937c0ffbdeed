package catalog

import (
	"context"
	"fmt"

	"gamecatalog/backend/internal/models"
)

// SeedGames returns the records present at startup, in order.
func SeedGames() []models.Game {
	return []models.Game{
		{ID: 1, Title: "Space Adventure", Genre: "Action", MaxPlayers: 4, Rating: 4.7},
		{ID: 2, Title: "Puzzle Mania", Genre: "Puzzle", MaxPlayers: 1, Rating: 4.2},
		{ID: 3, Title: "Race Master", Genre: "Racing", MaxPlayers: 8, Rating: 4.5},
		{ID: 4, Title: "Fantasy Quest", Genre: "RPG", MaxPlayers: 6, Rating: 4.8},
		{ID: 5, Title: "Battle Arena", Genre: "Multiplayer", MaxPlayers: 10, Rating: 4.6},
	}
}

// Seed appends the seed records to store.
func Seed(ctx context.Context, store Store) error {
	for _, g := range SeedGames() {
		if _, err := store.Create(ctx, g); err != nil {
			return fmt.Errorf("seed game %d: %w", g.ID, err)
		}
	}
	return nil
}
