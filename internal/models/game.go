package models

// Game represents a single catalog entry.
type Game struct {
	ID         int     `json:"id" example:"1"`
	Title      string  `json:"title" example:"Space Adventure"`
	Genre      string  `json:"genre" example:"Action"`
	MaxPlayers int     `json:"max_players" example:"4"`
	Rating     float64 `json:"rating" example:"4.7"`
}

// GameInput is the write payload for create and update.
// Pointer fields let the validator tell an absent field from a zero value.
// See UnmarshalJSON for the accepted encodings.
type GameInput struct {
	ID         *int     `json:"id" binding:"required" example:"6"`
	Title      *string  `json:"title" binding:"required" example:"New Game"`
	Genre      *string  `json:"genre" binding:"required" example:"Strategy"`
	MaxPlayers *int     `json:"max_players" binding:"required" example:"2"`
	Rating     *float64 `json:"rating" binding:"required" example:"4.0"`
}

// Game converts a validated input into a record. Call only after binding succeeded.
func (in GameInput) Game() Game {
	return Game{
		ID:         *in.ID,
		Title:      *in.Title,
		Genre:      *in.Genre,
		MaxPlayers: *in.MaxPlayers,
		Rating:     *in.Rating,
	}
}

// GameRecord is the table row backing a Game in SQL stores.
// Seq is the sequence position; GameID is not unique.
type GameRecord struct {
	Seq        uint   `gorm:"primaryKey;autoIncrement"`
	GameID     int    `gorm:"index;not null"`
	Title      string `gorm:"size:255;not null"`
	Genre      string `gorm:"size:100;not null"`
	MaxPlayers int    `gorm:"not null"`
	Rating     float64
}

func (GameRecord) TableName() string { return "games" }

// NewGameRecord builds a row from a Game.
func NewGameRecord(g Game) GameRecord {
	return GameRecord{
		GameID:     g.ID,
		Title:      g.Title,
		Genre:      g.Genre,
		MaxPlayers: g.MaxPlayers,
		Rating:     g.Rating,
	}
}

// Game returns the API representation of the row.
func (r GameRecord) Game() Game {
	return Game{
		ID:         r.GameID,
		Title:      r.Title,
		Genre:      r.Genre,
		MaxPlayers: r.MaxPlayers,
		Rating:     r.Rating,
	}
}
