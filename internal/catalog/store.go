package catalog

import (
	"context"
	"errors"

	"gamecatalog/backend/internal/models"
)

// ErrNotFound is returned when no game carries the requested id.
var ErrNotFound = errors.New("game not found")

// Store is the ordered game catalog.
//
// Lookups match the first game in sequence order whose id equals the
// argument. Ids are not required to be unique.
type Store interface {
	List(ctx context.Context) ([]models.Game, error)
	Get(ctx context.Context, id int) (models.Game, error)
	Create(ctx context.Context, game models.Game) (models.Game, error)
	Update(ctx context.Context, id int, game models.Game) (models.Game, error)
	Delete(ctx context.Context, id int) error
}
