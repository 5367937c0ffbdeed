package catalog

import (
	"context"
	"errors"
	"fmt"

	"gamecatalog/backend/internal/models"

	"gorm.io/gorm"
)

// GormStore keeps the catalog in a SQL table. Sequence order is the
// auto-increment Seq column, which Update leaves untouched.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

// NewGormStore expects the games table to be migrated already.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) List(ctx context.Context) ([]models.Game, error) {
	var records []models.GameRecord
	if err := s.db.WithContext(ctx).Order("seq ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	games := make([]models.Game, 0, len(records))
	for _, r := range records {
		games = append(games, r.Game())
	}
	return games, nil
}

func (s *GormStore) Get(ctx context.Context, id int) (models.Game, error) {
	rec, err := first(s.db.WithContext(ctx), id)
	if err != nil {
		return models.Game{}, err
	}
	return rec.Game(), nil
}

func (s *GormStore) Create(ctx context.Context, game models.Game) (models.Game, error) {
	rec := models.NewGameRecord(game)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return models.Game{}, fmt.Errorf("create game %d: %w", game.ID, err)
	}
	return rec.Game(), nil
}

func (s *GormStore) Update(ctx context.Context, id int, game models.Game) (models.Game, error) {
	var updated models.Game
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := first(tx, id)
		if err != nil {
			return err
		}

		next := models.NewGameRecord(game)
		next.Seq = rec.Seq
		if err := tx.Save(&next).Error; err != nil {
			return fmt.Errorf("update game %d: %w", id, err)
		}
		updated = next.Game()
		return nil
	})
	if err != nil {
		return models.Game{}, err
	}
	return updated, nil
}

func (s *GormStore) Delete(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := first(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.GameRecord{}, rec.Seq).Error; err != nil {
			return fmt.Errorf("delete game %d: %w", id, err)
		}
		return nil
	})
}

func first(db *gorm.DB, id int) (models.GameRecord, error) {
	var rec models.GameRecord
	err := db.Where("game_id = ?", id).Order("seq ASC").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rec, ErrNotFound
	}
	if err != nil {
		return rec, fmt.Errorf("find game %d: %w", id, err)
	}
	return rec, nil
}
