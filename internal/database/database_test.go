package database

import (
	"testing"

	"gamecatalog/backend/internal/models"
)

func TestOpenMigratesGamesTable(t *testing.T) {
	db, err := Open("", nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })

	if !db.Migrator().HasTable(&models.GameRecord{}) {
		t.Fatalf("expected games table to exist")
	}

	rec := models.NewGameRecord(models.Game{ID: 7, Title: "t", Genre: "g", MaxPlayers: 2, Rating: 3.5})
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
	if rec.Seq == 0 {
		t.Fatalf("expected auto-increment sequence to be assigned")
	}

	var count int64
	if err := db.Model(&models.GameRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}
}

func TestOpenIsolatesDatabases(t *testing.T) {
	first, err := Open(DefaultDSN, nil)
	if err != nil {
		t.Fatalf("open first: %v", err)
	}
	t.Cleanup(func() { _ = Close(first) })

	rec := models.NewGameRecord(models.Game{ID: 1, Title: "a", Genre: "b"})
	if err := first.Create(&rec).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}

	second, err := Open(DefaultDSN, nil)
	if err != nil {
		t.Fatalf("open second: %v", err)
	}
	t.Cleanup(func() { _ = Close(second) })

	var count int64
	if err := second.Model(&models.GameRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected a fresh database, got %d rows", count)
	}
}
