/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package applist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mirkobrombin/lsapps/pkg/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ErrSnapshotNotFound is returned when no snapshot matches an id.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Store keeps the snapshots history in a sqlite database.
type Store struct {
	db *gorm.DB
}

// NewStore opens (creating it if needed) the snapshots database inside
// storePath.
func NewStore(storePath string) (*Store, error) {
	if err := os.MkdirAll(storePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	dbPath := filepath.Join(storePath, "lsapps.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}

	if err := db.AutoMigrate(&types.Snapshot{}, &types.SnapshotApplication{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveSnapshot records apps as a new snapshot of target. progress, if not
// nil, is called once per stored bundle.
func (s *Store) SaveSnapshot(target string, apps []types.Application, progress func()) (snap types.Snapshot, err error) {
	snap = types.Snapshot{
		Id:         uuid.New().String(),
		TargetPath: target,
		CreatedAt:  time.Now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Applications").Create(&snap).Error; err != nil {
			return err
		}

		for i, app := range apps {
			row := types.SnapshotApplication{
				SnapshotId: snap.Id,
				Position:   i,
				Name:       app.Name,
				Path:       app.Path,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			snap.Applications = append(snap.Applications, row)
			if progress != nil {
				progress()
			}
		}
		return nil
	})
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("SaveSnapshot: %w", err)
	}

	return snap, nil
}

// Snapshots returns every snapshot, newest first.
func (s *Store) Snapshots() (snaps []types.Snapshot, err error) {
	err = s.db.Preload("Applications", byPosition).Order("created_at desc").Find(&snaps).Error
	if err != nil {
		err = fmt.Errorf("Snapshots: %w", err)
	}
	return
}

// Snapshot returns the snapshot with the given id.
func (s *Store) Snapshot(id string) (snap types.Snapshot, err error) {
	err = s.db.Preload("Applications", byPosition).First(&snap, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return snap, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	if err != nil {
		err = fmt.Errorf("Snapshot: %w", err)
	}
	return
}

// DeleteSnapshot removes a snapshot and its bundles.
func (s *Store) DeleteSnapshot(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&types.Snapshot{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
		}
		return tx.Delete(&types.SnapshotApplication{}, "snapshot_id = ?", id).Error
	})
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// SnapshotDiff lists the bundle names that appeared or disappeared
// between a snapshot and a later scan.
type SnapshotDiff struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
}

// Empty reports whether nothing changed.
func (d SnapshotDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// Diff compares the bundles of a snapshot with a current scan. Names keep
// the order of the side they come from.
func Diff(old []types.SnapshotApplication, current []types.Application) (diff SnapshotDiff) {
	before := make(map[string]bool, len(old))
	for _, app := range old {
		before[app.Name] = true
	}
	now := make(map[string]bool, len(current))
	for _, app := range current {
		now[app.Name] = true
		if !before[app.Name] {
			diff.Added = append(diff.Added, app.Name)
		}
	}
	for _, app := range old {
		if !now[app.Name] {
			diff.Removed = append(diff.Removed, app.Name)
		}
	}
	return
}
