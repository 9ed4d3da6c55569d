/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package types

import "time"

// Snapshot is the struct that represents a recorded scan of a target
// directory.
type Snapshot struct {
	// Id is the unique identifier of the snapshot (a UUID).
	Id string `gorm:"primaryKey" json:"id"`

	// TargetPath is the directory that was scanned.
	TargetPath string `json:"target_path"`

	// CreatedAt is the time the snapshot was recorded.
	CreatedAt time.Time `json:"created_at"`

	// Applications is the list of bundles found during the scan, in
	// scan order.
	Applications []SnapshotApplication `gorm:"foreignKey:SnapshotId;constraint:OnDelete:CASCADE" json:"applications"`
}

// SnapshotApplication is a single bundle recorded in a Snapshot.
type SnapshotApplication struct {
	Id         uint   `gorm:"primaryKey" json:"-"`
	SnapshotId string `gorm:"index" json:"-"`
	Position   int    `json:"-"`
	Name       string `json:"name"`
	Path       string `json:"path"`
}
