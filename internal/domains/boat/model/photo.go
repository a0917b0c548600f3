package model

import (
	"nautica/shared/model"
	"strings"
)

const (
	PhotoTableName  = "boat_photos"
	PhotoEntityName = "boat_photo"

	PhotoFieldID        = "id"
	PhotoFieldBoatID    = "boat_id"
	PhotoFieldStorage   = "storage_ref"
	PhotoFieldIsPrimary = "is_primary"
	PhotoFieldSortOrder = "sort_order"
)

// BoatPhoto stores either a bucket object key or an absolute URL in
// StorageRef. Keys are presigned at read time.
type BoatPhoto struct {
	ID         string `db:"id"`
	BoatID     string `db:"boat_id"`
	StorageRef string `db:"storage_ref"`
	IsPrimary  bool   `db:"is_primary"`
	SortOrder  int    `db:"sort_order"`
	model.Metadata
}

// IsAbsoluteURL reports whether the stored reference is already a
// browser-usable URL rather than a bucket object key.
func (p BoatPhoto) IsAbsoluteURL() bool {
	return strings.HasPrefix(p.StorageRef, "http://") || strings.HasPrefix(p.StorageRef, "https://")
}
