package model

import "time"

// Metadata holds the row timestamps every table carries.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
}

// Stamped returns metadata for a row first written at now.
func Stamped(now time.Time) Metadata {
	return Metadata{CreatedAt: now, ModifiedAt: now}
}
