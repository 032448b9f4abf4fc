package models

import (
	"time"

	"qrstudio/internal/domain/export"
)

// ExportRecord represents one saved image in the database
type ExportRecord struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Path      string    `gorm:"type:text" json:"path"`
	Format    string    `gorm:"size:8" json:"format"`
	Payload   string    `gorm:"type:text" json:"payload"`
	Shape     string    `gorm:"size:32" json:"shape"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// FromRecord converts a domain record into the database model
func FromRecord(rec export.Record) ExportRecord {
	return ExportRecord{
		ID:        rec.ID,
		Path:      rec.Path,
		Format:    string(rec.Format),
		Payload:   rec.Payload,
		Shape:     rec.Shape,
		Width:     rec.Width,
		Height:    rec.Height,
		CreatedAt: rec.CreatedAt,
	}
}

// ToRecord converts the database model into a domain record
func (m ExportRecord) ToRecord() export.Record {
	return export.Record{
		ID:        m.ID,
		Path:      m.Path,
		Format:    export.Format(m.Format),
		Payload:   m.Payload,
		Shape:     m.Shape,
		Width:     m.Width,
		Height:    m.Height,
		CreatedAt: m.CreatedAt,
	}
}
