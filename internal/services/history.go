package services

import (
	"qrstudio/internal/domain/export"
	"qrstudio/internal/models"

	"gorm.io/gorm"
)

// defaultHistoryLimit applies when callers ask for a non-positive limit.
const defaultHistoryLimit = 50

// HistoryService handles export history records
type HistoryService struct {
	db *gorm.DB
}

// NewHistoryService creates a new history service
func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Add stores one export record
func (s *HistoryService) Add(rec export.Record) error {
	m := models.FromRecord(rec)
	return s.db.Create(&m).Error
}

// Recent returns the newest records first
func (s *HistoryService) Recent(limit int) ([]export.Record, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	var rows []models.ExportRecord
	if err := s.db.Order("created_at desc").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]export.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToRecord())
	}
	return out, nil
}

// Clear removes every record
func (s *HistoryService) Clear() error {
	return s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ExportRecord{}).Error
}
