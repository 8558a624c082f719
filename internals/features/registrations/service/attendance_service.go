package service

import (
	"context"
	"time"

	"eventhub_backend/internals/features/registrations/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceService records presence. Marking is an upsert keyed on
// (event_id, user_id): repeated calls converge to the latest presence value
// and never grow a second row. Attendance is not gated on a prior
// registration — walk-ins are recordable.
type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

// Mark inserts or updates the attendance row for the pair.
func (s *AttendanceService) Mark(ctx context.Context, eventID, userID uint, present bool) (*model.AttendanceModel, error) {
	now := time.Now()
	att := model.AttendanceModel{
		EventID:   eventID,
		UserID:    userID,
		Present:   present,
		CheckedAt: now,
	}

	if err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"present":    present,
			"checked_at": now,
		}),
	}).Create(&att).Error; err != nil {
		return nil, err
	}

	// Re-read for the canonical row (the insert path and the update path
	// report ids differently across drivers).
	var out model.AttendanceModel
	if err := s.DB.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
