package service

import (
	"context"
	"errors"
	"time"

	eventModel "eventhub_backend/internals/features/events/model"
	"eventhub_backend/internals/features/registrations/model"
	helper "eventhub_backend/internals/helpers"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Registration status codes. Status is free text in the store; these are the
// values this service writes and the one value it treats as a freed seat.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrAlreadyRegistered = errors.New("user already registered for this event")
	ErrEventFull         = errors.New("event at capacity")
)

// RegistrationService owns the admission operation. The capacity check and the
// insert run inside a single transaction with the event row locked, so two
// concurrent attempts for the last seat cannot both succeed.
type RegistrationService struct {
	DB *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{DB: db}
}

// Register admits userID to eventID, or fails with ErrEventNotFound,
// ErrAlreadyRegistered or ErrEventFull. Exactly one row is written on
// success, zero on any failure path.
func (s *RegistrationService) Register(ctx context.Context, eventID, userID uint) (*model.RegistrationModel, error) {
	var reg model.RegistrationModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		// SQLite has no FOR UPDATE; its single-writer model serializes the
		// transaction instead. Postgres needs the row lock.
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var ev eventModel.EventModel
		if err := q.
			Where("event_id = ?", eventID).
			First(&ev).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		var existing int64
		if err := tx.Model(&model.RegistrationModel{}).
			Where("event_id = ? AND user_id = ?", eventID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyRegistered
		}

		if ev.Capacity != nil {
			taken, err := ConfirmedCount(tx, eventID)
			if err != nil {
				return err
			}
			if taken >= int64(*ev.Capacity) {
				return ErrEventFull
			}
		}

		reg = model.RegistrationModel{
			EventID:      eventID,
			UserID:       userID,
			RegisteredAt: time.Now(),
			Status:       StatusConfirmed,
		}
		if err := tx.Create(&reg).Error; err != nil {
			// The unique (event_id, user_id) index backstops the pair check.
			if helper.IsDuplicateKey(err) {
				return ErrAlreadyRegistered
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// ConfirmedCount is the single source of the seat-occupancy semantics:
// every non-cancelled registration holds a seat. The admission check above
// and the event summary view both go through here, so they cannot disagree.
func ConfirmedCount(tx *gorm.DB, eventID uint) (int64, error) {
	var n int64
	err := tx.Model(&model.RegistrationModel{}).
		Where("event_id = ? AND status <> ?", eventID, StatusCancelled).
		Count(&n).Error
	return n, err
}
