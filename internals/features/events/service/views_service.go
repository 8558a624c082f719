package service

import (
	"context"
	"time"

	"eventhub_backend/internals/features/events/dto"
	"eventhub_backend/internals/features/events/model"
	orgModel "eventhub_backend/internals/features/org/model"
	regModel "eventhub_backend/internals/features/registrations/model"
	regService "eventhub_backend/internals/features/registrations/service"

	"gorm.io/gorm"
)

// ViewService computes the read-only projections. Nothing is materialized:
// every call recomputes from the base tables.
type ViewService struct {
	DB *gorm.DB
}

func NewViewService(db *gorm.DB) *ViewService {
	return &ViewService{DB: db}
}

// EventDetails joins category, venue and organizer (with department) onto
// each event row.
func (s *ViewService) EventDetails(ctx context.Context) ([]dto.EventDetailDTO, error) {
	var rows []dto.EventDetailDTO
	err := s.DB.WithContext(ctx).Raw(`
		SELECT e.event_id, e.title, e.description, e.start_datetime, e.end_datetime,
		       e.capacity, e.status,
		       c.name AS category_name,
		       v.name AS venue_name, v.location AS venue_location,
		       u.name AS organizer_name, d.dept_name AS organizer_dept
		FROM events e
		LEFT JOIN categories c ON c.category_id = e.category_id
		LEFT JOIN venues v ON v.venue_id = e.venue_id
		LEFT JOIN users u ON u.user_id = e.organizer_id
		LEFT JOIN departments d ON d.dept_id = u.dept_id
		ORDER BY e.event_id`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// EventSummary tallies one event. The count goes through the registration
// service's ConfirmedCount so the summary can never disagree with the last
// admission decision.
func (s *ViewService) EventSummary(ctx context.Context, eventID uint) (*dto.EventSummaryDTO, error) {
	var ev model.EventModel
	if err := s.DB.WithContext(ctx).
		Where("event_id = ?", eventID).
		First(&ev).Error; err != nil {
		return nil, err
	}
	return s.summarize(ctx, ev)
}

// EventSummaries tallies every event.
func (s *ViewService) EventSummaries(ctx context.Context) ([]dto.EventSummaryDTO, error) {
	var events []model.EventModel
	if err := s.DB.WithContext(ctx).Order("event_id").Find(&events).Error; err != nil {
		return nil, err
	}

	out := make([]dto.EventSummaryDTO, 0, len(events))
	for _, ev := range events {
		row, err := s.summarize(ctx, ev)
		if err != nil {
			return nil, err
		}
		out = append(out, *row)
	}
	return out, nil
}

func (s *ViewService) summarize(ctx context.Context, ev model.EventModel) (*dto.EventSummaryDTO, error) {
	total, err := regService.ConfirmedCount(s.DB.WithContext(ctx), ev.EventID)
	if err != nil {
		return nil, err
	}

	row := dto.EventSummaryDTO{
		EventID:            ev.EventID,
		Title:              ev.Title,
		Capacity:           ev.Capacity,
		TotalRegistrations: total,
	}
	if ev.Capacity != nil {
		remaining := int64(*ev.Capacity) - total
		row.RemainingSeats = &remaining
	}
	return &row, nil
}

// Dashboard aggregates the landing-page numbers.
func (s *ViewService) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	db := s.DB.WithContext(ctx)
	out := dto.DashboardDTO{}

	if err := db.Model(&model.EventModel{}).Count(&out.TotalEvents).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&orgModel.UserModel{}).Count(&out.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.VenueModel{}).Count(&out.TotalVenues).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&regModel.RegistrationModel{}).Count(&out.TotalRegistrations).Error; err != nil {
		return nil, err
	}

	var upcoming []model.EventModel
	if err := db.
		Where("start_datetime >= ?", time.Now()).
		Order("start_datetime").
		Limit(5).
		Find(&upcoming).Error; err != nil {
		return nil, err
	}
	out.UpcomingEvents = make([]dto.EventDTO, 0, len(upcoming))
	for _, ev := range upcoming {
		out.UpcomingEvents = append(out.UpcomingEvents, dto.ToEventDTO(ev))
	}

	var recent []dto.RecentRegDTO
	if err := db.Raw(`
		SELECT r.reg_id, r.event_id, e.title AS event_title,
		       r.user_id, u.name AS user_name, r.status, r.registered_at
		FROM registrations r
		JOIN events e ON e.event_id = r.event_id
		JOIN users u ON u.user_id = r.user_id
		ORDER BY r.registered_at DESC
		LIMIT 5`).Scan(&recent).Error; err != nil {
		return nil, err
	}
	out.RecentRegistrations = recent

	return &out, nil
}
