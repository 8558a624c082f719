package service

import (
	"context"
	"testing"

	"eventhub_backend/internals/databases/testdb"
	"eventhub_backend/internals/features/events/model"
	orgModel "eventhub_backend/internals/features/org/model"
	regService "eventhub_backend/internals/features/registrations/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, name string) orgModel.UserModel {
	t.Helper()
	u := orgModel.UserModel{Name: name}
	require.NoError(t, db.Create(&u).Error)
	return u
}

// Venue "Main Hall" seats 2, but the event itself has no capacity cap:
// all three users get in and remaining seats stays unbounded.
func TestEventSummary_NoCapUnbounded(t *testing.T) {
	db := testdb.Open(t)
	views := NewViewService(db)
	regs := regService.NewRegistrationService(db)

	venue := model.VenueModel{Name: "Main Hall", Capacity: 2}
	require.NoError(t, db.Create(&venue).Error)

	ev := model.EventModel{Title: "Launch", VenueID: &venue.VenueID}
	require.NoError(t, db.Create(&ev).Error)

	for _, name := range []string{"A", "B", "C"} {
		u := seedUser(t, db, name)
		_, err := regs.Register(context.Background(), ev.EventID, u.UserID)
		require.NoError(t, err)
	}

	row, err := views.EventSummary(context.Background(), ev.EventID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), row.TotalRegistrations)
	assert.Nil(t, row.Capacity)
	assert.Nil(t, row.RemainingSeats)
}

// The summary's remaining-seats figure always agrees with what the
// admission check decided from.
func TestEventSummary_MatchesAdmissionDecision(t *testing.T) {
	db := testdb.Open(t)
	views := NewViewService(db)
	regs := regService.NewRegistrationService(db)

	cap := 1
	ev := model.EventModel{Title: "Workshop", Capacity: &cap}
	require.NoError(t, db.Create(&ev).Error)

	a := seedUser(t, db, "A")
	b := seedUser(t, db, "B")

	_, err := regs.Register(context.Background(), ev.EventID, a.UserID)
	require.NoError(t, err)

	row, err := views.EventSummary(context.Background(), ev.EventID)
	require.NoError(t, err)
	require.NotNil(t, row.RemainingSeats)
	assert.Equal(t, int64(0), *row.RemainingSeats)

	// zero remaining ⇒ the admission op must turn the next user away
	_, err = regs.Register(context.Background(), ev.EventID, b.UserID)
	assert.ErrorIs(t, err, regService.ErrEventFull)

	row, err = views.EventSummary(context.Background(), ev.EventID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), row.TotalRegistrations)
	assert.Equal(t, int64(0), *row.RemainingSeats)
}

func TestEventSummary_UnknownEvent(t *testing.T) {
	db := testdb.Open(t)
	views := NewViewService(db)

	_, err := views.EventSummary(context.Background(), 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestEventDetails_JoinsLookupNames(t *testing.T) {
	db := testdb.Open(t)
	views := NewViewService(db)

	require.NoError(t, db.Exec(`INSERT INTO departments (dept_id, dept_name, dept_code) VALUES (1, 'CSE', 'CS')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO users (user_id, name, dept_id) VALUES (1, 'Alice', 1)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO categories (category_id, name, active_status) VALUES (1, 'Technical', 1)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO venues (venue_id, name, location, capacity) VALUES (1, 'Main Hall', 'Block A', 200)`).Error)
	require.NoError(t, db.Exec(`
		INSERT INTO events (event_id, title, category_id, organizer_id, venue_id)
		VALUES (1, 'Launch', 1, 1, 1), (2, 'Bare Event', NULL, NULL, NULL)`).Error)

	rows, err := views.EventDetails(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	launch := rows[0]
	assert.Equal(t, "Launch", launch.Title)
	require.NotNil(t, launch.CategoryName)
	assert.Equal(t, "Technical", *launch.CategoryName)
	require.NotNil(t, launch.VenueName)
	assert.Equal(t, "Main Hall", *launch.VenueName)
	require.NotNil(t, launch.OrganizerName)
	assert.Equal(t, "Alice", *launch.OrganizerName)
	require.NotNil(t, launch.OrganizerDept)
	assert.Equal(t, "CSE", *launch.OrganizerDept)

	// left joins keep events whose references are unset
	bare := rows[1]
	assert.Equal(t, "Bare Event", bare.Title)
	assert.Nil(t, bare.CategoryName)
	assert.Nil(t, bare.VenueName)
	assert.Nil(t, bare.OrganizerName)
}

func TestDashboard_Totals(t *testing.T) {
	db := testdb.Open(t)
	views := NewViewService(db)

	require.NoError(t, db.Exec(`INSERT INTO users (user_id, name) VALUES (1, 'Alice'), (2, 'Bob')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO venues (venue_id, name, capacity) VALUES (1, 'Main Hall', 100)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO events (event_id, title) VALUES (1, 'Launch')`).Error)
	require.NoError(t, db.Exec(`
		INSERT INTO registrations (event_id, user_id, status, registered_at)
		VALUES (1, 1, 'confirmed', '2026-01-01 10:00:00'), (1, 2, 'confirmed', '2026-01-02 10:00:00')`).Error)

	data, err := views.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.TotalEvents)
	assert.Equal(t, int64(2), data.TotalUsers)
	assert.Equal(t, int64(1), data.TotalVenues)
	assert.Equal(t, int64(2), data.TotalRegistrations)
	require.Len(t, data.RecentRegistrations, 2)
	// newest first
	assert.Equal(t, "Bob", data.RecentRegistrations[0].UserName)
}
