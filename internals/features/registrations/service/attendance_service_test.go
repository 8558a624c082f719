package service

import (
	"context"
	"testing"

	"eventhub_backend/internals/databases/testdb"
	"eventhub_backend/internals/features/registrations/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAttendance_InsertsThenUpdates(t *testing.T) {
	db := testdb.Open(t)
	svc := NewAttendanceService(db)

	cap := 10
	ev := createEvent(t, db, "Tech Talk", &cap)
	u := createUser(t, db, "Alice")

	first, err := svc.Mark(context.Background(), ev.EventID, u.UserID, true)
	require.NoError(t, err)
	assert.True(t, first.Present)

	second, err := svc.Mark(context.Background(), ev.EventID, u.UserID, false)
	require.NoError(t, err)
	assert.False(t, second.Present)
	assert.Equal(t, first.AttendanceID, second.AttendanceID)
	assert.False(t, second.CheckedAt.Before(first.CheckedAt))

	// still exactly one row for the pair
	var n int64
	require.NoError(t, db.Model(&model.AttendanceModel{}).
		Where("event_id = ? AND user_id = ?", ev.EventID, u.UserID).
		Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestMarkAttendance_ConvergesToLastValue(t *testing.T) {
	db := testdb.Open(t)
	svc := NewAttendanceService(db)

	cap := 10
	ev := createEvent(t, db, "Tech Talk", &cap)
	u := createUser(t, db, "Alice")

	values := []bool{true, false, false, true}
	for _, v := range values {
		_, err := svc.Mark(context.Background(), ev.EventID, u.UserID, v)
		require.NoError(t, err)
	}

	var row model.AttendanceModel
	require.NoError(t, db.
		Where("event_id = ? AND user_id = ?", ev.EventID, u.UserID).
		First(&row).Error)
	assert.True(t, row.Present)
}

// Attendance is not gated on a prior registration: walk-ins get recorded.
func TestMarkAttendance_WalkInWithoutRegistration(t *testing.T) {
	db := testdb.Open(t)
	svc := NewAttendanceService(db)

	ev := createEvent(t, db, "Open House", nil)
	u := createUser(t, db, "Walk-in")

	att, err := svc.Mark(context.Background(), ev.EventID, u.UserID, true)
	require.NoError(t, err)
	assert.True(t, att.Present)
}
