package database

import (
	"testing"

	"eventhub_backend/internals/databases/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func count(t *testing.T, db *gorm.DB, query string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Raw(query, args...).Scan(&n).Error)
	return n
}

// Deleting a department keeps its users and clears their dept_id.
func TestDeleteDepartment_ClearsUsers(t *testing.T) {
	db := testdb.Open(t)

	require.NoError(t, db.Exec(`INSERT INTO departments (dept_id, dept_name, dept_code) VALUES (1, 'CSE', 'CS')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO users (user_id, name, dept_id) VALUES (1, 'Alice', 1), (2, 'Bob', 1)`).Error)

	require.NoError(t, DeleteWithPropagation(db, "departments", "dept_id", 1, DepartmentChildren))

	assert.Equal(t, int64(0), count(t, db, `SELECT COUNT(*) FROM departments`))
	assert.Equal(t, int64(2), count(t, db, `SELECT COUNT(*) FROM users`))
	assert.Equal(t, int64(0), count(t, db, `SELECT COUNT(*) FROM users WHERE dept_id IS NOT NULL`))
}

// Deleting a role clears users.role_id the same way.
func TestDeleteRole_ClearsUsers(t *testing.T) {
	db := testdb.Open(t)

	require.NoError(t, db.Exec(`INSERT INTO roles (role_id, role_name) VALUES (1, 'student')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO users (user_id, name, role_id) VALUES (1, 'Alice', 1)`).Error)

	require.NoError(t, DeleteWithPropagation(db, "roles", "role_id", 1, RoleChildren))

	assert.Equal(t, int64(1), count(t, db, `SELECT COUNT(*) FROM users`))
	assert.Equal(t, int64(0), count(t, db, `SELECT COUNT(*) FROM users WHERE role_id IS NOT NULL`))
}

// Deleting an event takes its registrations, attendance and resource
// bookings with it.
func TestDeleteEvent_CascadesChildren(t *testing.T) {
	db := testdb.Open(t)

	require.NoError(t, db.Exec(`INSERT INTO users (user_id, name) VALUES (1, 'Alice')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO events (event_id, title) VALUES (1, 'Launch'), (2, 'Other')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO registrations (event_id, user_id, status) VALUES (1, 1, 'confirmed'), (2, 1, 'confirmed')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO attendance (event_id, user_id, present) VALUES (1, 1, 1)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO resources (resource_id, resource_name, total_quantity) VALUES (1, 'Projector', 5)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO event_resources (event_id, resource_id, quantity_required) VALUES (1, 1, 2)`).Error)

	require.NoError(t, DeleteWithPropagation(db, "events", "event_id", 1, EventChildren))

	assert.Equal(t, int64(1), count(t, db, `SELECT COUNT(*) FROM events`))
	// only the other event's registration survives
	assert.Equal(t, int64(1), count(t, db, `SELECT COUNT(*) FROM registrations`))
	assert.Equal(t, int64(0), count(t, db, `SELECT COUNT(*) FROM attendance`))
	assert.Equal(t, int64(0), count(t, db, `SELECT COUNT(*) FROM event_resources`))
	// the user and the shared resource pool are untouched
	assert.Equal(t, int64(1), count(t, db, `SELECT COUNT(*) FROM users`))
	assert.Equal(t, int64(1), count(t, db, `SELECT COUNT(*) FROM resources`))
}

func TestDeleteUser_CascadesRegistrationsClearsOrganizer(t *testing.T) {
	db := testdb.Open(t)

	require.NoError(t, db.Exec(`INSERT INTO users (user_id, name) VALUES (1, 'Alice')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO events (event_id, title, organizer_id) VALUES (1, 'Launch', 1)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO registrations (event_id, user_id, status) VALUES (1, 1, 'confirmed')`).Error)

	require.NoError(t, DeleteWithPropagation(db, "users", "user_id", 1, UserChildren))

	assert.Equal(t, int64(0), count(t, db, `SELECT COUNT(*) FROM registrations`))
	assert.Equal(t, int64(1), count(t, db, `SELECT COUNT(*) FROM events`))
	assert.Equal(t, int64(0), count(t, db, `SELECT COUNT(*) FROM events WHERE organizer_id IS NOT NULL`))
}

func TestDeleteWithPropagation_MissingParent(t *testing.T) {
	db := testdb.Open(t)

	err := DeleteWithPropagation(db, "roles", "role_id", 42, RoleChildren)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
