// Package testdb provisions an in-memory SQLite store for tests. The DDL
// mirrors the externally managed production schema (which this service never
// creates or migrates itself), including the composite unique indexes the
// registration and attendance operations rely on.
package testdb

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq uint64

const schema = `
CREATE TABLE roles (
	role_id     INTEGER PRIMARY KEY AUTOINCREMENT,
	role_name   TEXT NOT NULL UNIQUE,
	description TEXT,
	created_at  DATETIME
);
CREATE TABLE departments (
	dept_id    INTEGER PRIMARY KEY AUTOINCREMENT,
	dept_name  TEXT NOT NULL UNIQUE,
	dept_code  TEXT NOT NULL UNIQUE,
	hod_name   TEXT,
	created_at DATETIME
);
CREATE TABLE users (
	user_id       INTEGER PRIMARY KEY AUTOINCREMENT,
	roll_no       TEXT,
	name          TEXT NOT NULL,
	email         TEXT,
	phone         TEXT,
	password_hash TEXT,
	role_id       INTEGER,
	dept_id       INTEGER,
	created_at    DATETIME
);
CREATE TABLE venues (
	venue_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name     TEXT NOT NULL,
	location TEXT,
	capacity INTEGER NOT NULL
);
CREATE TABLE categories (
	category_id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name          TEXT NOT NULL UNIQUE,
	description   TEXT,
	icon          TEXT,
	active_status BOOLEAN NOT NULL DEFAULT 1
);
CREATE TABLE events (
	event_id       INTEGER PRIMARY KEY AUTOINCREMENT,
	title          TEXT NOT NULL,
	description    TEXT,
	category_id    INTEGER,
	organizer_id   INTEGER,
	venue_id       INTEGER,
	start_datetime DATETIME,
	end_datetime   DATETIME,
	capacity       INTEGER,
	status         TEXT,
	created_at     DATETIME
);
CREATE TABLE registrations (
	reg_id        INTEGER PRIMARY KEY AUTOINCREMENT,
	event_id      INTEGER NOT NULL,
	user_id       INTEGER NOT NULL,
	registered_at DATETIME,
	status        TEXT,
	UNIQUE (event_id, user_id)
);
CREATE TABLE attendance (
	attendance_id INTEGER PRIMARY KEY AUTOINCREMENT,
	event_id      INTEGER NOT NULL,
	user_id       INTEGER NOT NULL,
	present       BOOLEAN NOT NULL DEFAULT 0,
	checked_at    DATETIME,
	UNIQUE (event_id, user_id)
);
CREATE TABLE resources (
	resource_id    INTEGER PRIMARY KEY AUTOINCREMENT,
	resource_name  TEXT NOT NULL UNIQUE,
	total_quantity INTEGER NOT NULL
);
CREATE TABLE event_resources (
	er_id             INTEGER PRIMARY KEY AUTOINCREMENT,
	event_id          INTEGER NOT NULL,
	resource_id       INTEGER NOT NULL,
	quantity_required INTEGER NOT NULL
);
`

// Open returns a fresh in-memory store with the full schema loaded. Each call
// gets its own database; it lives until the test's cleanup closes it.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared&_busy_timeout=5000", atomic.AddUint64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	// SQLite has no row-level FOR UPDATE; a single connection gives tests the
	// same write serialization the production store provides.
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec(schema).Error; err != nil {
		t.Fatalf("load schema: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
