package database

import (
	"fmt"

	"gorm.io/gorm"
)

// PropagationRule says what happens to child rows when their parent is deleted.
type PropagationRule int

const (
	// Clear nulls the child's foreign key; the child row survives.
	Clear PropagationRule = iota
	// Cascade deletes the child rows together with the parent.
	Cascade
)

// ChildRelation declares one parent→child foreign-key relationship and its
// on-delete rule. The rule lives here, once per relationship, instead of being
// hardcoded inside each delete handler.
type ChildRelation struct {
	Table          string
	Column         string
	OnParentDelete PropagationRule
}

// Child relations per parent entity. Users are independently meaningful, so
// lookup parents (role, department, category, venue, organizer) clear the
// reference; registration/attendance/event_resource rows have no meaning
// without their parent and cascade.
var (
	RoleChildren = []ChildRelation{
		{Table: "users", Column: "role_id", OnParentDelete: Clear},
	}
	DepartmentChildren = []ChildRelation{
		{Table: "users", Column: "dept_id", OnParentDelete: Clear},
	}
	CategoryChildren = []ChildRelation{
		{Table: "events", Column: "category_id", OnParentDelete: Clear},
	}
	VenueChildren = []ChildRelation{
		{Table: "events", Column: "venue_id", OnParentDelete: Clear},
	}
	UserChildren = []ChildRelation{
		{Table: "events", Column: "organizer_id", OnParentDelete: Clear},
		{Table: "registrations", Column: "user_id", OnParentDelete: Cascade},
		{Table: "attendance", Column: "user_id", OnParentDelete: Cascade},
	}
	EventChildren = []ChildRelation{
		{Table: "registrations", Column: "event_id", OnParentDelete: Cascade},
		{Table: "attendance", Column: "event_id", OnParentDelete: Cascade},
		{Table: "event_resources", Column: "event_id", OnParentDelete: Cascade},
	}
	ResourceChildren = []ChildRelation{
		{Table: "event_resources", Column: "resource_id", OnParentDelete: Cascade},
	}
)

// DeleteWithPropagation removes the parent row identified by (parentTable,
// pkColumn, id) after applying every child rule, all inside one transaction.
// Returns gorm.ErrRecordNotFound when the parent does not exist.
func DeleteWithPropagation(db *gorm.DB, parentTable, pkColumn string, id uint64, children []ChildRelation) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, rel := range children {
			switch rel.OnParentDelete {
			case Clear:
				if err := tx.Exec(
					fmt.Sprintf("UPDATE %s SET %s = NULL WHERE %s = ?", rel.Table, rel.Column, rel.Column),
					id,
				).Error; err != nil {
					return err
				}
			case Cascade:
				if err := tx.Exec(
					fmt.Sprintf("DELETE FROM %s WHERE %s = ?", rel.Table, rel.Column),
					id,
				).Error; err != nil {
					return err
				}
			}
		}

		res := tx.Exec(
			fmt.Sprintf("DELETE FROM %s WHERE %s = ?", parentTable, pkColumn),
			id,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
