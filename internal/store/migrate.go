package store

import (
	"context"
	"fmt"
)

var schema = []struct {
	name string
	ddl  string
}{
	{"cpus", `CREATE TABLE IF NOT EXISTS cpus (
		id TEXT PRIMARY KEY,
		item INTEGER NOT NULL,
		nomenclature TEXT NOT NULL DEFAULT '',
		asset_tag TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		brand_model TEXT NOT NULL DEFAULT '',
		processor TEXT NOT NULL DEFAULT '',
		ram_size TEXT NOT NULL DEFAULT '',
		hard_disk TEXT,
		solid_state_disk TEXT,
		operating_system TEXT NOT NULL DEFAULT '',
		on_domain TEXT NOT NULL DEFAULT 'SIM',
		format_date TEXT,
		owner TEXT NOT NULL DEFAULT '',
		disposal_note TEXT,
		department TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"monitors", `CREATE TABLE IF NOT EXISTS monitors (
		id TEXT PRIMARY KEY,
		item INTEGER NOT NULL,
		asset_tag TEXT NOT NULL DEFAULT '',
		serial_number TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		model TEXT NOT NULL DEFAULT '',
		screen_size TEXT NOT NULL DEFAULT '',
		note TEXT,
		check_date TEXT NOT NULL DEFAULT '',
		owner TEXT NOT NULL DEFAULT '',
		disposal_note TEXT,
		department TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"cpus_department_idx", `CREATE INDEX IF NOT EXISTS cpus_department_idx ON cpus (department)`},
	{"monitors_department_idx", `CREATE INDEX IF NOT EXISTS monitors_department_idx ON monitors (department)`},
}

// Migrate creates the equipment tables when missing.
func (s *Store) Migrate(ctx context.Context) error {
	for _, step := range schema {
		if _, err := s.db.ExecContext(ctx, step.ddl); err != nil {
			return fmt.Errorf("failed to create %s: %w", step.name, err)
		}
	}
	return nil
}
