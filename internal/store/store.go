// Package store persists imported equipment in PostgreSQL.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/dersesut/equipimport/pkg/ingest/models"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Store writes equipment records and reads inventory statistics.
type Store struct {
	db *sqlx.DB
}

// Open connects to the database at url and checks the connection.
func Open(ctx context.Context, url string) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return New(db), nil
}

// New wraps an existing connection pool.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Counts is the number of records written per kind.
type Counts struct {
	CPUs     int `json:"cpus"`
	Monitors int `json:"monitors"`
}

// SaveEquipment inserts every record of data in a single transaction.
func (s *Store) SaveEquipment(ctx context.Context, data models.EquipmentData) (Counts, error) {
	var counts Counts

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return counts, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, batch := range chunk(len(data.CPUs), batchSize(cpuColumns)) {
		if _, err := tx.NamedExecContext(ctx, insertQuery("cpus", cpuColumns), data.CPUs[batch.from:batch.to]); err != nil {
			return counts, fmt.Errorf("failed to insert cpus: %w", err)
		}
	}
	for _, batch := range chunk(len(data.Monitors), batchSize(monitorColumns)) {
		if _, err := tx.NamedExecContext(ctx, insertQuery("monitors", monitorColumns), data.Monitors[batch.from:batch.to]); err != nil {
			return counts, fmt.Errorf("failed to insert monitors: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return counts, fmt.Errorf("failed to commit equipment: %w", err)
	}
	counts.CPUs = len(data.CPUs)
	counts.Monitors = len(data.Monitors)
	return counts, nil
}

// Stats summarizes the stored inventory.
type Stats struct {
	TotalCPUs      int            `json:"totalCPUs"`
	ActiveCPUs     int            `json:"activeCPUs"`
	TotalMonitors  int            `json:"totalMonitors"`
	ActiveMonitors int            `json:"activeMonitors"`
	ByDepartment   map[string]int `json:"byDepartment"`
}

type departmentCount struct {
	Department string `db:"department"`
	Count      int    `db:"count"`
}

// activeStatus matches records whose whole status reads "ativo" or "active".
// Substring matching would also count "Inativo" and "inactive".
const activeStatus = `lower(trim(status)) IN ('ativo', 'active')`

// Stats counts records overall, by active status and by department.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{ByDepartment: map[string]int{}}

	counters := []struct {
		dest  *int
		query string
	}{
		{&st.TotalCPUs, `SELECT COUNT(*) FROM cpus`},
		{&st.ActiveCPUs, `SELECT COUNT(*) FROM cpus WHERE ` + activeStatus},
		{&st.TotalMonitors, `SELECT COUNT(*) FROM monitors`},
		{&st.ActiveMonitors, `SELECT COUNT(*) FROM monitors WHERE ` + activeStatus},
	}
	for _, c := range counters {
		if err := s.db.GetContext(ctx, c.dest, c.query); err != nil {
			return nil, fmt.Errorf("failed to count equipment: %w", err)
		}
	}

	var rows []departmentCount
	query := `SELECT department, COUNT(*) AS count FROM (
		SELECT department FROM cpus
		UNION ALL
		SELECT department FROM monitors
	) AS equipment GROUP BY department ORDER BY department`
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to count departments: %w", err)
	}
	for _, r := range rows {
		st.ByDepartment[r.Department] = r.Count
	}
	return st, nil
}

// Column lists match the db tags of models.CPU and models.Monitor.
var (
	cpuColumns = []string{
		"id", "item", "nomenclature", "asset_tag", "status", "brand_model", "processor", "ram_size",
		"hard_disk", "solid_state_disk", "operating_system", "on_domain", "format_date", "owner",
		"disposal_note", "department",
	}
	monitorColumns = []string{
		"id", "item", "asset_tag", "serial_number", "status", "model", "screen_size", "note",
		"check_date", "owner", "disposal_note", "department",
	}
)

// maxParams is the PostgreSQL bind parameter limit per statement.
const maxParams = 65535

func batchSize(columns []string) int {
	return maxParams / len(columns)
}

func insertQuery(table string, columns []string) string {
	named := make([]string, len(columns))
	for i, c := range columns {
		named[i] = ":" + c
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(named, ", "))
}

type span struct {
	from, to int
}

// chunk splits n items into consecutive spans of at most size.
func chunk(n, size int) []span {
	var out []span
	for from := 0; from < n; from += size {
		to := from + size
		if to > n {
			to = n
		}
		out = append(out, span{from, to})
	}
	return out
}
