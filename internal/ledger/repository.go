package ledger

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// RunRepository provides database operations over RunRecord rows.
type RunRepository struct {
	db *gorm.DB
}

// NewRunRepository creates a new repository instance.
func NewRunRepository(db *gorm.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a completed RunRecord.
func (r *RunRepository) Create(rec *RunRecord) error {
	if rec == nil {
		return fmt.Errorf("run record cannot be nil")
	}
	return r.db.Create(rec).Error
}

// Record opens the ledger database at path, inserts rec, and closes it
// again. It is a convenience for CLI drivers that only need to append a
// single run summary.
func Record(path string, rec *RunRecord) error {
	db, err := Open(Config{Path: path}, nil)
	if err != nil {
		return err
	}
	defer db.Close()

	return NewRunRepository(db.GORM()).Create(rec)
}

// RecentByKind returns the most recent runs of a given kind, newest first.
func (r *RunRepository) RecentByKind(kind Kind, limit int) ([]RunRecord, error) {
	var records []RunRecord
	err := r.db.Where("kind = ?", kind).
		Order("started_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// Totals sums the processed/corrected/failed counters across every run,
// optionally filtered to a single kind when kind is non-empty.
func (r *RunRepository) Totals(kind Kind) (processed, corrected, failed int64, err error) {
	query := r.db.Model(&RunRecord{})
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var row struct {
		Processed int64
		Corrected int64
		Failed    int64
	}
	err = query.Select("COALESCE(SUM(processed),0) as processed, COALESCE(SUM(corrected),0) as corrected, COALESCE(SUM(failed),0) as failed").
		Scan(&row).Error
	if err != nil {
		return 0, 0, 0, err
	}
	return row.Processed, row.Corrected, row.Failed, nil
}

// Count returns the total number of run records.
func (r *RunRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&RunRecord{}).Count(&count).Error
	return count, err
}

// GetSince returns runs started after the given time, newest first.
func (r *RunRepository) GetSince(since time.Time, limit int) ([]RunRecord, error) {
	var records []RunRecord
	err := r.db.Where("started_at > ?", since).
		Order("started_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// HealthCheck verifies the repository can reach the database.
func (r *RunRepository) HealthCheck() error {
	var count int64
	return r.db.Model(&RunRecord{}).Count(&count).Error
}
