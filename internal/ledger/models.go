package ledger

import (
	"fmt"
	"time"
)

// Kind distinguishes which CLI driver produced a RunRecord.
type Kind string

const (
	KindAX25Gen  Kind = "ax25gen"
	KindFX25Wrap Kind = "fx25wrap"
	KindRSEncode Kind = "rsencode"
	KindRSDecode Kind = "rsdecode"
	KindBitFlip  Kind = "bitflip"
)

// RunRecord is one row summarizing a single invocation of a CLI driver:
// how many blocks it saw, how many it corrected, and how many it gave up
// on, per the processed/corrected/failed counters required on the
// decoder's summary line.
type RunRecord struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Kind       Kind      `gorm:"index;size:16" json:"kind"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Processed  int       `json:"processed"`
	Corrected  int       `json:"corrected"`
	Failed     int       `json:"failed"`
	SourcePath string    `gorm:"size:4096" json:"source_path"`
	DestPath   string    `gorm:"size:4096" json:"dest_path"`
}

// TableName specifies the table name for GORM.
func (RunRecord) TableName() string {
	return "run_records"
}

// Duration is how long the run took.
func (r RunRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// String renders a one-line human-readable summary.
func (r RunRecord) String() string {
	return fmt.Sprintf("%s: processed=%d corrected=%d failed=%d", r.Kind, r.Processed, r.Corrected, r.Failed)
}
