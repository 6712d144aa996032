// internal/forms/projector/projector.go
// Package projector maps a validated submission record onto the fixed column
// layout of the target sheet.
package projector

import (
	"strings"
	"time"

	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/validation"
)

// Column declares one output cell. Exactly one of Timestamp or Field drives
// the cell value.
type Column struct {
	Header    string
	Field     string
	Timestamp bool
	Multi     bool
	Separator string // join separator for multi-choice columns
	// OtherField names a free-text companion appended to the joined value,
	// comma-separated, when present and non-empty.
	OtherField string
}

// RowSpec is the fixed, externally-defined column schema of one deployment.
// Column count and order must exactly match the sheet's header row.
type RowSpec struct {
	Columns         []Column
	TimestampLayout string
}

// Headers returns the header row matching the projected cells 1:1.
func (s RowSpec) Headers() []string {
	headers := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		headers[i] = col.Header
	}
	return headers
}

// Project converts a validated record into the ordered cell sequence. The
// record is trusted: no validation happens here. Two calls with identical
// input and clock reading produce identical output.
func Project(rec *validation.Record, spec RowSpec, now time.Time) []string {
	row := make([]string, len(spec.Columns))
	for i, col := range spec.Columns {
		switch {
		case col.Timestamp:
			row[i] = now.Format(spec.TimestampLayout)
		case col.Multi:
			row[i] = joinMulti(rec, col)
		default:
			// Optional absent fields resolve to "", never an omitted cell.
			row[i] = rec.Get(col.Field)
		}
	}
	return row
}

func joinMulti(rec *validation.Record, col Column) string {
	joined := strings.Join(rec.List(col.Field), col.Separator)
	if col.OtherField != "" {
		if other := rec.Get(col.OtherField); other != "" {
			if joined == "" {
				return other
			}
			return joined + ", " + other
		}
	}
	return joined
}
