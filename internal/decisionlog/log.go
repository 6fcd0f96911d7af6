package decisionlog

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/creativeintel/artconnect/internal/models"
)

// Column order is fixed; readers of the log file depend on it.
var header = []string{
	"timestamp",
	"interaction_id",
	"platform",
	"user_handle",
	"action",
	"original_reply",
	"final_reply",
}

// Log is the append-only store of operator decisions. Entries are only
// ever appended; there is no update, delete, or compaction. The file is
// opened in append mode for each write, so a single new row is written
// rather than rewriting the whole log.
type Log struct {
	path string
	now  func() time.Time
}

// Open prepares the log at path, creating it with the header row if it
// does not exist yet.
func Open(path string) (*Log, error) {
	l := &Log{path: path, now: time.Now}
	if err := l.init(); err != nil {
		return nil, err
	}
	return l, nil
}

// OpenWithClock is Open with an injected time source for tests.
func OpenWithClock(path string, now func() time.Time) (*Log, error) {
	l := &Log{path: path, now: now}
	if err := l.init(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Log) init() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("[DecisionLog] creating log directory: %w", err)
	}

	info, err := os.Stat(l.path)
	if err == nil && info.Size() > 0 {
		return nil
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("[DecisionLog] creating %s: %w", l.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("[DecisionLog] writing header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("[DecisionLog] writing header: %w", err)
	}

	slog.Info("[DecisionLog] Created log file", slog.String("path", l.path))
	return nil
}

// Record appends one decision. An unknown action is a caller bug, not a
// runtime condition, and panics.
func (l *Log) Record(in models.Interaction, action, originalReply, finalReply string) error {
	switch action {
	case models.ActionApprove, models.ActionEdit, models.ActionReject:
	default:
		panic(fmt.Sprintf("[DecisionLog] invalid action %q", action))
	}

	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("[DecisionLog] opening %s for append: %w", l.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := []string{
		l.now().Format(models.TimestampLayout),
		in.InteractionID,
		in.Platform,
		in.UserHandle,
		action,
		originalReply,
		finalReply,
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("[DecisionLog] appending entry: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("[DecisionLog] appending entry: %w", err)
	}

	slog.Info("[DecisionLog] Logged decision",
		slog.String("interaction_id", in.InteractionID),
		slog.String("action", action))
	return nil
}

// ReadAll returns every logged entry in append order.
func (l *Log) ReadAll() ([]models.DecisionLogEntry, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("[DecisionLog] opening %s: %w", l.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("[DecisionLog] reading %s: %w", l.path, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	entries := make([]models.DecisionLogEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(header) {
			continue
		}
		entries = append(entries, models.DecisionLogEntry{
			Timestamp:     row[0],
			InteractionID: row[1],
			Platform:      row[2],
			UserHandle:    row[3],
			Action:        row[4],
			OriginalReply: row[5],
			FinalReply:    row[6],
		})
	}
	return entries, nil
}
