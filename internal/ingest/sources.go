package ingest

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/creativeintel/artconnect/internal/models"
)

// RawRecord is a not-yet-validated record from either source. Pointer
// fields distinguish an absent field from an empty value.
type RawRecord struct {
	InteractionID *string `json:"interaction_id"`
	Platform      *string `json:"platform"`
	Timestamp     *string `json:"timestamp"`
	UserHandle    *string `json:"user_handle"`
	UserFollowers *int    `json:"user_followers"`
	TextContent   *string `json:"text_content"`
}

// Source is one input boundary: an ordered batch of raw records plus the
// platform the whole source belongs to.
type Source struct {
	Name     string
	Platform string
	Records  []RawRecord
}

// LoadInstagramCSV reads the tabular Instagram source from disk.
func LoadInstagramCSV(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("[Ingest] opening %s: %w", path, err)
	}
	return ParseInstagramCSV(path, data)
}

// LoadTwitterJSON reads the structured Twitter source from disk.
func LoadTwitterJSON(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("[Ingest] opening %s: %w", path, err)
	}
	return ParseTwitterJSON(path, data)
}

// ParseInstagramCSV decodes the tabular source. Columns may appear in
// any order; a column missing from the header surfaces later as a
// DataError for every record.
func ParseInstagramCSV(name string, data []byte) (Source, error) {
	r := csv.NewReader(bytes.NewReader(data))
	rows, err := r.ReadAll()
	if err != nil {
		return Source{}, fmt.Errorf("[Ingest] reading %s: %w", name, err)
	}
	if len(rows) == 0 {
		return Source{Name: name, Platform: models.PlatformInstagram}, nil
	}

	cols := make(map[string]int, len(rows[0]))
	for i, col := range rows[0] {
		cols[strings.TrimSpace(col)] = i
	}

	records := make([]RawRecord, 0, len(rows)-1)
	for idx, row := range rows[1:] {
		rec := RawRecord{
			InteractionID: cell(row, cols, "interaction_id"),
			Platform:      cell(row, cols, "platform"),
			Timestamp:     cell(row, cols, "timestamp"),
			UserHandle:    cell(row, cols, "user_handle"),
			TextContent:   cell(row, cols, "text_content"),
		}
		if s := cell(row, cols, "user_followers"); s != nil {
			n, err := strconv.Atoi(strings.TrimSpace(*s))
			if err != nil {
				return Source{}, &DataError{Source: name, Index: idx, ID: deref(rec.InteractionID), Field: "user_followers"}
			}
			rec.UserFollowers = &n
		}
		records = append(records, rec)
	}

	slog.Debug("[Ingest] Loaded tabular source",
		slog.String("source", name),
		slog.Int("records", len(records)))

	return Source{Name: name, Platform: models.PlatformInstagram, Records: records}, nil
}

// ParseTwitterJSON decodes the structured source.
func ParseTwitterJSON(name string, data []byte) (Source, error) {
	var records []RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return Source{}, fmt.Errorf("[Ingest] decoding %s: %w", name, err)
	}

	slog.Debug("[Ingest] Loaded structured source",
		slog.String("source", name),
		slog.Int("records", len(records)))

	return Source{Name: name, Platform: models.PlatformTwitter, Records: records}, nil
}

func cell(row []string, cols map[string]int, name string) *string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return nil
	}
	v := row[i]
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
