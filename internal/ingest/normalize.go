package ingest

import (
	"fmt"
	"strings"

	"github.com/creativeintel/artconnect/internal/models"
)

// DataError reports a required field missing from a source record. The
// whole batch aborts rather than silently dropping the record.
type DataError struct {
	Source string
	Index  int
	ID     string
	Field  string
}

func (e *DataError) Error() string {
	id := e.ID
	if id == "" {
		id = "<unknown>"
	}
	return fmt.Sprintf("[Ingest] %s record %d (%s): missing required field %q", e.Source, e.Index, id, e.Field)
}

// requiredFields must be present on every record; everything else has an
// explicit fallback downstream (handle defaults in the drafter, platform
// defaults to the source's).
var requiredFields = []struct {
	name    string
	present func(RawRecord) bool
}{
	{"text_content", func(r RawRecord) bool { return r.TextContent != nil }},
	{"user_followers", func(r RawRecord) bool { return r.UserFollowers != nil }},
	{"timestamp", func(r RawRecord) bool { return r.Timestamp != nil }},
}

// Normalize merges the sources, in order, into one uniform batch. Every
// record is preserved: no dedup, no filtering.
func Normalize(sources ...Source) ([]models.Interaction, error) {
	var out []models.Interaction
	for _, src := range sources {
		for idx, rec := range src.Records {
			for _, f := range requiredFields {
				if !f.present(rec) {
					return nil, &DataError{Source: src.Name, Index: idx, ID: deref(rec.InteractionID), Field: f.name}
				}
			}

			platform := src.Platform
			if rec.Platform != nil && *rec.Platform != "" {
				platform = *rec.Platform
			}

			out = append(out, models.Interaction{
				InteractionID: deref(rec.InteractionID),
				Platform:      capitalize(platform),
				Timestamp:     *rec.Timestamp,
				UserHandle:    deref(rec.UserHandle),
				UserFollowers: *rec.UserFollowers,
				TextContent:   *rec.TextContent,
			})
		}
	}
	return out, nil
}

// capitalize maps source platform spellings ("instagram", "TWITTER") to
// the canonical "Instagram" / "Twitter" form.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
