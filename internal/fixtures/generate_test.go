package fixtures

import (
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creativeintel/artconnect/internal/ingest"
	"github.com/creativeintel/artconnect/internal/models"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Seed = 42
	opts.Now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }
	return opts
}

func TestGenerateCounts(t *testing.T) {
	instagram, twitter := Generate(testOptions())

	assert.Len(t, instagram, 132) // 55% of 240
	assert.Len(t, twitter, 108)
}

func TestGenerateShape(t *testing.T) {
	instagram, twitter := Generate(testOptions())

	idPattern := regexp.MustCompile(`^(INS|TWI)-\d{4}$`)
	handlePattern := regexp.MustCompile(`^@[A-Za-z]+\d+$`)

	for _, in := range append(instagram, twitter...) {
		assert.Regexp(t, idPattern, in.InteractionID)
		assert.Regexp(t, handlePattern, in.UserHandle)
		assert.NotEmpty(t, in.TextContent)
		assert.GreaterOrEqual(t, in.UserFollowers, 10)
		assert.LessOrEqual(t, in.UserFollowers, 15000)

		_, err := time.Parse(models.TimestampLayout, in.Timestamp)
		assert.NoError(t, err)
	}

	assert.Equal(t, models.PlatformInstagram, instagram[0].Platform)
	assert.Equal(t, models.PlatformTwitter, twitter[0].Platform)
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	instaA, twitterA := Generate(testOptions())
	instaB, twitterB := Generate(testOptions())

	assert.Equal(t, instaA, instaB)
	assert.Equal(t, twitterA, twitterB)
}

func TestWriteFilesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteFiles(dir, testOptions()))

	insta, err := ingest.LoadInstagramCSV(filepath.Join(dir, "instagram_sample.csv"))
	require.NoError(t, err)
	twitter, err := ingest.LoadTwitterJSON(filepath.Join(dir, "twitter_sample.json"))
	require.NoError(t, err)

	batch, err := ingest.Normalize(insta, twitter)
	require.NoError(t, err)
	assert.Len(t, batch, 240)
}
