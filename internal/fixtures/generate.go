package fixtures

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/creativeintel/artconnect/internal/models"
)

var genericComments = []string{
	"Love this!", "Amazing work!", "So cool 🔥", "Nice!", "Beautiful piece.",
	"Wow!", "Great colors!", "This is awesome.", "Nice composition.",
	"Stunning!",
}

var highValueTemplates = []string{
	"I'd love to commission a piece in this style.",
	"Do you sell prints of this artwork?",
	"What is the price for a commission?",
	"I'm a gallery curator, would love to talk.",
	"I'm a collector and really interested in this piece.",
	"We run an online art gallery, can we feature your work?",
	"I'd like to buy this painting for my collection.",
}

var userHandles = []string{
	"ArtLover", "GalleryGazer", "CollectorJane", "CuratorMike",
	"PainterFan", "AbstractAddict", "ColorChaser", "GalleryOwnerTX",
	"DesignGeek", "ModernArtFan",
}

// Options controls the simulated dataset. Defaults reproduce the
// standard demo set: 240 interactions, 25 of them high-value, 55% from
// Instagram.
type Options struct {
	TotalInteractions int
	TotalHighValue    int
	InstagramShare    float64
	DaysBack          int
	Seed              int64
	Now               func() time.Time
}

func DefaultOptions() Options {
	return Options{
		TotalInteractions: 240,
		TotalHighValue:    25,
		InstagramShare:    0.55,
		DaysBack:          30,
		Seed:              time.Now().UnixNano(),
		Now:               time.Now,
	}
}

// Generate builds the two simulated source batches.
func Generate(opts Options) (instagram, twitter []models.Interaction) {
	rng := rand.New(rand.NewSource(opts.Seed))

	instaTotal := int(float64(opts.TotalInteractions) * opts.InstagramShare)
	twitterTotal := opts.TotalInteractions - instaTotal
	instaHigh := opts.TotalHighValue / 2
	twitterHigh := opts.TotalHighValue - instaHigh

	for i := 1; i <= instaTotal; i++ {
		instagram = append(instagram, makeInteraction(rng, opts, i, models.PlatformInstagram, i <= instaHigh))
	}
	for i := 1; i <= twitterTotal; i++ {
		twitter = append(twitter, makeInteraction(rng, opts, i, models.PlatformTwitter, i <= twitterHigh))
	}
	return instagram, twitter
}

// WriteFiles generates both batches and writes them in their source
// shapes: Instagram as CSV, Twitter as JSON.
func WriteFiles(dir string, opts Options) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("[Fixtures] creating data directory: %w", err)
	}

	instagram, twitter := Generate(opts)

	instaPath := filepath.Join(dir, "instagram_sample.csv")
	if err := writeCSV(instaPath, instagram); err != nil {
		return err
	}
	slog.Info("[Fixtures] Wrote Instagram sample",
		slog.String("path", instaPath),
		slog.Int("rows", len(instagram)))

	twitterPath := filepath.Join(dir, "twitter_sample.json")
	if err := writeJSON(twitterPath, twitter); err != nil {
		return err
	}
	slog.Info("[Fixtures] Wrote Twitter sample",
		slog.String("path", twitterPath),
		slog.Int("rows", len(twitter)))

	return nil
}

func makeInteraction(rng *rand.Rand, opts Options, idx int, platform string, highValue bool) models.Interaction {
	handle := fmt.Sprintf("@%s%d", userHandles[rng.Intn(len(userHandles))], 1+rng.Intn(999))

	var text string
	var followers int
	if highValue {
		text = highValueTemplates[rng.Intn(len(highValueTemplates))]
		followers = 1500 + rng.Intn(13501)
	} else {
		text = genericComments[rng.Intn(len(genericComments))]
		followers = 10 + rng.Intn(1191)
	}

	prefix := strings.ToUpper(platform[:3])
	delta := time.Duration(rng.Intn(opts.DaysBack+1))*24*time.Hour +
		time.Duration(rng.Intn(24*3600))*time.Second

	return models.Interaction{
		InteractionID: fmt.Sprintf("%s-%04d", prefix, idx),
		Platform:      platform,
		Timestamp:     opts.Now().Add(-delta).Format(models.TimestampLayout),
		UserHandle:    handle,
		UserFollowers: followers,
		TextContent:   text,
	}
}

func writeCSV(path string, batch []models.Interaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("[Fixtures] creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"interaction_id", "platform", "timestamp", "user_handle", "user_followers", "text_content"}); err != nil {
		return fmt.Errorf("[Fixtures] writing %s: %w", path, err)
	}
	for _, in := range batch {
		row := []string{
			in.InteractionID,
			in.Platform,
			in.Timestamp,
			in.UserHandle,
			strconv.Itoa(in.UserFollowers),
			in.TextContent,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("[Fixtures] writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("[Fixtures] writing %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, batch []models.Interaction) error {
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return fmt.Errorf("[Fixtures] encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("[Fixtures] writing %s: %w", path, err)
	}
	return nil
}
