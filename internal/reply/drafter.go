package reply

import (
	"fmt"
	"strings"

	"github.com/creativeintel/artconnect/config"
	"github.com/creativeintel/artconnect/internal/models"
)

// Drafter selects a brand-voice reply template for an interaction.
// Deterministic and stateless: the same interaction always yields the
// same draft.
type Drafter struct {
	commissionKeywords []string
	galleryKeywords    []string
}

func NewDrafter(cfg config.Reply) *Drafter {
	return &Drafter{
		commissionKeywords: cfg.CommissionKeywords,
		galleryKeywords:    cfg.GalleryKeywords,
	}
}

// Draft picks the first matching template: commission intent, then
// gallery/representation intent, then generic appreciation.
func (d *Drafter) Draft(in models.Interaction) string {
	user := in.UserHandle
	if user == "" {
		user = "@collector"
	}
	text := strings.ToLower(in.TextContent)

	if containsAny(text, d.commissionKeywords) {
		return fmt.Sprintf(
			"Thank you so much for your interest, %s! "+
				"I'd be happy to talk more about a commission or print options. "+
				"Could you please send me a message or email with a bit more detail about what you have in mind?",
			user)
	}

	if containsAny(text, d.galleryKeywords) {
		return fmt.Sprintf(
			"Hi %s, I really appreciate you reaching out. "+
				"I'd love to learn more about your gallery/collection and see if my work could be a good fit. "+
				"Feel free to contact me so we can talk more about it.",
			user)
	}

	return fmt.Sprintf(
		"Thank you so much, %s! "+
			"I really appreciate your kind words and support. "+
			"This piece was inspired by my love for color and texture, "+
			"so it means a lot that it resonated with you.",
		user)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
