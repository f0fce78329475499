package predictor

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"laafitech/internal/domain"
)

// FallbackNarrative is used when the community is unknown.
const FallbackNarrative = "Help us support a community in need of menstrual health resources."

// Tone selects the framing of a generated narrative.
type Tone int

const (
	ToneHopeful Tone = iota
	ToneInspirational
	ToneUrgent
)

// ParseTone maps an exact, lowercase tone keyword to a Tone. Anything else, including
// the empty string, is hopeful.
func ParseTone(s string) Tone {
	switch s {
	case "inspirational":
		return ToneInspirational
	case "urgent":
		return ToneUrgent
	default:
		return ToneHopeful
	}
}

func (t Tone) String() string {
	switch t {
	case ToneInspirational:
		return "inspirational"
	case ToneUrgent:
		return "urgent"
	default:
		return "hopeful"
	}
}

// SuggestedMedia is the media checklist offered with every narrative.
var SuggestedMedia = []string{
	"community_portrait_image",
	"girls_in_school_image",
	"health_education_video",
	"success_story_testimonial",
	"infographic_health_facts",
}

var (
	positiveWords = []string{"hope", "help", "support", "empower", "thrive", "dream", "change", "freedom", "health", "future", "action"}
	negativeWords = []string{"crisis", "poverty", "barrier", "challenge", "urgent", "need"}
)

// Story is a generated campaign narrative.
type Story struct {
	Narrative      string   `json:"narrative"`
	SuggestedMedia []string `json:"suggested_media"`
	SentimentScore float64  `json:"sentiment_score"`
}

// Generate renders a campaign narrative for community in the requested tone
// and scores its sentiment.
func Generate(community *domain.Community, campaignTitle string, goalAmount float64, tone string) Story {
	narrative := FallbackNarrative
	if community != nil {
		narrative = render(ParseTone(tone), *community, campaignTitle, goalAmount)
	}
	media := make([]string, len(SuggestedMedia))
	copy(media, SuggestedMedia)
	return Story{
		Narrative:      narrative,
		SuggestedMedia: media,
		SentimentScore: Sentiment(narrative),
	}
}

func render(t Tone, c domain.Community, title string, amount float64) string {
	switch t {
	case ToneInspirational:
		return inspirational(c, title)
	case ToneUrgent:
		return urgent(c, title, amount)
	default:
		return hopeful(c, title)
	}
}

func inspirational(c domain.Community, title string) string {
	girls := "thousands"
	if c.GirlsCount != nil && *c.GirlsCount > 0 {
		girls = strconv.Itoa(*c.GirlsCount)
	}
	return fmt.Sprintf(`**%s**

In %s, %s, %s,
hundreds of girls are missing school and facing health challenges
due to lack of access to menstrual health resources.

Your support can change this. By contributing to this campaign,
you're not just providing pads, you're investing in education,
health, and the future of girls who deserve to thrive.

Together, we can break the cycle of period poverty and empower
%s girls to stay in school, stay healthy, and reach their full potential.

Join us in making a difference. Every contribution matters.`,
		title, c.Name, c.Region, c.Country, girls)
}

func urgent(c domain.Community, title string, amount float64) string {
	return fmt.Sprintf(`**URGENT: %s**

RIGHT NOW in %s, girls are out of school
because they don't have access to menstrual health products.

The crisis is real. The need is immediate.
We need $%s to provide emergency support.

Without action today:
• Girls will continue missing critical school days
• Health complications will worsen
• The education gap will widen

This is our moment to act. Your urgent support is needed NOW.`,
		title, c.Name, FormatAmount(amount))
}

func hopeful(c domain.Community, title string) string {
	return fmt.Sprintf(`**%s - A Chance to Hope**

Meet the girls of %s, %s.
They dream of staying in school, being healthy, and building better futures.

But today, they face a silent barrier: period poverty.

With your help, we can transform hope into action.
Your support will bring:
✓ Access to quality menstrual health products
✓ Health education and support
✓ The freedom to stay in school and thrive

Together, we're not just changing one community,
we're building a movement for menstrual health equity.

Will you join us?`,
		title, c.Name, c.Region)
}

// FormatAmount renders amount with thousands separators and no decimals,
// rounding half to even.
func FormatAmount(amount float64) string {
	return message.NewPrinter(language.English).Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
}

// Sentiment scores text on a 0.3-0.95 scale by which lexicon words appear in
// it at least once. Text with no lexicon words is neutral (0.5).
func Sentiment(text string) float64 {
	// Casers carry state, so one is built per call.
	folded := cases.Lower(language.Und).String(text)
	var pos, neg int
	for _, w := range positiveWords {
		if strings.Contains(folded, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(folded, w) {
			neg++
		}
	}
	if pos+neg == 0 {
		return neutralScore
	}
	return clamp(float64(pos)/float64(pos+neg), 0.3, 0.95)
}
