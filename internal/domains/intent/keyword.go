package intent

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"nautica/config"
	"nautica/shared/constant"
)

var (
	uuidPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
	datePattern = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
)

var confirmVerbs = []string{"confirmar", "confirmo", "confirma", "confirm"}

var bookingNouns = []string{"reserva", "reservar", "agendamento", "booking"}

var paymentWords = []string{"pagar", "pagamento", "pague", "pay", "payment", "checkout"}

// DefaultCategoryTable maps Brazilian Portuguese synonyms to boat
// categories. When a message names several categories the extractor keeps
// the synonym that appears earliest in the message.
func DefaultCategoryTable() map[string]string {
	return map[string]string{
		"iate":             "yacht",
		"iates":            "yacht",
		"veleiro":          "sailboat",
		"veleiros":         "sailboat",
		"lancha":           "speedboat",
		"lanchas":          "speedboat",
		"jet ski":          "jet_ski",
		"jetski":           "jet_ski",
		"jet skis":         "jet_ski",
		"moto aquatica":    "jet_ski",
		"moto aquática":    "jet_ski",
		"catamarã":         "catamaran",
		"catamara":         "catamaran",
		"catamarãs":        "catamaran",
		"pontão":           "pontoon",
		"pontao":           "pontoon",
		"pesca":            "fishing_boat",
		"pesqueiro":        "fishing_boat",
		"barco de pesca":   "fishing_boat",
		"barco de passeio": "leisure_boat",
		"passeio":          "leisure_boat",
	}
}

type keywordExtractor struct {
	categories map[string]string
}

// NewKeywordExtractor builds the heuristic extractor. A JSON file mapping
// synonym → category can replace the built-in table through configuration.
func NewKeywordExtractor(cfg *config.Config) Extractor {
	categories := DefaultCategoryTable()

	if path := cfg.Marketplace.IntentTablePath; path != constant.Empty {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Failed to read intent category table, using defaults")
		} else {
			override := map[string]string{}
			if err := json.Unmarshal(raw, &override); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("Failed to parse intent category table, using defaults")
			} else {
				categories = override
			}
		}
	}

	return &keywordExtractor{categories: categories}
}

func (e *keywordExtractor) Extract(text string) Intent {
	var res Intent

	lower := strings.ToLower(text)

	if match := uuidPattern.FindString(text); match != constant.Empty {
		if parsed, err := uuid.Parse(match); err == nil {
			res.EntityID = parsed.String()
		}
	}

	// Only a literal date that survives a real calendar parse counts;
	// "2025-13-45" looks like a date but is not one.
	if match := datePattern.FindString(lower); match != constant.Empty {
		if _, err := time.Parse(constant.CalendarDateFormat, match); err == nil {
			res.Date = match
		}
	}

	res.Confirm = containsAny(lower, confirmVerbs) && containsAny(lower, bookingNouns)
	res.Payment = containsAny(lower, paymentWords)

	// Map iteration order is random, so the winner is the synonym that
	// appears earliest in the message; longer synonyms break ties so
	// "iates" beats "iate" at the same position.
	bestIndex, bestLen := -1, 0

	for synonym, category := range e.categories {
		index := strings.Index(lower, synonym)
		if index < 0 {
			continue
		}

		if bestIndex < 0 || index < bestIndex || (index == bestIndex && len(synonym) > bestLen) {
			bestIndex, bestLen = index, len(synonym)
			res.Category = category
		}
	}

	return res
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}

	return false
}
