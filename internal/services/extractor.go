package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/anaskhan28/calorie-guy/internal/models"
)

// The model is asked to answer in the fixed "Label: value" format, but its
// output is untrusted; each field is matched independently and defaults to
// zero when absent.
var (
	caloriesPattern = regexp.MustCompile(`(?i)Calories:\s*(\d+(?:\.\d+)?)`)
	proteinPattern  = regexp.MustCompile(`(?i)Protein:\s*(\d+(?:\.\d+)?)`)
	fatPattern      = regexp.MustCompile(`(?i)Fat:\s*(\d+(?:\.\d+)?)`)
	carbsPattern    = regexp.MustCompile(`(?i)Carbs:\s*(\d+(?:\.\d+)?)`)
	fiberPattern    = regexp.MustCompile(`(?i)Fiber:\s*(\d+(?:\.\d+)?)`)
)

// ExtractNutrition parses the model's reply into a nutrient record. The
// second return value is false when no field matched at all, so callers can
// log the extraction failure; the zero record is still usable.
func ExtractNutrition(reply string) (models.NutrientRecord, bool) {
	record := models.NutrientRecord{
		Calories: matchAmount(caloriesPattern, reply),
		Protein:  matchAmount(proteinPattern, reply),
		Fat:      matchAmount(fatPattern, reply),
		Carbs:    matchAmount(carbsPattern, reply),
		Fiber:    matchAmount(fiberPattern, reply),
	}
	return record, !record.IsZero()
}

func matchAmount(pattern *regexp.Regexp, reply string) float64 {
	match := pattern.FindStringSubmatch(reply)
	if match == nil {
		return 0
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	return value
}

// ExtractDescription pulls a short food description out of the reply: the
// sentence conventionally preceding the nutrient line.
func ExtractDescription(reply string) string {
	var sentences []string
	for _, fragment := range strings.Split(reply, ".") {
		fragment = strings.TrimSpace(fragment)
		if fragment != "" {
			sentences = append(sentences, fragment)
		}
	}

	switch {
	case len(sentences) >= 2:
		return sentences[len(sentences)-2] + "."
	case len(sentences) == 1:
		return sentences[0] + "."
	default:
		return "No description available."
	}
}
