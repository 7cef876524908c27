package suggestion

import (
	"encoding/json"
	"strings"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// Wire shapes the model is instructed to return.

type destinationDTO struct {
	Country  string `json:"country"`
	City     string `json:"city"`
	Overview string `json:"overview"`
	ImageURL string `json:"imageUrl"`
}

type activityDTO struct {
	Name                  string  `json:"name"`
	City                  string  `json:"city"`
	Description           string  `json:"description"`
	ExpectedDurationHours float64 `json:"expectedDurationHours"`
	EstimatedCostEUR      float64 `json:"estimatedCostEUR"`
	Address               string  `json:"address"`
}

type modelErrorDTO struct {
	Error string `json:"error"`
}

// decodeArray parses the model's raw reply into dst. The reply is expected to
// be a JSON array, possibly wrapped in markdown fences or surrounding prose.
// A reply shaped like {"error": "..."} becomes an AiServiceError carrying
// that message; anything else undecodable becomes a generic AiServiceError.
// The raw text never leaks into the returned error.
func decodeArray(raw string, dst any) error {
	cleaned := stripFences(raw)

	if arr := extractArray(cleaned); arr != "" {
		if err := json.Unmarshal([]byte(arr), dst); err == nil {
			return nil
		}
	}

	var modelErr modelErrorDTO
	if err := json.Unmarshal([]byte(cleaned), &modelErr); err == nil && modelErr.Error != "" {
		return domain.NewAiServiceError(modelErr.Error)
	}

	return domain.NewAiServiceError("invalid response format")
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// drop the language tag line ("json", "JSON", or empty)
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// extractArray returns the outermost JSON array of the text, or "" when no
// array brackets are present.
func extractArray(s string) string {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end < start {
		return ""
	}
	return s[start : end+1]
}
