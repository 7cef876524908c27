package suggestion

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// placeholderImagePrefix marks a destination for which the model could not
// name a real image URL. Enrichment replaces it with an image search result.
const placeholderImagePrefix = "placeholder_image_for_"

// buildDestinationsPrompt asks for exactly three destination ideas matching
// the traveler's preferences, as a strict JSON array.
func buildDestinationsPrompt(preferences []string) string {
	var b strings.Builder

	b.WriteString("You are an expert travel advisor.\n")
	fmt.Fprintf(&b, "Suggest exactly three distinct cities for a tourist whose preferences are: [%s].\n",
		strings.Join(preferences, ", "))
	b.WriteString("Keep the response in a strict JSON format as the one below. Do not allow invalid JSON to be returned.\n")
	b.WriteString("For each city, provide:\n")
	b.WriteString("- country: The name of the country (String).\n")
	b.WriteString("- city: The name of the city (String).\n")
	b.WriteString("- overview: A compelling two-sentence overview of why it matches the preferences (String).\n")
	fmt.Fprintf(&b, "- imageUrl: Try to provide a direct URL to a publicly usable, high-quality, and directly embeddable image that represents the country and its highlighted aspects (e.g., from Wikimedia Commons, Pexels, Unsplash, or similar open-license sources). If you cannot find a suitable real image URL, then use the specific string '%sCOUNTRY_NAME' where COUNTRY_NAME is the actual name of the country (e.g., '%sItaly'). (String).\n",
		placeholderImagePrefix, placeholderImagePrefix)
	b.WriteString("Format the output STRICTLY as a single JSON array of objects. Do not include any text outside this JSON array.\n")
	b.WriteString("Example if real image found for Italy but not Greece:\n")
	b.WriteString("[\n")
	b.WriteString(`  {"country": "Italy", "city": "Milan", "overview": "Italy offers stunning architecture and ancient Roman ruins. Its sunny Mediterranean weather is perfect for exploring beautiful coastlines.", "imageUrl": "https://example.com/italy.jpg"},` + "\n")
	fmt.Fprintf(&b, `  {"country": "Greece", "city": "Athens", "overview": "Greece is renowned for its ancient civilizations like the Acropolis in Athens. It also boasts beautiful islands with sunny weather.", "imageUrl": "%sGreece"}%s`,
		placeholderImagePrefix, "\n")
	b.WriteString("]")

	return b.String()
}

// activityPromptParams carries the day context the model needs to produce
// schedulable suggestions.
type activityPromptParams struct {
	Destination      string
	Interests        []string
	NumberOfAdults   int
	NumberOfChildren int
	FromDate         time.Time
	ToDate           time.Time
	DayNumber        int
	TotalDays        int
	TodaysActivities []string
	AvailableHours   float64
	LastActivityName string
	LastActivityCity string
	DepartureCity    string
	MaxSuggestions   int
}

// buildActivitiesPrompt asks for up to MaxSuggestions activities for one day,
// each individually fitting the remaining hours, as a strict JSON array.
func buildActivitiesPrompt(p activityPromptParams) string {
	var b strings.Builder

	b.WriteString("You are an expert travel planner AI.\n")
	fmt.Fprintf(&b, "For a trip to %s for a group of %d adult(s) and %d child(ren) with interests in [%s], from %s to %s, on Day %d of a %d-day trip:\n",
		p.Destination, p.NumberOfAdults, p.NumberOfChildren, strings.Join(p.Interests, ", "),
		p.FromDate.Format("2006-01-02"), p.ToDate.Format("2006-01-02"), p.DayNumber, p.TotalDays)

	fmt.Fprintf(&b, "The group has %.1f hours available for activities for the rest of today.\n", p.AvailableHours)

	if p.LastActivityName != "" {
		city := p.LastActivityCity
		if city == "" {
			city = p.Destination
		}
		fmt.Fprintf(&b, "The last activity selected today was '%s' in '%s'. Please suggest subsequent activities that are geographically convenient if possible and fit the remaining time.\n",
			p.LastActivityName, city)
	} else {
		b.WriteString("This is the first set of suggestions for today, or the previous activity context is not available. Please suggest initial activities for the day.\n")
	}

	fmt.Fprintf(&b, "Consider the following activities already selected for today and try to avoid suggesting them again: [%s].\n",
		strings.Join(p.TodaysActivities, ", "))

	if domain.IsFinalDay(p.DayNumber, p.TotalDays) {
		departure := p.DepartureCity
		if departure == "" {
			departure = p.Destination
		}
		fmt.Fprintf(&b, "Since this is the last day (Day %d of %d), prioritize activities that are convenient for departure, such as those near a major airport in %s, and fit within the available hours.\n",
			p.DayNumber, p.TotalDays, departure)
	}

	fmt.Fprintf(&b, "Please suggest up to %d distinct activities suitable for %d adult(s) and %d child(ren). Each suggested activity's 'expectedDurationHours' must be less than or equal to the available %.1f hours.\n",
		p.MaxSuggestions, p.NumberOfAdults, p.NumberOfChildren, p.AvailableHours)
	b.WriteString("If multiple activities are suggested, their combined duration is not constrained, but individual activities must be plannable within the remaining time. Prioritize variety and user interests.\n")

	b.WriteString("Keep the response in a strict JSON format as the one below. Do not allow invalid JSON to be returned.\n")
	b.WriteString("For each activity, provide the following details in JSON format:\n")
	b.WriteString("- name: Name of the activity (String)\n")
	fmt.Fprintf(&b, "- city: The city where the activity is located. This might be %s or a nearby city. (String)\n", p.Destination)
	b.WriteString("- description: A brief, engaging one-sentence description of the activity. (String)\n")
	b.WriteString("- expectedDurationHours: Estimated duration of the activity in hours (Number, e.g., 2.5). This MUST be less than or equal to the available hours for the day.\n")
	b.WriteString("- estimatedCostEUR: Estimated cost of the activity in EUR (Number, e.g., 50).\n")
	b.WriteString("- address: Full address of the activity in the format - city, country, street name, street number (String)\n")
	b.WriteString("Return the output as a single JSON array of activity objects. If no activities can fit the criteria (especially time), return an empty JSON array [].\n")
	b.WriteString("Example:\n")
	b.WriteString("[\n")
	fmt.Fprintf(&b, `  {"name": "Example Museum Visit", "city": "%s", "description": "Explore fascinating exhibits.", "expectedDurationHours": 2, "estimatedCostEUR": 15, "address": "%s, Example Country, Museum Street, 123"}%s`,
		p.Destination, p.Destination, "\n")
	b.WriteString("]\n")
	b.WriteString("Do not include any explanatory text outside of the JSON array.")

	return b.String()
}
