package matcher

import "strings"

// maxDescriptionLength bounds event descriptions for display surfaces.
const maxDescriptionLength = 500

// Description prepares an event description for display. Preliminary and
// early-card files get no description at all, since the remote text describes
// the main card and would mislabel the file. Long descriptions are cut at a
// sentence boundary and marked with an ellipsis.
func Description(description string, tag *string) string {
	if tag != nil && (strings.Contains(*tag, "prelim") || strings.HasPrefix(*tag, "early")) {
		return ""
	}

	if len(description) <= maxDescriptionLength {
		return description
	}

	cut := description[:maxDescriptionLength]
	if i := strings.LastIndex(cut, "."); i > 0 {
		cut = cut[:i+1]
	}
	return cut + "..."
}

// DisplayTitle appends the card tag to the event title so "UFC 315" prelims
// and main card files stay distinguishable.
func DisplayTitle(title string, tag *string) string {
	if tag == nil || *tag == "" {
		return title
	}
	return title + " (" + capitalizeWords(*tag) + ")"
}

func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
