// Package parse turns raw sports video filenames into clean event queries.
package parse

import (
	"regexp"
	"strings"
	"time"
)

// CleanResult is the outcome of normalizing one filename.
type CleanResult struct {
	// Title is the cleaned name with dates, scene tags, and league names removed.
	Title string
	// Date is the event date extracted from the filename, if any.
	Date *time.Time
	// Tag is the detected card/segment tag (e.g. "prelims"), if any.
	Tag *string
}

var shorthandExpansions = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\butd\b`), "United"},
	{regexp.MustCompile(`(?i)\bintl\b`), "International"},
}

var sceneTagPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(480p|576p|720p|1080p|1080i|2160p|4k|uhd)\b`),
	regexp.MustCompile(`(?i)\b(x ?264|x ?265|h ?264|h ?265|hevc|avc|xvid|divx|av1|vp9)\b`),
	regexp.MustCompile(`(?i)\b(web[- ]?dl|webrip|hdtv|sdtv|pdtv|blu[- ]?ray|bdrip|brrip|dvdrip|web)\b`),
	regexp.MustCompile(`(?i)\b(aac2?|ac3|dd[p+]?[257] ?[01]|dts(?:[- ]?hd)?|truehd|atmos|mp3|flac|opus)\b`),
	regexp.MustCompile(`(?i)\b(\d{2,3}fps)\b`),
	regexp.MustCompile(`(?i)\b(repack|proper|internal|real|rerip|read ?nfo)\b`),
}

// releaseGroupPattern matches the hyphen-attached group suffix on the last
// token of a scene release name. Only applied to dot-separated names, since a
// trailing "-XYZ" in a spaced or hyphenated name is usually a team code.
var releaseGroupPattern = regexp.MustCompile(`-[A-Za-z0-9]+$`)

var roundPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(round|week|matchday|gameweek|wk|rd|stage|game|day) ?\d+\b`),
}

// cardTagPattern captures the card/segment of a combat-sports broadcast. The
// longer alternatives come first so "early prelims" is not reported as "prelims".
var cardTagPattern = regexp.MustCompile(`(?i)\b(early prelims|preliminary card|prelims|main card|early card)\b`)

// knownLeaguePatterns is a fallback strip list applied after the supplied
// series name, so league prefixes never pollute the match string.
var knownLeaguePatterns = compileNamePatterns(
	"english premier league",
	"premier league",
	"champions league",
	"la liga",
	"serie a",
	"bundesliga",
	"ligue 1",
	"epl",
	"nhl",
	"nfl",
	"nba",
	"mlb",
	"mls",
	"ufc",
	"bellator",
	"pfl",
	"ncaa",
)

func compileNamePatterns(names ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(names))
	for _, n := range names {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(n)+`\b`))
	}
	return patterns
}

// Clean normalizes a raw filename into a search query. The supplied series or
// league name is stripped along with scene tags, round markers, and dates.
func Clean(raw string, seriesName string) CleanResult {
	name := trimExtension(raw)

	// dots are the scene world's word separator
	if strings.Contains(name, ".") {
		name = releaseGroupPattern.ReplaceAllString(name, "")
	}
	name = strings.ReplaceAll(name, ".", " ")
	name = strings.ReplaceAll(name, "_", " ")

	// expand shorthand before stripping since later patterns key off full words
	for _, s := range shorthandExpansions {
		name = s.pattern.ReplaceAllString(name, s.replacement)
	}

	var tag *string
	if m := cardTagPattern.FindString(name); m != "" {
		t := strings.ToLower(m)
		tag = &t
		name = cardTagPattern.ReplaceAllString(name, " ")
	}

	for _, p := range roundPatterns {
		name = p.ReplaceAllString(name, " ")
	}

	for _, p := range sceneTagPatterns {
		name = p.ReplaceAllString(name, " ")
	}

	if seriesName != "" {
		name = stripName(name, seriesName)
	}
	for _, p := range knownLeaguePatterns {
		name = p.ReplaceAllString(name, " ")
	}

	name, date := extractDate(name, timeNow())

	name = collapseWhitespace(name)
	name = strings.Trim(name, " -–_.")

	return CleanResult{
		Title: name,
		Date:  date,
		Tag:   tag,
	}
}

func trimExtension(name string) string {
	ext := videoExtensionPattern.FindString(name)
	if ext != "" {
		return strings.TrimSuffix(name, ext)
	}
	return name
}

var videoExtensionPattern = regexp.MustCompile(`(?i)\.(mp4|avi|mkv|m4v|iso|ts|m2ts|mov|wmv|mpg|mpeg)$`)

func stripName(name, toStrip string) string {
	p, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(toStrip) + `\b`)
	if err != nil {
		return name
	}
	return p.ReplaceAllString(name, " ")
}

var whitespacePattern = regexp.MustCompile(`\s+`)

func collapseWhitespace(name string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(name, " "))
}
