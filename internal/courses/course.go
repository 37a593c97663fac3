package courses

import "strings"

// Info is the parsed form of a curated course string.
type Info struct {
	Title    string
	Platform string
	Duration string
	URL      string
}

// platformDurations maps platform keywords to typical completion time.
// Checked in order; first keyword contained in the platform wins.
var platformDurations = []struct{ keyword, duration string }{
	{"coursera", "4-6 weeks"},
	{"edx", "4-8 weeks"},
	{"udemy", "10-15 hours"},
	{"youtube", "2-5 hours"},
	{"freecodecamp", "5-10 hours"},
	{"w3schools", "1-3 hours"},
	{"khan academy", "2-4 weeks"},
	{"official documentation", "1-2 hours"},
	{"datacamp", "2-4 hours"},
	{"official", "1-2 hours"},
	{"microsoft learn", "2-4 hours"},
	{"google", "3-6 hours"},
	{"free book", "2-3 weeks"},
	{"tutorial", "1-3 hours"},
}

// courseTypeDurations override the platform default when the course
// string itself signals its format.
var courseTypeDurations = []struct{ keyword, duration string }{
	{"certification", "6-8 weeks"},
	{"certificate", "6-8 weeks"},
	{"bootcamp", "12-24 weeks"},
	{"crash course", "1-2 days"},
	{"full course", "8-12 hours"},
	{"tutorial", "1-3 hours"},
}

// Parse splits a curated course string ("Title - Platform (extra)")
// into its display fields and attaches a URL from the rule tables.
func Parse(course string) Info {
	if course == "" || course == "N/A" {
		return Info{Title: "N/A", Platform: "N/A", Duration: "N/A"}
	}

	title := course
	platform := "Online"

	if idx := strings.Index(course, " - "); idx >= 0 {
		title = strings.TrimSpace(course[:idx])
		platform = strings.TrimSpace(course[idx+3:])
		if p := strings.Index(platform, " ("); p >= 0 {
			platform = strings.TrimSpace(platform[:p])
		}
	}

	duration := "2-4 hours"
	platformLower := strings.ToLower(platform)
	for _, pd := range platformDurations {
		if strings.Contains(platformLower, pd.keyword) {
			duration = pd.duration
			break
		}
	}

	courseLower := strings.ToLower(course)
	for _, td := range courseTypeDurations {
		if strings.Contains(courseLower, td.keyword) {
			duration = td.duration
			break
		}
	}

	return Info{
		Title:    title,
		Platform: platform,
		Duration: duration,
		URL:      URLFor(title, platform),
	}
}

// Compact strips the parenthetical suffix from a course string, keeping
// "Title - Platform". Used when embedding course lists in prompts.
func Compact(course string) string {
	if idx := strings.Index(course, " ("); idx >= 0 {
		return strings.TrimSpace(course[:idx])
	}
	return course
}
