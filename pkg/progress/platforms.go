package progress

// Platform codes are fixed; every brand gets one progress row per code.
// Order here is the display order used by dashboards and reports.
var platformOrder = []string{
	"website_blogs",
	"website_downloadable",
	"google_business",
	"linkedin",
	"youtube",
	"tiktok",
	"instagram",
	"pinterest",
	"twitter",
	"facebook",
	"medium",
	"tumblr",
	"threads",
	"quora",
	"reddit",
	"bluesky",
	"email_marketing",
	"twitch",
	"bereal",
	"vimeo",
	"dailymotion",
	"rumble",
	"linktree",
}

var platformNames = map[string]string{
	"website_blogs":        "Website Blogs",
	"website_downloadable": "Website Downloadable",
	"google_business":      "Google Business",
	"linkedin":             "LinkedIn",
	"youtube":              "YouTube",
	"tiktok":               "TikTok",
	"instagram":            "Instagram",
	"pinterest":            "Pinterest",
	"twitter":              "Twitter/X",
	"facebook":             "Facebook",
	"medium":               "Medium",
	"tumblr":               "Tumblr",
	"threads":              "Threads",
	"quora":                "Quora",
	"reddit":               "Reddit",
	"bluesky":              "Blue Sky",
	"email_marketing":      "Email Marketing",
	"twitch":               "Twitch",
	"bereal":               "BeReal",
	"vimeo":                "Vimeo",
	"dailymotion":          "Daily Motion",
	"rumble":               "Rumble",
	"linktree":             "Linktree",
}

// Codes returns all known platform codes in display order. The returned
// slice is a copy; callers may reorder it freely.
func Codes() []string {
	out := make([]string, len(platformOrder))
	copy(out, platformOrder)
	return out
}

// KnownPlatform reports whether code is one of the fixed platform codes.
func KnownPlatform(code string) bool {
	_, ok := platformNames[code]
	return ok
}

// DisplayName returns the human label for a platform code, or the code
// itself when it is unknown (defensive for rows written by older imports).
func DisplayName(code string) string {
	if name, ok := platformNames[code]; ok {
		return name
	}
	return code
}

// CodeForName resolves a human platform label back to its code. Matching is
// exact on the display name; importers supply their own mapping for
// spreadsheet-specific spellings.
func CodeForName(name string) (string, bool) {
	for code, display := range platformNames {
		if display == name {
			return code, true
		}
	}
	return "", false
}
