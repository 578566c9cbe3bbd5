package main

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"brandops/models"
	"brandops/pkg/progress"

	"github.com/gin-gonic/gin"
)

var numberRE = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

// dashboardHandler renders the authenticated client dashboard. Staff without
// a brand of their own get the all-zero aggregate instead of an error.
func dashboardHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var profile models.BrandProfile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{
			"profile":           nil,
			"platform_progress": emptyProgressBlock(),
		})
		return
	}
	c.JSON(http.StatusOK, buildDashboardContext(&profile, false))
}

// publicDashboardHandler resolves solely by token. Unknown token and
// disabled sharing are indistinguishable to the caller: both are 404.
func publicDashboardHandler(c *gin.Context) {
	token := c.Param("token")
	var profile models.BrandProfile
	if err := db.Where("public_token = ? AND is_public_enabled = ?", token, true).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	ctx := buildDashboardContext(&profile, true)
	c.JSON(http.StatusOK, ctx)
}

// buildDashboardContext assembles the full render context of the client
// dashboard: profile sections plus the progress aggregate. Public views get
// the same content minus edit affordances, marked is_public_view.
func buildDashboardContext(profile *models.BrandProfile, public bool) gin.H {
	ctx := gin.H{
		"brand_name":        profile.BrandName,
		"metrics":           calculateMetrics(profile),
		"platforms":         platformData(profile),
		"social_platforms":  socialPlatforms(profile),
		"kpis":              kpiData(profile),
		"swot":              swotAnalysis(profile),
		"business_intel":    businessIntelligence(profile),
		"platform_progress": platformProgressBlock(profile),
		"is_public_view":    public,
	}
	if public {
		return ctx
	}
	ctx["profile"] = profile
	ctx["can_edit"] = true
	return ctx
}

// calculateMetrics derives the headline numbers shown at the top of the
// dashboard from the profile's presence and KPI text.
func calculateMetrics(p *models.BrandProfile) gin.H {
	social := socialPlatforms(p)
	active := 0
	for _, s := range social {
		if s["url"] != "" {
			active++
		}
	}
	posts := extractNumber(p.SocialMediaPostsPerWeekKPIs)
	videos := extractNumber(p.VideosPerWeekKPIs)
	shorts := extractNumber(p.ShortsPerWeekKPIs)
	return gin.H{
		"total_platforms":        len(social),
		"active_platforms":       active,
		"total_content_per_week": posts + videos + shorts,
		"posts_per_week":         posts,
		"videos_per_week":        videos,
		"shorts_per_week":        shorts,
		"website_traffic":        orNA(p.WebsiteTrafficKPIs),
		"instagram_reach":        orNA(p.InstagramReachKPIs),
		"review_rating":          orNA(p.ReviewRatingKPIs),
	}
}

func socialPlatforms(p *models.BrandProfile) []map[string]string {
	entries := []struct {
		name, url, icon string
	}{
		{"Instagram", p.Instagram, "instagram"},
		{"Facebook", p.Facebook, "facebook"},
		{"Twitter/X", p.Twitter, "twitter"},
		{"LinkedIn", p.LinkedIn, "linkedin"},
		{"TikTok", p.TikTok, "tiktok"},
		{"YouTube", p.YouTube, "youtube"},
		{"Pinterest", p.Pinterest, "pinterest"},
		{"Snapchat", p.Snapchat, "snapchat"},
		{"Telegram", p.Telegram, "telegram"},
		{"Medium", p.Medium, "medium"},
		{"Quora", p.Quora, "quora"},
		{"Reddit", p.Reddit, "reddit"},
		{"Tumblr", p.Tumblr, "tumblr"},
		{"Threads", p.Threads, "threads"},
		{"BlueSky", p.Bluesky, "bluesky"},
		{"WhatsApp Business", p.WhatsappBusiness, "whatsapp"},
		{"Website Blogs", p.WebsiteBlogs, "globe"},
	}
	out := make([]map[string]string, 0, len(entries))
	for _, e := range entries {
		status := "inactive"
		if e.url != "" {
			status = "active"
		}
		out = append(out, map[string]string{
			"name":   e.name,
			"url":    e.url,
			"icon":   e.icon,
			"status": status,
		})
	}
	return out
}

func platformData(p *models.BrandProfile) gin.H {
	return gin.H{
		"website":    p.BrandWebsite,
		"blog":       p.WebsiteBlogs,
		"guidelines": p.BrandVisualVerbalDNAGuidelines,
	}
}

func kpiData(p *models.BrandProfile) gin.H {
	return gin.H{
		"website_traffic": p.WebsiteTrafficKPIs,
		"instagram_reach": p.InstagramReachKPIs,
		"google_rank":     p.GoogleSerpRankKPIs,
		"review_rating":   p.ReviewRatingKPIs,
		"posts_per_week":  p.SocialMediaPostsPerWeekKPIs,
		"videos_per_week": p.VideosPerWeekKPIs,
		"shorts_per_week": p.ShortsPerWeekKPIs,
	}
}

func swotAnalysis(p *models.BrandProfile) gin.H {
	return gin.H{
		"strengths":     parseListField(p.Strengths),
		"weaknesses":    parseListField(p.Weaknesses),
		"opportunities": parseListField(p.Opportunities),
		"threats":       parseListField(p.Threats),
	}
}

func businessIntelligence(p *models.BrandProfile) gin.H {
	return gin.H{
		"partners":    parseListField(p.Top10Partners),
		"competitors": parseListField(p.Top10Competitors),
		"notes":       p.AdditionalNotes,
	}
}

// platformProgressBlock loads the brand's ledger rows and aggregates them
// for display. Missing platforms appear as zero-valued placeholders without
// writing anything; hidden rows are excluded from client-facing output. A
// failed query degrades to the empty block so the rest of the page renders.
func platformProgressBlock(p *models.BrandProfile) gin.H {
	var rows []models.PlatformProgress
	if err := db.Where("brand_id = ?", p.ID).Order("platform").Find(&rows).Error; err != nil {
		logger.Warnf("progress query failed for brand %d: %v", p.ID, err)
		return emptyProgressBlock()
	}
	filled := progress.FillMissing(p.ID, rows)
	visible := make([]models.PlatformProgress, 0, len(filled))
	for _, r := range filled {
		if r.IsVisible {
			visible = append(visible, r)
		}
	}
	summary := progress.Summarize(visible)
	platforms := make([]gin.H, 0, len(visible))
	names := make([]string, 0, len(visible))
	for _, r := range visible {
		completion, draft := progress.RowPercentages(r.Committed, r.Drafted, r.Published)
		names = append(names, r.Platform)
		platforms = append(platforms, gin.H{
			"id":                    r.ID,
			"platform":              r.Platform,
			"platform_display":      progress.DisplayName(r.Platform),
			"committed":             r.Committed,
			"drafted":               r.Drafted,
			"published":             r.Published,
			"notes":                 r.Notes,
			"is_active":             r.IsActive,
			"completion_percentage": completion,
			"draft_percentage":      draft,
		})
	}
	return gin.H{
		"platforms":         platforms,
		"platform_names":    names,
		"total_committed":   summary.TotalCommitted,
		"total_drafted":     summary.TotalDrafted,
		"total_published":   summary.TotalPublished,
		"completion_rate":   summary.CompletionRate,
		"active_count":      summary.ActiveCount,
		"inactive_count":    summary.InactiveCount,
		"in_progress_count": summary.InProgressCount,
	}
}

func emptyProgressBlock() gin.H {
	return gin.H{
		"platforms":         []gin.H{},
		"platform_names":    []string{},
		"total_committed":   0,
		"total_drafted":     0,
		"total_published":   0,
		"completion_rate":   0.0,
		"active_count":      0,
		"inactive_count":    0,
		"in_progress_count": 0,
	}
}

// extractNumber pulls the first numeric value out of free KPI text
// ("5 posts" -> 5).
func extractNumber(text string) float64 {
	m := numberRE.FindString(text)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseListField splits a newline-delimited text field into trimmed items.
func parseListField(text string) []string {
	items := []string{}
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			items = append(items, s)
		}
	}
	return items
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
