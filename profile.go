package main

import (
	"net/http"

	"brandops/models"
	"brandops/pkg/progress"

	"github.com/gin-gonic/gin"
)

// brandProfileRequest is the onboarding/edit payload. Only the brand name
// and primary contact are mandatory; everything else is filled in over time.
type brandProfileRequest struct {
	BrandName string `json:"brand_name" binding:"required"`

	PrimaryContactFirstName string `json:"primary_contact_first_name" binding:"required"`
	PrimaryContactLastName  string `json:"primary_contact_last_name" binding:"required"`
	PrimaryOfficialEmail    string `json:"primary_official_email" binding:"required,email"`
	PrimaryPhoneNumber      string `json:"primary_phone_number" binding:"required"`

	SecondaryContactFirstName string `json:"secondary_contact_first_name"`
	SecondaryContactLastName  string `json:"secondary_contact_last_name"`
	SecondaryOfficialEmail    string `json:"secondary_official_email" binding:"omitempty,email"`
	SecondaryPhoneNumber      string `json:"secondary_phone_number"`

	BrandVision                    string `json:"brand_vision"`
	BrandMission                   string `json:"brand_mission"`
	BrandCoreValues                string `json:"brand_core_values"`
	BrandVisualVerbalDNAGuidelines string `json:"brand_visual_verbal_dna_guidelines" binding:"omitempty,url"`
	BrandWebsite                   string `json:"brand_website" binding:"omitempty,url"`
	BrandPresence                  string `json:"brand_presence"`

	WebsiteTrafficKPIs          string `json:"website_traffic_kpis"`
	InstagramReachKPIs          string `json:"instagram_reach_kpis"`
	GoogleSerpRankKPIs          string `json:"google_serp_rank_kpis"`
	ReviewRatingKPIs            string `json:"review_rating_kpis"`
	SocialMediaPostsPerWeekKPIs string `json:"social_media_posts_per_week_kpis"`
	VideosPerWeekKPIs           string `json:"videos_per_week_kpis"`
	ShortsPerWeekKPIs           string `json:"shorts_per_week_kpis"`

	Strengths     string `json:"strengths"`
	Weaknesses    string `json:"weaknesses"`
	Opportunities string `json:"opportunities"`
	Threats       string `json:"threats"`

	Instagram        string `json:"instagram" binding:"omitempty,url"`
	Facebook         string `json:"facebook" binding:"omitempty,url"`
	Twitter          string `json:"twitter" binding:"omitempty,url"`
	LinkedIn         string `json:"linkedin" binding:"omitempty,url"`
	TikTok           string `json:"tiktok" binding:"omitempty,url"`
	YouTube          string `json:"youtube" binding:"omitempty,url"`
	Pinterest        string `json:"pinterest" binding:"omitempty,url"`
	Snapchat         string `json:"snapchat" binding:"omitempty,url"`
	Telegram         string `json:"telegram" binding:"omitempty,url"`
	Medium           string `json:"medium" binding:"omitempty,url"`
	Quora            string `json:"quora" binding:"omitempty,url"`
	Reddit           string `json:"reddit" binding:"omitempty,url"`
	Tumblr           string `json:"tumblr" binding:"omitempty,url"`
	Threads          string `json:"threads" binding:"omitempty,url"`
	Bluesky          string `json:"bluesky" binding:"omitempty,url"`
	WhatsappBusiness string `json:"whatsapp_business" binding:"omitempty,url"`
	WebsiteBlogs     string `json:"website_blogs" binding:"omitempty,url"`

	Top10Partners    string `json:"top_10_partners"`
	Top10Competitors string `json:"top_10_competitors"`
	AdditionalNotes  string `json:"additional_notes"`
}

// applyTo overwrites the editable profile fields. Ownership, sharing state
// and audit fields are never touched from the client payload.
func (r *brandProfileRequest) applyTo(p *models.BrandProfile) {
	p.BrandName = r.BrandName
	p.PrimaryContactFirstName = r.PrimaryContactFirstName
	p.PrimaryContactLastName = r.PrimaryContactLastName
	p.PrimaryOfficialEmail = r.PrimaryOfficialEmail
	p.PrimaryPhoneNumber = r.PrimaryPhoneNumber
	p.SecondaryContactFirstName = r.SecondaryContactFirstName
	p.SecondaryContactLastName = r.SecondaryContactLastName
	p.SecondaryOfficialEmail = r.SecondaryOfficialEmail
	p.SecondaryPhoneNumber = r.SecondaryPhoneNumber
	p.BrandVision = r.BrandVision
	p.BrandMission = r.BrandMission
	p.BrandCoreValues = r.BrandCoreValues
	p.BrandVisualVerbalDNAGuidelines = r.BrandVisualVerbalDNAGuidelines
	p.BrandWebsite = r.BrandWebsite
	p.BrandPresence = r.BrandPresence
	p.WebsiteTrafficKPIs = r.WebsiteTrafficKPIs
	p.InstagramReachKPIs = r.InstagramReachKPIs
	p.GoogleSerpRankKPIs = r.GoogleSerpRankKPIs
	p.ReviewRatingKPIs = r.ReviewRatingKPIs
	p.SocialMediaPostsPerWeekKPIs = r.SocialMediaPostsPerWeekKPIs
	p.VideosPerWeekKPIs = r.VideosPerWeekKPIs
	p.ShortsPerWeekKPIs = r.ShortsPerWeekKPIs
	p.Strengths = r.Strengths
	p.Weaknesses = r.Weaknesses
	p.Opportunities = r.Opportunities
	p.Threats = r.Threats
	p.Instagram = r.Instagram
	p.Facebook = r.Facebook
	p.Twitter = r.Twitter
	p.LinkedIn = r.LinkedIn
	p.TikTok = r.TikTok
	p.YouTube = r.YouTube
	p.Pinterest = r.Pinterest
	p.Snapchat = r.Snapchat
	p.Telegram = r.Telegram
	p.Medium = r.Medium
	p.Quora = r.Quora
	p.Reddit = r.Reddit
	p.Tumblr = r.Tumblr
	p.Threads = r.Threads
	p.Bluesky = r.Bluesky
	p.WhatsappBusiness = r.WhatsappBusiness
	p.WebsiteBlogs = r.WebsiteBlogs
	p.Top10Partners = r.Top10Partners
	p.Top10Competitors = r.Top10Competitors
	p.AdditionalNotes = r.AdditionalNotes
}

// createProfileHandler completes onboarding: one brand profile per user,
// then the full set of zero-valued platform rows.
func createProfileHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var existing models.BrandProfile
	if err := db.Where("user_id = ?", user.ID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "profile already exists"})
		return
	}
	var req brandProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile := models.BrandProfile{UserID: user.ID}
	req.applyTo(&profile)
	if err := db.Create(&profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "profile already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create profile"})
		return
	}
	created, err := progress.EnsureRows(db, profile.ID)
	if err != nil {
		// profile exists; rows can be backfilled later, so report and move on
		logger.Warnf("platform backfill after onboarding failed for brand %d: %v", profile.ID, err)
	}
	c.JSON(http.StatusOK, gin.H{"id": profile.ID, "platforms_initialized": created})
}

func getProfileHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var p models.BrandProfile
	if err := db.Where("user_id = ?", user.ID).First(&p).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func updateProfileHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var p models.BrandProfile
	if err := db.Where("user_id = ?", user.ID).First(&p).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	var req brandProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.applyTo(&p)
	if err := db.Save(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID, "message": "profile updated"})
}
