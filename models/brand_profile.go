package models

import "time"

// BrandProfile is the onboarding record for one client brand (one-to-one
// with User). Strategy, KPI and SWOT fields are free text entered by the
// client; list-like fields are newline-delimited and parsed at render time.
type BrandProfile struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    uint `gorm:"uniqueIndex;not null"` // one-to-one relation
	User      User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	BrandName string `gorm:"size:200;not null"`

	// Primary contact (required at onboarding)
	PrimaryContactFirstName string `gorm:"size:100;not null"`
	PrimaryContactLastName  string `gorm:"size:100;not null"`
	PrimaryOfficialEmail    string `gorm:"size:255;not null"`
	PrimaryPhoneNumber      string `gorm:"size:20;not null"`

	// Secondary contact (optional)
	SecondaryContactFirstName string `gorm:"size:100"`
	SecondaryContactLastName  string `gorm:"size:100"`
	SecondaryOfficialEmail    string `gorm:"size:255"`
	SecondaryPhoneNumber      string `gorm:"size:20"`

	// Brand strategy
	BrandVision                    string `gorm:"type:text"`
	BrandMission                   string `gorm:"type:text"`
	BrandCoreValues                string `gorm:"type:text"`
	BrandVisualVerbalDNAGuidelines string `gorm:"size:512"`
	BrandWebsite                   string `gorm:"size:512"`
	BrandPresence                  string `gorm:"type:text"`

	// Current KPIs (human-entered text, e.g. "1000 visitors/month")
	WebsiteTrafficKPIs          string `gorm:"type:text"`
	InstagramReachKPIs          string `gorm:"type:text"`
	GoogleSerpRankKPIs          string `gorm:"type:text"`
	ReviewRatingKPIs            string `gorm:"type:text"`
	SocialMediaPostsPerWeekKPIs string `gorm:"type:text"`
	VideosPerWeekKPIs           string `gorm:"type:text"`
	ShortsPerWeekKPIs           string `gorm:"type:text"`

	// SWOT analysis (one item per line)
	Strengths     string `gorm:"type:text"`
	Weaknesses    string `gorm:"type:text"`
	Opportunities string `gorm:"type:text"`
	Threats       string `gorm:"type:text"`

	// Social media profile URLs
	Instagram        string `gorm:"size:512"`
	Facebook         string `gorm:"size:512"`
	Twitter          string `gorm:"size:512"`
	LinkedIn         string `gorm:"size:512"`
	TikTok           string `gorm:"size:512"`
	YouTube          string `gorm:"size:512"`
	Pinterest        string `gorm:"size:512"`
	Snapchat         string `gorm:"size:512"`
	Telegram         string `gorm:"size:512"`
	Medium           string `gorm:"size:512"`
	Quora            string `gorm:"size:512"`
	Reddit           string `gorm:"size:512"`
	Tumblr           string `gorm:"size:512"`
	Threads          string `gorm:"size:512"`
	Bluesky          string `gorm:"size:512"`
	WhatsappBusiness string `gorm:"size:512"`
	WebsiteBlogs     string `gorm:"size:512"`

	// Business intelligence (one item per line)
	Top10Partners    string `gorm:"type:text"`
	Top10Competitors string `gorm:"type:text"`
	AdditionalNotes  string `gorm:"type:text"`

	// Public dashboard sharing. The token is minted lazily on first enable
	// and survives disable/re-enable; only an explicit regenerate replaces it.
	PublicToken           *string    `gorm:"size:64;uniqueIndex"`
	IsPublicEnabled       bool       `gorm:"default:false;not null"`
	PublicLinkCreatedByID *uint      `gorm:"index"`
	PublicLinkCreatedBy   *User      `gorm:"foreignKey:PublicLinkCreatedByID"`
	PublicLinkCreatedAt   *time.Time

	// PlatformProgress rows are exclusively owned by the brand.
	PlatformProgress []PlatformProgress `gorm:"foreignKey:BrandID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
