package main

import (
	"net/http"
	"time"

	"brandops/models"
	"brandops/pkg/folders"
	"brandops/pkg/progress"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// brandAgg carries the per-brand aggregate shown on the manager cards.
type brandAgg struct {
	PlatformCount  int64 `json:"platform_count"`
	TotalCommitted int   `json:"total_committed"`
	TotalPublished int   `json:"total_published"`
}

func aggregateBrand(brandID uint) brandAgg {
	var a struct {
		Cnt       int64
		Committed int
		Published int
	}
	err := db.Model(&models.PlatformProgress{}).
		Where("brand_id = ?", brandID).
		Select("COUNT(*) AS cnt, COALESCE(SUM(committed),0) AS committed, COALESCE(SUM(published),0) AS published").
		Scan(&a).Error
	if err != nil {
		logger.Warnf("brand aggregate failed for %d: %v", brandID, err)
		return brandAgg{}
	}
	return brandAgg{PlatformCount: a.Cnt, TotalCommitted: a.Committed, TotalPublished: a.Published}
}

// listBrandsHandler is the manager landing page feed: searchable, sortable
// brand cards with per-brand and overall progress totals.
func listBrandsHandler(c *gin.Context) {
	search := c.Query("search")
	sortBy := c.DefaultQuery("sort", "newest")

	q := db.Model(&models.BrandProfile{}).
		Joins("JOIN users ON users.id = brand_profiles.user_id")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"LOWER(brand_profiles.brand_name) LIKE LOWER(?) OR LOWER(users.username) LIKE LOWER(?) OR LOWER(brand_profiles.primary_official_email) LIKE LOWER(?)",
			like, like, like,
		)
	}
	switch sortBy {
	case "oldest":
		q = q.Order("brand_profiles.created_at asc")
	case "name":
		q = q.Order("brand_profiles.brand_name asc")
	default:
		sortBy = "newest"
		q = q.Order("brand_profiles.created_at desc")
	}
	var brands []models.BrandProfile
	if err := q.Preload("User").Find(&brands).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	var totalPlatforms int64
	totalCommitted, totalPublished := 0, 0
	cards := make([]gin.H, 0, len(brands))
	for _, b := range brands {
		agg := aggregateBrand(b.ID)
		completion, _ := progress.RowPercentages(agg.TotalCommitted, 0, agg.TotalPublished)
		totalPlatforms += agg.PlatformCount
		totalCommitted += agg.TotalCommitted
		totalPublished += agg.TotalPublished
		cards = append(cards, gin.H{
			"id":                b.ID,
			"brand_name":        b.BrandName,
			"username":          b.User.Username,
			"created_at":        b.CreatedAt,
			"is_public_enabled": b.IsPublicEnabled,
			"platform_count":    agg.PlatformCount,
			"total_committed":   agg.TotalCommitted,
			"total_published":   agg.TotalPublished,
			"completion_rate":   completion,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"brands":              cards,
		"search_query":        search,
		"sort_by":             sortBy,
		"total_brands":        len(brands),
		"total_platforms":     totalPlatforms,
		"total_committed_all": totalCommitted,
		"total_published_all": totalPublished,
	})
}

func findBrandByParam(c *gin.Context) (*models.BrandProfile, bool) {
	var brand models.BrandProfile
	if err := db.First(&brand, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "brand not found"})
		return nil, false
	}
	return &brand, true
}

func brandDetailHandler(c *gin.Context) {
	brand, ok := findBrandByParam(c)
	if !ok {
		return
	}
	var platforms []models.PlatformProgress
	if err := db.Where("brand_id = ?", brand.ID).Order("platform").Find(&platforms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"brand": brand, "platforms": platforms})
}

// brandPlatformsHandler feeds the editing UI: every platform row with its
// canonical profile link pulled out and the remaining content links nested.
func brandPlatformsHandler(c *gin.Context) {
	brand, ok := findBrandByParam(c)
	if !ok {
		return
	}
	var rows []models.PlatformProgress
	if err := db.Where("brand_id = ?", brand.ID).Order("platform").Preload("ContentLinks").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	out := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		completion, draft := progress.RowPercentages(r.Committed, r.Drafted, r.Published)
		platformLink := ""
		links := make([]gin.H, 0, len(r.ContentLinks))
		for _, l := range r.ContentLinks {
			if l.Title == models.PlatformProfileTitle {
				platformLink = l.URL
				continue
			}
			links = append(links, gin.H{"id": l.ID, "title": l.Title, "url": l.URL})
		}
		out = append(out, gin.H{
			"id":                    r.ID,
			"platform":              r.Platform,
			"platform_display":      progress.DisplayName(r.Platform),
			"committed":             r.Committed,
			"drafted":               r.Drafted,
			"published":             r.Published,
			"notes":                 r.Notes,
			"is_visible":            r.IsVisible,
			"is_active":             r.IsActive,
			"completion_percentage": completion,
			"draft_percentage":      draft,
			"platform_link":         platformLink,
			"content_links":         links,
		})
	}
	c.JSON(http.StatusOK, gin.H{"brand_name": brand.BrandName, "platforms": out})
}

func backfillPlatformsHandler(c *gin.Context) {
	brand, ok := findBrandByParam(c)
	if !ok {
		return
	}
	created, err := progress.EnsureRows(db, brand.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "backfill failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

// updatePlatformProgressHandler overwrites one row's counters and notes and
// manages the canonical Platform Profile link, all inside one transaction so
// a rejected update leaves nothing half-applied.
func updatePlatformProgressHandler(c *gin.Context) {
	var row models.PlatformProgress
	if err := db.First(&row, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "platform not found"})
		return
	}
	var req struct {
		Committed    int    `json:"committed"`
		Drafted      int    `json:"drafted"`
		Published    int    `json:"published"`
		Notes        string `json:"notes"`
		PlatformLink string `json:"platform_link"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please enter valid numbers"})
		return
	}
	if err := progress.ValidateCounters(publishedRule, req.Committed, req.Drafted, req.Published); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		row.Committed = req.Committed
		row.Drafted = req.Drafted
		row.Published = req.Published
		row.Notes = req.Notes
		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		return upsertPlatformProfileLink(tx, row.ID, req.PlatformLink)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	completion, draft := progress.RowPercentages(row.Committed, row.Drafted, row.Published)
	c.JSON(http.StatusOK, gin.H{
		"completion_percentage": completion,
		"draft_percentage":      draft,
		"message":               progress.DisplayName(row.Platform) + " updated successfully",
	})
}

// upsertPlatformProfileLink keeps at most one Platform Profile link per row:
// non-empty URL creates or updates it, empty URL removes it.
func upsertPlatformProfileLink(tx *gorm.DB, rowID uint, url string) error {
	var link models.ContentLink
	err := tx.Where("platform_progress_id = ? AND title = ?", rowID, models.PlatformProfileTitle).First(&link).Error
	switch {
	case err == nil && url != "":
		link.URL = url
		return tx.Save(&link).Error
	case err == nil && url == "":
		return tx.Delete(&link).Error
	case isNotFound(err) && url != "":
		return tx.Create(&models.ContentLink{
			PlatformProgressID: rowID,
			Title:              models.PlatformProfileTitle,
			URL:                url,
		}).Error
	case isNotFound(err):
		return nil
	default:
		return err
	}
}

func togglePlatformVisibilityHandler(c *gin.Context) {
	var row models.PlatformProgress
	if err := db.First(&row, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "platform not found"})
		return
	}
	row.IsVisible = !row.IsVisible
	if err := db.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_visible": row.IsVisible, "platform_name": progress.DisplayName(row.Platform)})
}

func togglePlatformActiveHandler(c *gin.Context) {
	var row models.PlatformProgress
	if err := db.First(&row, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "platform not found"})
		return
	}
	row.IsActive = !row.IsActive
	if err := db.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_active": row.IsActive, "platform_name": progress.DisplayName(row.Platform)})
}

// bulkPlatformVisibilityHandler applies a named policy to all of a brand's
// rows: show everything, or hide platforms with nothing committed.
func bulkPlatformVisibilityHandler(c *gin.Context) {
	brand, ok := findBrandByParam(c)
	if !ok {
		return
	}
	var req struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var message string
	switch req.Action {
	case "show_all":
		if err := db.Model(&models.PlatformProgress{}).Where("brand_id = ?", brand.ID).Update("is_visible", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
			return
		}
		message = "all platforms are now visible"
	case "hide_inactive":
		if err := db.Model(&models.PlatformProgress{}).Where("brand_id = ? AND committed = 0", brand.ID).Update("is_visible", false).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
			return
		}
		message = "inactive platforms are now hidden"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func addContentLinkHandler(c *gin.Context) {
	var row models.PlatformProgress
	if err := db.First(&row, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "platform not found"})
		return
	}
	var req struct {
		Title string `json:"title" binding:"required"`
		URL   string `json:"url" binding:"required,url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and url are required"})
		return
	}
	link := models.ContentLink{PlatformProgressID: row.ID, Title: req.Title, URL: req.URL}
	if err := db.Create(&link).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"link": gin.H{"id": link.ID, "title": link.Title, "url": link.URL}})
}

func deleteContentLinkHandler(c *gin.Context) {
	var link models.ContentLink
	if err := db.First(&link, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "link not found"})
		return
	}
	if err := db.Delete(&link).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "content link deleted"})
}

// publicDashboardURL builds the absolute share link for a token, preferring
// the configured base URL over whatever host the request came in on.
func publicDashboardURL(c *gin.Context, token string) string {
	base := appBaseURL
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + c.Request.Host
	}
	return base + "/public/dashboard/" + token
}

// generatePublicLinkHandler enables sharing and returns the link. The token
// is minted lazily; the first-enable timestamp is never overwritten here.
func generatePublicLinkHandler(c *gin.Context) {
	brand, ok := findBrandByParam(c)
	if !ok {
		return
	}
	actor, okUser := getUserFromContext(c)
	if !okUser {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	if brand.PublicToken == nil {
		tok := uuid.New().String()
		brand.PublicToken = &tok
	}
	brand.IsPublicEnabled = true
	brand.PublicLinkCreatedByID = &actor.ID
	if brand.PublicLinkCreatedAt == nil {
		now := time.Now()
		brand.PublicLinkCreatedAt = &now
	}
	if err := db.Model(brand).Updates(map[string]any{
		"public_token":              brand.PublicToken,
		"is_public_enabled":         true,
		"public_link_created_by_id": brand.PublicLinkCreatedByID,
		"public_link_created_at":    brand.PublicLinkCreatedAt,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"public_url": publicDashboardURL(c, *brand.PublicToken),
		"token":      *brand.PublicToken,
		"enabled_at": brand.PublicLinkCreatedAt,
		"enabled_by": actor.Username,
	})
}

// togglePublicAccessHandler flips sharing on or off. Disabling keeps the
// token so re-enabling revives the same link.
func togglePublicAccessHandler(c *gin.Context) {
	brand, ok := findBrandByParam(c)
	if !ok {
		return
	}
	actor, okUser := getUserFromContext(c)
	if !okUser {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	brand.IsPublicEnabled = !brand.IsPublicEnabled
	if brand.IsPublicEnabled {
		if brand.PublicToken == nil {
			tok := uuid.New().String()
			brand.PublicToken = &tok
		}
		if brand.PublicLinkCreatedAt == nil {
			now := time.Now()
			brand.PublicLinkCreatedAt = &now
		}
		brand.PublicLinkCreatedByID = &actor.ID
	}
	if err := db.Model(brand).Updates(map[string]any{
		"public_token":              brand.PublicToken,
		"is_public_enabled":         brand.IsPublicEnabled,
		"public_link_created_by_id": brand.PublicLinkCreatedByID,
		"public_link_created_at":    brand.PublicLinkCreatedAt,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	var token any
	if brand.PublicToken != nil {
		token = *brand.PublicToken
	}
	c.JSON(http.StatusOK, gin.H{"is_enabled": brand.IsPublicEnabled, "token": token})
}

// regeneratePublicTokenHandler revokes the shared link by minting a fresh
// token. Audit fields move to the regenerating operator.
func regeneratePublicTokenHandler(c *gin.Context) {
	brand, ok := findBrandByParam(c)
	if !ok {
		return
	}
	actor, okUser := getUserFromContext(c)
	if !okUser {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	tok := uuid.New().String()
	now := time.Now()
	brand.PublicToken = &tok
	brand.PublicLinkCreatedByID = &actor.ID
	brand.PublicLinkCreatedAt = &now
	if err := db.Model(brand).Updates(map[string]any{
		"public_token":              tok,
		"public_link_created_by_id": actor.ID,
		"public_link_created_at":    now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"public_url":     publicDashboardURL(c, tok),
		"token":          tok,
		"regenerated_at": now,
	})
}

func brandFolderHandler(c *gin.Context) {
	brand, ok := findBrandByParam(c)
	if !ok {
		return
	}
	serveFolderArchive(c, []models.BrandProfile{*brand})
}

func bulkFolderHandler(c *gin.Context) {
	var req struct {
		BrandIDs []uint `json:"brand_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.BrandIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no brands selected"})
		return
	}
	var brands []models.BrandProfile
	if err := db.Where("id IN ?", req.BrandIDs).Find(&brands).Error; err != nil || len(brands) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no brands selected"})
		return
	}
	serveFolderArchive(c, brands)
}

func serveFolderArchive(c *gin.Context, brands []models.BrandProfile) {
	data, err := folders.BuildArchive(brands)
	if err != nil {
		logger.Errorf("folder archive failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "archive failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+folders.ArchiveFilename(brands)+`"`)
	c.Data(http.StatusOK, "application/zip", data)
}
