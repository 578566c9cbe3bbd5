// Package folders builds the downloadable Google-Drive folder skeleton that
// the content team sets up for every new brand.
package folders

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"brandops/models"
)

// subfolder name patterns, in the order they appear in the archive. %s is
// the sanitized brand name; the numeric prefixes match the team's drive
// convention.
var subfolders = []string{
	"Client Docs",
	"Images",
	"Videos",
	"00_Brand_voice_guidelines_%s",
	"00_Digital Marketing %s",
	"00_Social_Media_Templates_%s",
	"01_Blogs_%s",
	"02_Website_Downloadable_%s",
	"03_Google_Business_%s",
	"04_LinkedIn_%s",
	"07_Instagram_%s",
	"08_Pinterest_%s",
	"09_X_Twitter_%s",
	"10_Facebook_%s",
	"11_Medium_%s",
	"12_Threads_%s",
}

// CleanName makes a brand name safe for folder and file names.
func CleanName(brandName string) string {
	s := strings.ReplaceAll(brandName, " ", "_")
	return strings.ReplaceAll(s, "/", "_")
}

// BuildArchive writes one folder skeleton per brand into a ZIP held in
// memory. The size is bounded by brand count times the fixed folder list,
// so buffering the whole archive is fine.
func BuildArchive(brands []models.BrandProfile) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, b := range brands {
		clean := CleanName(b.BrandName)
		for _, pattern := range subfolders {
			name := pattern
			if strings.Contains(pattern, "%s") {
				name = fmt.Sprintf(pattern, clean)
			}
			if _, err := zw.Create(clean + "/" + name + "/"); err != nil {
				return nil, fmt.Errorf("create folder entry for %s: %w", b.BrandName, err)
			}
		}
		w, err := zw.Create(clean + "/README.md")
		if err != nil {
			return nil, fmt.Errorf("create readme for %s: %w", b.BrandName, err)
		}
		if _, err := w.Write([]byte(readmeFor(b.BrandName))); err != nil {
			return nil, fmt.Errorf("write readme for %s: %w", b.BrandName, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ArchiveFilename names the download: brand-specific for a single export,
// generic for a bulk one.
func ArchiveFilename(brands []models.BrandProfile) string {
	if len(brands) == 1 {
		return CleanName(brands[0].BrandName) + "_folder_structure.zip"
	}
	return fmt.Sprintf("bulk_folder_structures_%d_brands.zip", len(brands))
}

func readmeFor(brandName string) string {
	return fmt.Sprintf(`# %s - Content Folder Structure

## Instructions:
1. Upload this entire folder structure to Google Drive
2. Share the main '%s' folder with your content team
3. Use these folders to organize your content by platform

## Folder Structure:
- Client Docs: Important documents and contracts
- Images: Brand images, logos, graphics
- Videos: Video content and assets
- 00_Brand_voice_guidelines: Brand voice and messaging guidelines
- 00_Digital Marketing: Overall digital marketing strategy
- 00_Social_Media_Templates: Reusable templates
- Platform-specific folders (01-12): Organized by platform

Created by the Brand Operations Manager Dashboard
`, brandName, brandName)
}
