package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"brandops/models"
	"brandops/pkg/progress"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestServer wires the handlers against a throwaway sqlite database so
// tests run hermetically, without a postgres instance.
func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "app.db")), &gorm.Config{})
	require.NoError(t, err)
	migrateAll(gdb)
	db = gdb
	jwtSecret = []byte("test-secret")
	publishedRule = progress.PublishedLEDrafted
	appBaseURL = ""
	for _, name := range []string{models.RoleStaff, models.RoleClient} {
		role := models.Role{Name: name}
		require.NoError(t, db.Where("name = ?", name).FirstOrCreate(&role).Error)
	}
	r := gin.New()
	setupRoutes(r)
	return r
}

// createTestUser inserts a user with the given role and returns it together
// with a signed access token.
func createTestUser(t *testing.T, username, role string) (models.User, string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	var r models.Role
	require.NoError(t, db.Where("name = ?", role).First(&r).Error)
	rid := r.ID
	user := models.User{Username: username, HashedPassword: hashed, RoleID: &rid}
	require.NoError(t, db.Create(&user).Error)
	token, err := signAccessToken(&user, time.Hour)
	require.NoError(t, err)
	return user, token
}

// createTestBrand inserts an onboarded brand with its full platform ledger.
func createTestBrand(t *testing.T, userID uint, name string) models.BrandProfile {
	t.Helper()
	brand := models.BrandProfile{
		UserID:                  userID,
		BrandName:               name,
		PrimaryContactFirstName: "Ana",
		PrimaryContactLastName:  "Ops",
		PrimaryOfficialEmail:    "ana@example.com",
		PrimaryPhoneNumber:      "+10000000000",
	}
	require.NoError(t, db.Create(&brand).Error)
	_, err := progress.EnsureRows(db, brand.ID)
	require.NoError(t, err)
	return brand
}

func performRequest(r http.Handler, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func TestRegisterLoginMe(t *testing.T) {
	r := setupTestServer(t)

	rec := performRequest(r, http.MethodPost, "/register",
		jsonBody(t, gin.H{"username": "brand1", "password": "secret123"}), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// duplicate registration is rejected
	rec = performRequest(r, http.MethodPost, "/register",
		jsonBody(t, gin.H{"username": "brand1", "password": "secret123"}), "")
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = performRequest(r, http.MethodPost, "/login",
		jsonBody(t, gin.H{"username": "brand1", "password": "secret123"}), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decodeBody(t, rec)
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	rec = performRequest(r, http.MethodGet, "/me", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeBody(t, rec)
	require.Equal(t, "brand1", me["username"])
	require.Equal(t, models.RoleClient, me["role"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := setupTestServer(t)
	createTestUser(t, "brand1", models.RoleClient)

	rec := performRequest(r, http.MethodPost, "/login",
		jsonBody(t, gin.H{"username": "brand1", "password": "wrong"}), "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshRotation(t *testing.T) {
	r := setupTestServer(t)
	createTestUser(t, "brand1", models.RoleClient)

	rec := performRequest(r, http.MethodPost, "/login",
		jsonBody(t, gin.H{"username": "brand1", "password": "secret123"}), "")
	require.Equal(t, http.StatusOK, rec.Code)
	first, _ := decodeBody(t, rec)["refresh_token"].(string)
	require.NotEmpty(t, first)

	rec = performRequest(r, http.MethodPost, "/refresh",
		jsonBody(t, gin.H{"refresh_token": first}), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	second, _ := decodeBody(t, rec)["refresh_token"].(string)
	require.NotEmpty(t, second)
	require.NotEqual(t, first, second)

	// the rotated-out token is dead
	rec = performRequest(r, http.MethodPost, "/refresh",
		jsonBody(t, gin.H{"refresh_token": first}), "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOnboardingGate(t *testing.T) {
	r := setupTestServer(t)
	user, token := createTestUser(t, "brand1", models.RoleClient)

	// no profile yet: dashboard is gated with a redirect hint
	rec := performRequest(r, http.MethodGet, "/dashboard", nil, token)
	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "/profile", body["redirect"])

	createTestBrand(t, user.ID, "Acme")
	rec = performRequest(r, http.MethodGet, "/dashboard", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	dash := decodeBody(t, rec)
	require.Contains(t, dash, "platform_progress")
	require.NotNil(t, dash["profile"])
}

func TestCreateProfile(t *testing.T) {
	r := setupTestServer(t)
	_, token := createTestUser(t, "brand1", models.RoleClient)

	// missing required fields
	rec := performRequest(r, http.MethodPost, "/profile",
		jsonBody(t, gin.H{"brand_name": "Acme"}), token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	payload := gin.H{
		"brand_name":                 "Acme",
		"primary_contact_first_name": "Ana",
		"primary_contact_last_name":  "Ops",
		"primary_official_email":     "ana@example.com",
		"primary_phone_number":       "+10000000000",
		"brand_website":              "https://acme.example.com",
	}
	rec = performRequest(r, http.MethodPost, "/profile", jsonBody(t, payload), token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// onboarding plants the full platform ledger
	var cnt int64
	db.Model(&models.PlatformProgress{}).Count(&cnt)
	require.Equal(t, int64(len(progress.Codes())), cnt)

	// one profile per user
	rec = performRequest(r, http.MethodPost, "/profile", jsonBody(t, payload), token)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestPublicDashboardUnknownToken(t *testing.T) {
	r := setupTestServer(t)
	rec := performRequest(r, http.MethodGet, "/public/dashboard/not-a-real-token", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
