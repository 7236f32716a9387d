// Package testutil holds the shared scaffolding for handler tests: an
// isolated in-memory database with the full schema, a fake auth middleware,
// and small request helpers.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	postModel "photograph_backend/internals/features/posts/model"
	reportModel "photograph_backend/internals/features/reports/model"
	userModel "photograph_backend/internals/features/users/model"
)

// OpenDB returns a database unique to the test, migrated with every model the
// service persists.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&userModel.UserProfileModel{},
		&postModel.PostModel{},
		&postModel.CommentModel{},
		&postModel.PostLikeModel{},
		&reportModel.PostReportModel{},
		&reportModel.UserReportModel{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// AuthAs stands in for the JWT middleware and pins the actor's identity.
func AuthAs(userID, userName, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("user_name", userName)
		c.Locals("userRole", role)
		return c.Next()
	}
}

// CreateUser inserts a profile and returns it.
func CreateUser(t *testing.T, db *gorm.DB, name string) userModel.UserProfileModel {
	t.Helper()
	u := userModel.UserProfileModel{UserProfileName: name}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user %q: %v", name, err)
	}
	return u
}

// CreatePost inserts a post directly, bypassing the publication pipeline.
func CreatePost(t *testing.T, db *gorm.DB, userID string, lat, lon float64, location string, likes int64) postModel.PostModel {
	t.Helper()
	p := postModel.PostModel{
		PostUserID:       userID,
		PostPhotoURL:     "https://media.example.com/" + uuid.NewString() + ".jpg",
		PostLatitude:     lat,
		PostLongitude:    lon,
		PostLocationName: location,
		PostLikeCount:    likes,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return p
}

// DoJSON runs one request against the app and returns the status, the raw
// body and, when the body is a JSON object, its decoded form.
func DoJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, []byte, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	var parsed map[string]any
	_ = json.Unmarshal(raw, &parsed)
	return res.StatusCode, raw, parsed
}
