package controller_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"photograph_backend/internals/constants"
	"photograph_backend/internals/features/posts/controller"
	"photograph_backend/internals/features/posts/model"
	userModel "photograph_backend/internals/features/users/model"
	"photograph_backend/internals/testutil"
)

func newLikeApp(db *gorm.DB, actor userModel.UserProfileModel) *fiber.App {
	app := fiber.New()
	ctrl := controller.NewPostLikeController(db)
	api := app.Group("/api/u", testutil.AuthAs(actor.UserProfileID, actor.UserProfileName, constants.RoleUser))
	api.Post("/post-likes/toggle", ctrl.ToggleLike)
	return app
}

func TestToggleLikeOnOff(t *testing.T) {
	t.Parallel()

	db := testutil.OpenDB(t)
	owner := testutil.CreateUser(t, db, "owner")
	fan := testutil.CreateUser(t, db, "fan")
	post := testutil.CreatePost(t, db, owner.UserProfileID, 1, 2, "Somewhere", 0)
	app := newLikeApp(db, fan)
	body := map[string]any{"post_id": post.PostID}

	status, _, parsed := testutil.DoJSON(t, app, fiber.MethodPost, "/api/u/post-likes/toggle", body)
	if status != fiber.StatusOK {
		t.Fatalf("first toggle: status = %d, want 200", status)
	}
	data := parsed["data"].(map[string]any)
	if data["liked"] != true || data["post_like_count"].(float64) != 1 {
		t.Errorf("first toggle = liked:%v count:%v, want liked:true count:1", data["liked"], data["post_like_count"])
	}

	status, _, parsed = testutil.DoJSON(t, app, fiber.MethodPost, "/api/u/post-likes/toggle", body)
	if status != fiber.StatusOK {
		t.Fatalf("second toggle: status = %d, want 200", status)
	}
	data = parsed["data"].(map[string]any)
	if data["liked"] != false || data["post_like_count"].(float64) != 0 {
		t.Errorf("second toggle = liked:%v count:%v, want liked:false count:0", data["liked"], data["post_like_count"])
	}

	var likes int64
	db.Model(&model.PostLikeModel{}).Count(&likes)
	if likes != 0 {
		t.Errorf("like rows = %d, want 0 after un-like", likes)
	}
}

func TestToggleLikeCounterNeverGoesNegative(t *testing.T) {
	t.Parallel()

	db := testutil.OpenDB(t)
	owner := testutil.CreateUser(t, db, "owner")
	fan := testutil.CreateUser(t, db, "fan")
	post := testutil.CreatePost(t, db, owner.UserProfileID, 1, 2, "Somewhere", 0)

	// A drifted counter: a like row exists but the count already reads zero.
	if err := db.Create(&model.PostLikeModel{
		PostLikePostID: post.PostID,
		PostLikeUserID: fan.UserProfileID,
	}).Error; err != nil {
		t.Fatalf("seed like: %v", err)
	}

	app := newLikeApp(db, fan)
	status, _, parsed := testutil.DoJSON(t, app, fiber.MethodPost, "/api/u/post-likes/toggle",
		map[string]any{"post_id": post.PostID})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	data := parsed["data"].(map[string]any)
	if data["post_like_count"].(float64) != 0 {
		t.Errorf("count = %v, want clamped to 0", data["post_like_count"])
	}
}

func TestToggleLikeMissingPost(t *testing.T) {
	t.Parallel()

	db := testutil.OpenDB(t)
	fan := testutil.CreateUser(t, db, "fan")
	app := newLikeApp(db, fan)

	status, _, _ := testutil.DoJSON(t, app, fiber.MethodPost, "/api/u/post-likes/toggle",
		map[string]any{"post_id": "3f1f8a47-9f2c-4f6e-b9ab-0d3c2a1b5e77"})
	if status != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
}

func TestToggleLikeIndependentPerUser(t *testing.T) {
	t.Parallel()

	db := testutil.OpenDB(t)
	owner := testutil.CreateUser(t, db, "owner")
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	post := testutil.CreatePost(t, db, owner.UserProfileID, 1, 2, "Somewhere", 0)
	body := map[string]any{"post_id": post.PostID}

	for _, actor := range []userModel.UserProfileModel{alice, bob} {
		status, _, _ := testutil.DoJSON(t, newLikeApp(db, actor), fiber.MethodPost, "/api/u/post-likes/toggle", body)
		if status != fiber.StatusOK {
			t.Fatalf("%s toggle: status = %d, want 200", actor.UserProfileName, status)
		}
	}

	// Alice withdrawing hers leaves Bob's like standing.
	status, _, parsed := testutil.DoJSON(t, newLikeApp(db, alice), fiber.MethodPost, "/api/u/post-likes/toggle", body)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	data := parsed["data"].(map[string]any)
	if data["post_like_count"].(float64) != 1 {
		t.Errorf("count = %v, want 1", data["post_like_count"])
	}
}
