package controller_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"photograph_backend/internals/constants"
	postModel "photograph_backend/internals/features/posts/model"
	"photograph_backend/internals/features/reports/controller"
	"photograph_backend/internals/features/reports/model"
	userModel "photograph_backend/internals/features/users/model"
	authMiddleware "photograph_backend/internals/middlewares/auth"
	"photograph_backend/internals/testutil"
)

// newModerationApp mounts the reviewer routes behind the same role gate the
// real router uses, so privilege checks are part of what gets tested.
func newModerationApp(db *gorm.DB, actor userModel.UserProfileModel, role string) *fiber.App {
	app := fiber.New()
	ctrl := controller.NewModerationController(db)

	api := app.Group("/api/r",
		testutil.AuthAs(actor.UserProfileID, actor.UserProfileName, role),
		authMiddleware.OnlyRoles(
			constants.RoleErrorReviewer("moderation"),
			constants.ReviewerAndAbove...,
		),
	)
	api.Get("/post-reports/:id/case", ctrl.GetPostReportCase)
	api.Get("/user-reports/:id/case", ctrl.GetUserReportCase)
	api.Delete("/posts/:id", ctrl.RemovePostTarget)
	api.Delete("/users/:id", ctrl.RemoveUserTarget)
	return app
}

func filePostReport(t *testing.T, db *gorm.DB, reporterID, postID, reason string) model.PostReportModel {
	t.Helper()
	r := model.PostReportModel{
		PostReportReporterID: reporterID,
		PostReportPostID:     postID,
		PostReportReason:     reason,
	}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("create post report: %v", err)
	}
	return r
}

func fileUserReport(t *testing.T, db *gorm.DB, reporterID, userID, reason string) model.UserReportModel {
	t.Helper()
	r := model.UserReportModel{
		UserReportReporterID: reporterID,
		UserReportUserID:     userID,
		UserReportReason:     reason,
	}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("create user report: %v", err)
	}
	return r
}

func TestGetPostReportCaseAnchorLeads(t *testing.T) {
	t.Parallel()

	db := testutil.OpenDB(t)
	owner := testutil.CreateUser(t, db, "owner")
	r1 := testutil.CreateUser(t, db, "first")
	r2 := testutil.CreateUser(t, db, "second")
	r3 := testutil.CreateUser(t, db, "third")
	reviewer := testutil.CreateUser(t, db, "reviewer")
	post := testutil.CreatePost(t, db, owner.UserProfileID, 1, 2, "Somewhere", 0)

	filePostReport(t, db, r1.UserProfileID, post.PostID, "spam")
	anchor := filePostReport(t, db, r2.UserProfileID, post.PostID, "nudity")
	filePostReport(t, db, r3.UserProfileID, post.PostID, "spam")

	app := newModerationApp(db, reviewer, constants.RoleReviewer)
	status, _, parsed := testutil.DoJSON(t, app, fiber.MethodGet,
		"/api/r/post-reports/"+anchor.PostReportID+"/case", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	data := parsed["data"].(map[string]any)
	if data["anchor_report_id"] != anchor.PostReportID {
		t.Errorf("anchor_report_id = %v, want %s", data["anchor_report_id"], anchor.PostReportID)
	}
	if data["target_post_id"] != post.PostID {
		t.Errorf("target_post_id = %v, want %s", data["target_post_id"], post.PostID)
	}
	if data["report_count"].(float64) != 3 {
		t.Errorf("report_count = %v, want 3", data["report_count"])
	}

	reasons, _ := data["reasons"].([]any)
	if len(reasons) != 3 {
		t.Fatalf("reasons = %v, want 3 entries", reasons)
	}
	if reasons[0] != "nudity" {
		t.Errorf("reasons[0] = %v, the anchor's reason must lead", reasons[0])
	}
	spam := 0
	for _, r := range reasons {
		if r == "spam" {
			spam++
		}
	}
	if spam != 2 {
		t.Errorf("reasons = %v, want two spam entries kept as duplicates", reasons)
	}

	reports, _ := data["reports"].([]any)
	if len(reports) != 3 {
		t.Fatalf("reports = %v, want 3 entries", reports)
	}
	firstReport := reports[0].(map[string]any)
	if firstReport["reporter_name"] != "second" {
		t.Errorf("reports[0].reporter_name = %v, want second", firstReport["reporter_name"])
	}
}

func TestGetPostReportCaseNotFound(t *testing.T) {
	t.Parallel()

	db := testutil.OpenDB(t)
	reviewer := testutil.CreateUser(t, db, "reviewer")

	app := newModerationApp(db, reviewer, constants.RoleReviewer)
	status, _, _ := testutil.DoJSON(t, app, fiber.MethodGet,
		"/api/r/post-reports/3f1f8a47-9f2c-4f6e-b9ab-0d3c2a1b5e77/case", nil)
	if status != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
}

func TestGetUserReportCase(t *testing.T) {
	t.Parallel()

	db := testutil.OpenDB(t)
	target := testutil.CreateUser(t, db, "troublemaker")
	r1 := testutil.CreateUser(t, db, "first")
	r2 := testutil.CreateUser(t, db, "second")
	reviewer := testutil.CreateUser(t, db, "reviewer")

	anchor := fileUserReport(t, db, r1.UserProfileID, target.UserProfileID, "harassment")
	fileUserReport(t, db, r2.UserProfileID, target.UserProfileID, "spam")

	app := newModerationApp(db, reviewer, constants.RoleReviewer)
	status, _, parsed := testutil.DoJSON(t, app, fiber.MethodGet,
		"/api/r/user-reports/"+anchor.UserReportID+"/case", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	data := parsed["data"].(map[string]any)
	if data["target_user_id"] != target.UserProfileID {
		t.Errorf("target_user_id = %v, want %s", data["target_user_id"], target.UserProfileID)
	}
	if data["report_count"].(float64) != 2 {
		t.Errorf("report_count = %v, want 2", data["report_count"])
	}
	reasons, _ := data["reasons"].([]any)
	if len(reasons) != 2 || reasons[0] != "harassment" {
		t.Errorf("reasons = %v, want [harassment spam]", reasons)
	}
}

func TestRemovePostTarget(t *testing.T) {
	t.Parallel()

	db := testutil.OpenDB(t)
	owner := testutil.CreateUser(t, db, "owner")
	bystander := testutil.CreateUser(t, db, "bystander")
	reviewer := testutil.CreateUser(t, db, "reviewer")
	post := testutil.CreatePost(t, db, owner.UserProfileID, 1, 2, "Somewhere", 1)
	keeper := testutil.CreatePost(t, db, owner.UserProfileID, 3, 4, "Elsewhere", 0)

	filePostReport(t, db, bystander.UserProfileID, post.PostID, "spam")
	if err := db.Create(&postModel.CommentModel{
		CommentUserID: bystander.UserProfileID,
		CommentPostID: post.PostID,
		CommentText:   "yikes",
	}).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	if err := db.Create(&postModel.PostLikeModel{
		PostLikePostID: post.PostID,
		PostLikeUserID: bystander.UserProfileID,
	}).Error; err != nil {
		t.Fatalf("seed like: %v", err)
	}

	app := newModerationApp(db, reviewer, constants.RoleReviewer)
	status, _, _ := testutil.DoJSON(t, app, fiber.MethodDelete, "/api/r/posts/"+post.PostID, nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var postCount, reportCount, commentCount, likeCount int64
	db.Model(&postModel.PostModel{}).Count(&postCount)
	db.Model(&model.PostReportModel{}).Count(&reportCount)
	db.Model(&postModel.CommentModel{}).Count(&commentCount)
	db.Model(&postModel.PostLikeModel{}).Count(&likeCount)
	if postCount != 1 {
		t.Errorf("posts = %d, want only the unreported one left", postCount)
	}
	if reportCount != 0 || commentCount != 0 || likeCount != 0 {
		t.Errorf("dependents left: reports=%d comments=%d likes=%d, want all 0",
			reportCount, commentCount, likeCount)
	}

	var survivor postModel.PostModel
	if err := db.First(&survivor, "post_id = ?", keeper.PostID).Error; err != nil {
		t.Errorf("unrelated post was removed: %v", err)
	}
}

func TestRemovePostTargetIdempotent(t *testing.T) {
	t.Parallel()

	db := testutil.OpenDB(t)
	owner := testutil.CreateUser(t, db, "owner")
	reviewer := testutil.CreateUser(t, db, "reviewer")
	post := testutil.CreatePost(t, db, owner.UserProfileID, 1, 2, "Somewhere", 0)

	app := newModerationApp(db, reviewer, constants.RoleReviewer)
	for i := 0; i < 2; i++ {
		status, _, parsed := testutil.DoJSON(t, app, fiber.MethodDelete, "/api/r/posts/"+post.PostID, nil)
		if status != fiber.StatusOK {
			t.Fatalf("pass %d: status = %d, want 200", i+1, status)
		}
		if i == 1 && parsed["message"] != "already removed" {
			t.Errorf("second pass message = %v, want already removed", parsed["message"])
		}
	}
}

func TestRemoveUserTarget(t *testing.T) {
	t.Parallel()

	db := testutil.OpenDB(t)
	target := testutil.CreateUser(t, db, "troublemaker")
	bystander := testutil.CreateUser(t, db, "bystander")
	reviewer := testutil.CreateUser(t, db, "reviewer")

	targetPost := testutil.CreatePost(t, db, target.UserProfileID, 1, 2, "Somewhere", 0)
	bystanderPost := testutil.CreatePost(t, db, bystander.UserProfileID, 3, 4, "Elsewhere", 1)

	// The target liked and commented on the bystander's post, reported it,
	// and is reported themselves. All of it has to go.
	if err := db.Create(&postModel.PostLikeModel{
		PostLikePostID: bystanderPost.PostID,
		PostLikeUserID: target.UserProfileID,
	}).Error; err != nil {
		t.Fatalf("seed like: %v", err)
	}
	if err := db.Create(&postModel.CommentModel{
		CommentUserID: target.UserProfileID,
		CommentPostID: bystanderPost.PostID,
		CommentText:   "rude remark",
	}).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	filePostReport(t, db, target.UserProfileID, bystanderPost.PostID, "retaliation")
	filePostReport(t, db, bystander.UserProfileID, targetPost.PostID, "spam")
	fileUserReport(t, db, bystander.UserProfileID, target.UserProfileID, "harassment")

	app := newModerationApp(db, reviewer, constants.RoleReviewer)
	status, _, _ := testutil.DoJSON(t, app, fiber.MethodDelete, "/api/r/users/"+target.UserProfileID, nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var users, posts, likes, comments, postReports, userReports int64
	db.Model(&userModel.UserProfileModel{}).Count(&users)
	db.Model(&postModel.PostModel{}).Count(&posts)
	db.Model(&postModel.PostLikeModel{}).Count(&likes)
	db.Model(&postModel.CommentModel{}).Count(&comments)
	db.Model(&model.PostReportModel{}).Count(&postReports)
	db.Model(&model.UserReportModel{}).Count(&userReports)

	if users != 2 {
		t.Errorf("users = %d, want bystander and reviewer only", users)
	}
	if posts != 1 {
		t.Errorf("posts = %d, want only the bystander's", posts)
	}
	if likes != 0 || comments != 0 || postReports != 0 || userReports != 0 {
		t.Errorf("dependents left: likes=%d comments=%d post_reports=%d user_reports=%d, want all 0",
			likes, comments, postReports, userReports)
	}

	// The like the target gave no longer counts against the surviving post.
	var survivor postModel.PostModel
	if err := db.First(&survivor, "post_id = ?", bystanderPost.PostID).Error; err != nil {
		t.Fatalf("fetch surviving post: %v", err)
	}
	if survivor.PostLikeCount != 0 {
		t.Errorf("surviving post like count = %d, want 0 after the removal", survivor.PostLikeCount)
	}
}

func TestRemoveUserTargetIdempotent(t *testing.T) {
	t.Parallel()

	db := testutil.OpenDB(t)
	reviewer := testutil.CreateUser(t, db, "reviewer")

	app := newModerationApp(db, reviewer, constants.RoleReviewer)
	status, _, parsed := testutil.DoJSON(t, app, fiber.MethodDelete,
		"/api/r/users/3f1f8a47-9f2c-4f6e-b9ab-0d3c2a1b5e77", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if parsed["message"] != "already removed" {
		t.Errorf("message = %v, want already removed", parsed["message"])
	}
}

func TestModerationRoutesRequireReviewerRole(t *testing.T) {
	t.Parallel()

	db := testutil.OpenDB(t)
	owner := testutil.CreateUser(t, db, "owner")
	pleb := testutil.CreateUser(t, db, "pleb")
	post := testutil.CreatePost(t, db, owner.UserProfileID, 1, 2, "Somewhere", 0)
	report := filePostReport(t, db, pleb.UserProfileID, post.PostID, "spam")

	app := newModerationApp(db, pleb, constants.RoleUser)
	targets := []struct{ method, path string }{
		{fiber.MethodGet, "/api/r/post-reports/" + report.PostReportID + "/case"},
		{fiber.MethodDelete, "/api/r/posts/" + post.PostID},
		{fiber.MethodDelete, "/api/r/users/" + owner.UserProfileID},
	}
	for _, tc := range targets {
		status, _, _ := testutil.DoJSON(t, app, tc.method, tc.path, nil)
		if status != fiber.StatusForbidden {
			t.Errorf("%s %s: status = %d, want 403", tc.method, tc.path, status)
		}
	}

	var postCount int64
	db.Model(&postModel.PostModel{}).Count(&postCount)
	if postCount != 1 {
		t.Errorf("posts = %d, a denied actor must not remove anything", postCount)
	}
}

func TestAdminPassesReviewerGate(t *testing.T) {
	t.Parallel()

	db := testutil.OpenDB(t)
	admin := testutil.CreateUser(t, db, "admin")

	app := newModerationApp(db, admin, constants.RoleAdmin)
	status, _, _ := testutil.DoJSON(t, app, fiber.MethodDelete,
		"/api/r/users/3f1f8a47-9f2c-4f6e-b9ab-0d3c2a1b5e77", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 for the admin role", status)
	}
}
