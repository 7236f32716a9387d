// Package seeds loads a small demo dataset so a fresh database has
// something to render on the map. Idempotent: rows that already exist are
// skipped, so the seeders can run on every boot of a dev instance.
package seeds

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	postModel "photograph_backend/internals/features/posts/model"
	userModel "photograph_backend/internals/features/users/model"
)

func RunAllSeeds(db *gorm.DB) {
	SeedUserProfilesFromJSON(db, "internals/seeds/data_user_profiles.json")
	SeedPostsFromJSON(db, "internals/seeds/data_posts.json")
}

type userProfileSeed struct {
	Name       string  `json:"name"`
	Biography  string  `json:"biography"`
	PictureURL *string `json:"picture_url"`
}

func SeedUserProfilesFromJSON(db *gorm.DB, filePath string) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("⚠️ seed: cannot read %s: %v", filePath, err)
		return
	}
	var entries []userProfileSeed
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Fatalf("❌ seed: decode %s: %v", filePath, err)
	}

	inserted := 0
	for _, e := range entries {
		var count int64
		if err := db.Model(&userModel.UserProfileModel{}).
			Where("user_profile_name = ?", e.Name).
			Count(&count).Error; err != nil {
			log.Fatalf("❌ seed: check user %q: %v", e.Name, err)
		}
		if count > 0 {
			continue
		}
		u := userModel.UserProfileModel{
			UserProfileName:       e.Name,
			UserProfileBiography:  e.Biography,
			UserProfilePictureURL: e.PictureURL,
		}
		if err := db.Create(&u).Error; err != nil {
			log.Fatalf("❌ seed: insert user %q: %v", e.Name, err)
		}
		inserted++
	}
	log.Printf("✅ seed: %d user profiles inserted, %d skipped", inserted, len(entries)-inserted)
}

type postSeed struct {
	UserName     string  `json:"user_name"`
	Caption      *string `json:"caption"`
	PhotoURL     string  `json:"photo_url"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	LocationName string  `json:"location_name"`
	LikeCount    int64   `json:"like_count"`
}

// SeedPostsFromJSON inserts posts keyed by owner name. Location names come
// from the seed file as-is; the geocoding resolver is not involved.
func SeedPostsFromJSON(db *gorm.DB, filePath string) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("⚠️ seed: cannot read %s: %v", filePath, err)
		return
	}
	var entries []postSeed
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Fatalf("❌ seed: decode %s: %v", filePath, err)
	}

	inserted := 0
	for _, e := range entries {
		var owner userModel.UserProfileModel
		if err := db.First(&owner, "user_profile_name = ?", e.UserName).Error; err != nil {
			log.Printf("⚠️ seed: owner %q not found, post skipped", e.UserName)
			continue
		}

		var count int64
		if err := db.Model(&postModel.PostModel{}).
			Where("post_user_id = ? AND post_photo_url = ?", owner.UserProfileID, e.PhotoURL).
			Count(&count).Error; err != nil {
			log.Fatalf("❌ seed: check post %q: %v", e.PhotoURL, err)
		}
		if count > 0 {
			continue
		}

		p := postModel.PostModel{
			PostUserID:       owner.UserProfileID,
			PostCaption:      e.Caption,
			PostPhotoURL:     e.PhotoURL,
			PostLatitude:     e.Latitude,
			PostLongitude:    e.Longitude,
			PostLocationName: e.LocationName,
			PostLikeCount:    e.LikeCount,
		}
		if err := db.Create(&p).Error; err != nil {
			log.Fatalf("❌ seed: insert post %q: %v", e.PhotoURL, err)
		}
		inserted++
	}
	log.Printf("✅ seed: %d posts inserted, %d skipped", inserted, len(entries)-inserted)
}
