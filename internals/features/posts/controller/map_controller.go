package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"photograph_backend/internals/configs"
	"photograph_backend/internals/features/posts/dto"
	"photograph_backend/internals/features/posts/model"
	helper "photograph_backend/internals/helpers"
)

type MapController struct {
	DB *gorm.DB

	// ShowAll turns off the bounding-box filter so every post is returned,
	// still sorted and grouped. One switch, no change to the query logic.
	ShowAll bool
}

func NewMapController(db *gorm.DB) *MapController {
	return &MapController{DB: db, ShowAll: configs.MapShowAll}
}

// GetMapPosts returns the posts inside the given bounding box as a JSON
// object keyed by location name, each group ordered by popularity. The range
// filter runs in the database; sorting order and grouping are part of the
// query so the map renders deterministically.
func (ctrl *MapController) GetMapPosts(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.PostModel{}).Preload("User")

	if !ctrl.ShowAll {
		seLat, err1 := strconv.ParseFloat(c.Query("se_lat"), 64)
		seLon, err2 := strconv.ParseFloat(c.Query("se_lon"), 64)
		nwLat, err3 := strconv.ParseFloat(c.Query("nw_lat"), 64)
		nwLon, err4 := strconv.ParseFloat(c.Query("nw_lon"), 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "se_lat, se_lon, nw_lat and nw_lon must be numeric")
		}

		// Edges are inclusive. A flipped box makes BETWEEN match nothing,
		// which is the wanted outcome for malformed bounds.
		q = q.
			Where("post_latitude BETWEEN ? AND ?", seLat, nwLat).
			Where("post_longitude BETWEEN ? AND ?", nwLon, seLon)
	}

	var posts []model.PostModel
	if err := q.
		Order("post_like_count DESC, post_created_at ASC, post_id ASC").
		Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to query posts")
	}

	groups := dto.NewLocationGroups()
	for _, p := range posts {
		groups.Add(dto.ToMapPostSummary(p))
	}

	// The map contract is a bare object keyed by location name, not the
	// standard envelope.
	return c.JSON(groups)
}
