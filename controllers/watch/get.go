package watchControllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hbertrand-dev/watchstore-api/models"
	"github.com/hbertrand-dev/watchstore-api/utils"
)

const quickSearchLimit = 20

// GetWatches lists the catalog through the full criteria set with
// pagination and sorting. The total is counted on the filtered set before
// the page is sliced, so page boundaries stay consistent across pages.
func GetWatches(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria, err := ParseCriteria(c)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		params, err := utils.ParsePageParams(c, 20)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		orderBy, err := SortClause(c.Query("sortBy"), c.Query("sortOrder"))
		if err != nil {
			utils.Fail(c, err)
			return
		}

		query := db.Model(&models.Watch{})
		for _, cond := range criteria.Conditions() {
			query = query.Where(cond.Expr, cond.Args...)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to fetch watches", err))
			return
		}

		watches := []models.Watch{}
		if err := query.Order(orderBy).Limit(params.Limit).Offset(params.Offset()).Find(&watches).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to fetch watches", err))
			return
		}

		utils.Page(c, watches, utils.Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: utils.TotalPages(total, params.Limit),
		})
	}
}

// SearchWatches is the unpaginated quick search: name substring plus the
// basic filters, capped at 20 matches.
func SearchWatches(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := Criteria{
			Search:   c.Query("q"),
			Brand:    c.Query("brand"),
			Category: c.Query("category"),
		}
		var err error
		if criteria.MinPrice, err = parsePrice(c.Query("minPrice")); err != nil {
			utils.Fail(c, utils.ErrInvalidCriteria.Wrap(err))
			return
		}
		if criteria.MaxPrice, err = parsePrice(c.Query("maxPrice")); err != nil {
			utils.Fail(c, utils.ErrInvalidCriteria.Wrap(err))
			return
		}

		query := db.Model(&models.Watch{})
		for _, cond := range criteria.Conditions() {
			query = query.Where(cond.Expr, cond.Args...)
		}

		watches := []models.Watch{}
		if err := query.Limit(quickSearchLimit).Find(&watches).Error; err != nil {
			utils.Fail(c, utils.Internal("Search failed", err))
			return
		}
		utils.OK(c, watches)
	}
}

// GetFeaturedWatches returns up to 10 featured watches.
func GetFeaturedWatches(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		watches := []models.Watch{}
		if err := db.Where("is_featured = ?", true).Limit(10).Find(&watches).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to fetch featured watches", err))
			return
		}
		utils.OK(c, watches)
	}
}

// GetBestSellers returns up to 10 best-selling watches.
func GetBestSellers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		watches := []models.Watch{}
		if err := db.Where("is_best_seller = ?", true).Limit(10).Find(&watches).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to fetch best sellers", err))
			return
		}
		utils.OK(c, watches)
	}
}

type watchDetail struct {
	models.Watch
	Reviews []models.Review `json:"reviews"`
}

// GetWatchByID returns a single watch with its reviews.
func GetWatchByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, utils.Validation("Invalid watch ID"))
			return
		}

		var watch models.Watch
		if err := db.First(&watch, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, utils.NotFound("Watch not found"))
				return
			}
			utils.Fail(c, utils.Internal("Failed to fetch watch", err))
			return
		}

		reviews := []models.Review{}
		if err := db.Where("watch_id = ?", watch.ID).Find(&reviews).Error; err != nil {
			utils.Fail(c, utils.Internal("Failed to fetch reviews", err))
			return
		}

		utils.OK(c, watchDetail{Watch: watch, Reviews: reviews})
	}
}
