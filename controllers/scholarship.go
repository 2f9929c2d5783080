package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"scholarhub/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// withRatings selects scholarship rows together with the average review
// rating, grouped per scholarship and left-joined by id. Scholarships
// without reviews carry a null avg_rating.
func (h *Controller) withRatings() *gorm.DB {
	return h.DB.Table("scholarships").
		Select("scholarships.*, ratings.avg_rating").
		Joins("LEFT JOIN (SELECT scholarship_id, AVG(rating) AS avg_rating FROM reviews GROUP BY scholarship_id) ratings ON ratings.scholarship_id = scholarships.id")
}

// AddScholarship stores a new scholarship listing. Moderator or Admin only.
func (h *Controller) AddScholarship(c *gin.Context) {
	var scholarship models.Scholarship
	if err := c.ShouldBindJSON(&scholarship); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if scholarship.PostDate.IsZero() {
		scholarship.PostDate = time.Now()
	}

	if err := h.DB.Create(&scholarship).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add scholarship"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inserted_id": scholarship.ID})
}

// GetAllScholarships returns every listing with its average rating.
// Optional exact-match filters narrow by category fields.
func (h *Controller) GetAllScholarships(c *gin.Context) {
	query := h.withRatings()
	if v := c.Query("scholarshipCategory"); v != "" {
		query = query.Where("scholarships.scholarship_category = ?", v)
	}
	if v := c.Query("subjectCategory"); v != "" {
		query = query.Where("scholarships.subject_category = ?", v)
	}
	if v := c.Query("degree"); v != "" {
		query = query.Where("scholarships.degree = ?", v)
	}

	records := []models.ScholarshipWithRating{}
	if err := query.Scan(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to fetch scholarships"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetTopScholarships returns the six cheapest-to-apply listings, most
// recently posted first among equal fees.
func (h *Controller) GetTopScholarships(c *gin.Context) {
	records := []models.ScholarshipWithRating{}
	err := h.withRatings().
		Order("scholarships.application_fees asc").
		Order("scholarships.post_date desc").
		Limit(6).
		Scan(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to fetch scholarships"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetScholarshipDetails returns one listing with its average rating.
func (h *Controller) GetScholarshipDetails(c *gin.Context) {
	records := []models.ScholarshipWithRating{}
	err := h.withRatings().
		Where("scholarships.id = ?", c.Param("id")).
		Limit(1).
		Scan(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to fetch scholarship"})
		return
	}
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "scholarship not found"})
		return
	}
	c.JSON(http.StatusOK, records[0])
}

// SearchScholarships matches the query string case-insensitively against
// scholarship name, university name and degree.
func (h *Controller) SearchScholarships(c *gin.Context) {
	pattern := "%" + strings.ToLower(c.Query("q")) + "%"

	records := []models.Scholarship{}
	err := h.DB.
		Where("LOWER(scholarship_name) LIKE ?", pattern).
		Or("LOWER(university_name) LIKE ?", pattern).
		Or("LOWER(degree) LIKE ?", pattern).
		Find(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to search scholarships"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// SortScholarships orders listings by application fees, ascending or
// descending per the path parameter.
func (h *Controller) SortScholarships(c *gin.Context) {
	direction := c.Param("type")
	if direction != "asc" && direction != "desc" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort type must be asc or desc"})
		return
	}

	records := []models.Scholarship{}
	if err := h.DB.Order("application_fees " + direction).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to sort scholarships"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// PaginateScholarships returns one page of listings. Pages are 1-based.
func (h *Controller) PaginateScholarships(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 {
		size = 10
	}

	records := []models.Scholarship{}
	if err := h.DB.Offset((page - 1) * size).Limit(size).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to fetch scholarships"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// CountScholarships returns the total number of listings.
func (h *Controller) CountScholarships(c *gin.Context) {
	var count int64
	if err := h.DB.Model(&models.Scholarship{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to count scholarships"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": count})
}

// EditScholarship applies a partial update to a listing. Moderator or
// Admin only. Zero-valued fields in the body are left untouched.
func (h *Controller) EditScholarship(c *gin.Context) {
	var input models.Scholarship
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	input.ID = 0

	result := h.DB.Model(&models.Scholarship{}).Where("id = ?", c.Param("id")).Updates(input)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update scholarship"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modified_count": result.RowsAffected})
}

// DeleteScholarship removes a listing by id. Moderator or Admin only.
func (h *Controller) DeleteScholarship(c *gin.Context) {
	result := h.DB.Delete(&models.Scholarship{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete scholarship"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_count": result.RowsAffected})
}
