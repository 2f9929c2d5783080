package controllers

import (
	"net/http"
	"time"

	"scholarhub/models"

	"github.com/gin-gonic/gin"
)

// AddReview stores a review against a scholarship id.
func (h *Controller) AddReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if review.ReviewDate.IsZero() {
		review.ReviewDate = time.Now()
	}

	if err := h.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inserted_id": review.ID})
}

// GetAllReviews returns every review record.
func (h *Controller) GetAllReviews(c *gin.Context) {
	records := []models.Review{}
	if err := h.DB.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetScholarshipReviews returns the reviews for one scholarship.
func (h *Controller) GetScholarshipReviews(c *gin.Context) {
	records := []models.Review{}
	err := h.DB.Where("scholarship_id = ?", c.Param("scholarshipId")).Find(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// EditReview applies a partial update to a review by id.
func (h *Controller) EditReview(c *gin.Context) {
	var input models.Review
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	input.ID = 0

	result := h.DB.Model(&models.Review{}).Where("id = ?", c.Param("id")).Updates(input)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modified_count": result.RowsAffected})
}

// DeleteReview removes a review by id.
func (h *Controller) DeleteReview(c *gin.Context) {
	result := h.DB.Delete(&models.Review{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_count": result.RowsAffected})
}
