package controllers

import (
	"net/http"
	"time"

	"scholarhub/models"

	"github.com/gin-gonic/gin"
)

// Apply stores a scholarship application. The referenced scholarship id is
// stored as submitted without cross-checking the scholarships table.
func (h *Controller) Apply(c *gin.Context) {
	var application models.Application
	if err := c.ShouldBindJSON(&application); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if application.ApplyDate.IsZero() {
		application.ApplyDate = time.Now()
	}
	if application.Status == "" {
		application.Status = models.StatusPending
	}

	if err := h.DB.Create(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save application"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inserted_id": application.ID})
}

// GetApplications lists applications, optionally narrowed to one
// applicant email.
func (h *Controller) GetApplications(c *gin.Context) {
	query := h.DB
	if email := c.Query("email"); email != "" {
		query = query.Where("user_email = ?", email)
	}

	records := []models.Application{}
	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to fetch applications"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// EditApplication applies a partial update to an application by id.
func (h *Controller) EditApplication(c *gin.Context) {
	var input models.Application
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	input.ID = 0

	result := h.DB.Model(&models.Application{}).Where("id = ?", c.Param("id")).Updates(input)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update application"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modified_count": result.RowsAffected})
}

// UpdateApplicationStatus moves an application along the review pipeline.
func (h *Controller) UpdateApplicationStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	switch input.Status {
	case models.StatusPending, models.StatusProcessing, models.StatusCompleted, models.StatusRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	result := h.DB.Model(&models.Application{}).Where("id = ?", c.Param("id")).Update("status", input.Status)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modified_count": result.RowsAffected})
}

// UpdateApplicationFeedback attaches reviewer feedback to an application.
func (h *Controller) UpdateApplicationFeedback(c *gin.Context) {
	var input struct {
		Feedback string `json:"feedback" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	result := h.DB.Model(&models.Application{}).Where("id = ?", c.Param("id")).Update("feedback", input.Feedback)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modified_count": result.RowsAffected})
}

// DeleteApplication removes an application by id.
func (h *Controller) DeleteApplication(c *gin.Context) {
	result := h.DB.Delete(&models.Application{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete application"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_count": result.RowsAffected})
}
