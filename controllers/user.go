package controllers

import (
	"net/http"

	"scholarhub/middlewares"
	"scholarhub/models"

	"github.com/gin-gonic/gin"
)

// CreateUser registers a user on first sign-in. Creation is idempotent by
// email: an existing record is left untouched and signaled through the
// message field rather than an error status.
func (h *Controller) CreateUser(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email" binding:"required,email"`
		PhotoURL string `json:"photo_url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	var existing models.User
	if err := h.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "inserted_id": nil})
		return
	}

	user := models.User{Name: input.Name, Email: input.Email, PhotoURL: input.PhotoURL}
	if err := h.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"inserted_id": user.ID})
}

// GetUsers returns every user record. Admin only.
func (h *Controller) GetUsers(c *gin.Context) {
	users := []models.User{}
	if err := h.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserRole resolves the role flags for the given email. The path email
// must match the authenticated email regardless of role.
func (h *Controller) GetUserRole(c *gin.Context) {
	email := c.Param("email")
	if c.GetString(middlewares.EmailKey) != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	var user models.User
	h.DB.Where("email = ?", email).First(&user)

	admin := user.Role == models.RoleAdmin
	moderator := user.Role == models.RoleModerator
	c.JSON(http.StatusOK, gin.H{
		"admin":     admin,
		"moderator": moderator,
		"user":      !admin && !moderator,
	})
}

// UpdateUserRole sets the role of the addressed user. Admin only; the role
// must be one of the enumerated roles.
func (h *Controller) UpdateUserRole(c *gin.Context) {
	var input struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !models.ValidRole(input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	result := h.DB.Model(&models.User{}).Where("id = ?", c.Param("id")).Update("role", input.Role)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modified_count": result.RowsAffected})
}

// DeleteUser removes a user record by id. Admin only.
func (h *Controller) DeleteUser(c *gin.Context) {
	result := h.DB.Delete(&models.User{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_count": result.RowsAffected})
}
