package controllers

import (
	"net/http"

	"scholarhub/utils"

	"github.com/gin-gonic/gin"
)

// IssueToken generates a short-lived access token for the submitted
// identity. The endpoint itself performs no credential check; whatever
// authenticated the caller to reach it is outside this server.
func (h *Controller) IssueToken(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	token, err := utils.IssueToken(input.Email, h.TokenSecret, utils.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
