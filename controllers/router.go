package controllers

import (
	"net/http"

	"scholarhub/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires every route to its handler, with the authorization
// chain applied per route group.
func SetupRouter(h *Controller, db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://scholarhub-12.web.app"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Public routes
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "server connected successfully")
	})
	r.POST("/jwt", h.IssueToken)
	r.POST("/users", h.CreateUser)
	r.GET("/allScholarships", h.GetAllScholarships)
	r.GET("/topScholarship", h.GetTopScholarships)
	r.GET("/scholarshipDetails/:id", h.GetScholarshipDetails)
	r.GET("/search", h.SearchScholarships)
	r.GET("/sorting/:type", h.SortScholarships)
	r.GET("/allScholarshipPagination", h.PaginateScholarships)
	r.GET("/total", h.CountScholarships)
	r.GET("/allReviews", h.GetAllReviews)
	r.GET("/reviews/:scholarshipId", h.GetScholarshipReviews)
	r.POST("/addReview", h.AddReview)
	r.PATCH("/editReview/:id", h.EditReview)
	r.DELETE("/deleteReview/:id", h.DeleteReview)
	r.POST("/appliedScholarship", h.Apply)
	r.GET("/appliedScholarships", h.GetApplications)
	r.PATCH("/editAppliedScholarship/:id", h.EditApplication)
	r.PATCH("/applicationStatus/:id", h.UpdateApplicationStatus)
	r.PATCH("/applicationFeedback/:id", h.UpdateApplicationFeedback)
	r.DELETE("/deleteAppliedScholarship/:id", h.DeleteApplication)
	r.POST("/stripe", h.CreatePayment)

	// Authenticated routes
	auth := r.Group("/")
	auth.Use(middlewares.Authenticate(h.TokenSecret))
	auth.GET("/users/role/:email", h.GetUserRole)

	// Moderator routes (Admin satisfies the check)
	moderator := auth.Group("/")
	moderator.Use(middlewares.RequireModerator(db))
	moderator.POST("/addScholarship", h.AddScholarship)
	moderator.PATCH("/editScholarship/:id", h.EditScholarship)
	moderator.DELETE("/deleteScholarship/:id", h.DeleteScholarship)

	// Admin routes
	admin := auth.Group("/")
	admin.Use(middlewares.RequireAdmin(db))
	admin.GET("/users", h.GetUsers)
	admin.PATCH("/users/role/:id", h.UpdateUserRole)
	admin.DELETE("/users/:id", h.DeleteUser)

	return r
}
