package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/TechXTT/blog/internal/models"
)

// Index serves GET /: the blog listing. The listing is not wired to the
// database yet and is always empty.
func Index(_ *gin.Context) (Page, error) {
	blogs := []models.Blog{}
	return Page{
		TemplateKey: "blogs.html",
		"users":     blogs,
	}, nil
}
