package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/Masterminds/sprig/v3"
	"github.com/gin-gonic/gin"

	"github.com/TechXTT/blog/pkg/logger"
)

// TemplateKey names the template a Page is rendered with.
const TemplateKey = "__template__"

//go:embed templates/*.html
var templatesFS embed.FS

// Page is the context a handler hands to the renderer.
type Page map[string]any

// PageFunc produces a Page for a request.
type PageFunc func(c *gin.Context) (Page, error)

// Templates parses the embedded HTML templates with sprig functions.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(sprig.FuncMap()).ParseFS(templatesFS, "templates/*.html")
}

// Render adapts a PageFunc to gin. A page naming a template is rendered as
// HTML through the engine's templates; any other page is written as JSON.
func Render(h PageFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := h(c)
		if err != nil {
			logger.FromContext(c.Request.Context()).Error("handler failed", "path", c.FullPath(), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if name, ok := page[TemplateKey].(string); ok && name != "" {
			c.HTML(http.StatusOK, name, page)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}
