package render

import (
	"github.com/gin-gonic/gin"

	"tokokita.shop/app/internal/http/middleware"
)

// Page renders an HTML template with the ambient page state (flash message,
// cart badge count) plus the handler's view model under "Data".
func Page(c *gin.Context, status int, name string, data any) {
	c.HTML(status, name, gin.H{
		"Flash":     middleware.GetFlash(c),
		"CartCount": middleware.GetCartCount(c),
		"Data":      data,
	})
}
