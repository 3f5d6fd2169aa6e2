package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokokita.shop/app/internal/http/middleware"
)

func ErrorPage(c *gin.Context, status int, msg string) {
	c.HTML(status, "error.html", gin.H{
		"Status":     status,
		"StatusText": http.StatusText(status),
		"Message":    msg,
		"RequestID":  middleware.GetRequestID(c),
	})
}
