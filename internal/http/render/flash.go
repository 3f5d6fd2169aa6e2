package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokokita.shop/app/internal/http/flash"
	"tokokita.shop/app/internal/http/middleware"
	"tokokita.shop/app/pkg/view"
)

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
