package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tokokita.shop/app/internal/shared/apperr"
)

func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandler turns the last gin error into a response after the handler
// chain ran. Handlers report failures with Fail and return; rendering and
// status mapping happen here.
func ErrorHandler(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperr.HTTPStatus(err)
		publicMsg := apperr.PublicMessage(err)
		rid := GetRequestID(c)

		l.LogAttrs(c.Request.Context(), slog.LevelError, "request_failed",
			slog.String("request_id", rid),
			slog.Int("status", status),
			slog.Any("err", err),
		)

		c.Abort()
		c.HTML(status, "error.html", gin.H{
			"Status":     status,
			"StatusText": http.StatusText(status),
			"Message":    publicMsg,
			"RequestID":  rid,
		})
	}
}
