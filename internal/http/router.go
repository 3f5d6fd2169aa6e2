package http

import (
	"log/slog"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"tokokita.shop/app/internal/catalog"
	"tokokita.shop/app/internal/config"
	"tokokita.shop/app/internal/http/cartcookie"
	"tokokita.shop/app/internal/http/flash"
	"tokokita.shop/app/internal/http/handlers"
	"tokokita.shop/app/internal/http/middleware"
)

// NewRouter wires the middleware chain, codecs and page handlers.
func NewRouter(logger *slog.Logger, cfg *config.Config, client *catalog.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	secret := []byte(cfg.CookieSecret)
	flashCodec := flash.NewCodec(secret, cfg.FlashCookieName, cfg.SecureCookies)
	cartCodec := cartcookie.New(secret, cfg.CartCookieName, cfg.SecureCookies)

	r := gin.New()
	// ErrorHandler sits outside Recovery: a panic unwinds to Recovery, which
	// records it as an error, and ErrorHandler still gets to render the page.
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.ErrorHandler(logger),
		middleware.Recovery(logger),
		middleware.FlashMiddleware(flashCodec),
		middleware.CartCount(middleware.CartCountCfg{CookieName: cfg.CartCookieName}),
	)

	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	home := handlers.NewHomeHandler(client)
	cat := handlers.NewCatalogHandler(client)
	detail := handlers.NewProductDetailHandler(client)
	dash := handlers.NewDashboardHandler(client)
	cartH := handlers.NewCartHandler(client, flashCodec, cartCodec)
	checkout := handlers.NewCheckoutHandler(flashCodec, cartCodec)
	pages := handlers.NewPagesHandler()

	r.GET("/", home.Get)
	r.GET("/catalog", cat.Get)
	r.GET("/product/:id", detail.Detail)
	r.GET("/dashboard", dash.Get)
	r.GET("/faq", pages.FAQ)
	r.GET("/about", pages.About)

	r.GET("/cart", cartH.Show)

	// Cart mutations are commands, so they ride on POST. The old app exposed
	// them as GETs; those paths stay registered as harmless redirects so
	// stale links and crawlers never mutate anything.
	r.POST("/add_to_cart/:id", cartH.Add)
	r.POST("/remove_from_cart/:id", cartH.Remove)
	r.POST("/cart/increase/:id", cartH.Increase)
	r.POST("/cart/decrease/:id", cartH.Decrease)
	r.POST("/checkout", checkout.Post)

	redirectToCart := func(c *gin.Context) {
		c.Redirect(stdhttp.StatusSeeOther, "/cart")
	}
	r.GET("/add_to_cart/:id", redirectToCart)
	r.GET("/remove_from_cart/:id", redirectToCart)
	r.GET("/cart/increase/:id", redirectToCart)
	r.GET("/cart/decrease/:id", redirectToCart)

	return r
}
