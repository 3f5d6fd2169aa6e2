package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokokita.shop/app/internal/http/render"
	"tokokita.shop/app/pkg/view"
)

// PagesHandler serves the static FAQ and team pages.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

func (h *PagesHandler) FAQ(c *gin.Context) {
	render.Page(c, http.StatusOK, "faq.html", nil)
}

func (h *PagesHandler) About(c *gin.Context) {
	members := []view.TeamMember{
		{Name: "Galang Sopyan", StudentID: "312410046", Photo: "IMG-20250113-WA0001_1_.jpg"},
		{Name: "Ade Teguh Ardiansyah", StudentID: "312410014", Photo: "1715320189513.jpg"},
		{Name: "Muhammad Rizki", StudentID: "312410039", Photo: "IMG20240303150826.jpg"},
		{Name: "Fakhrul Mudzakkir Shiddiq", StudentID: "312410041", Photo: "pasfotopb.png"},
		{Name: "Fasyal Muhammad", StudentID: "312410023", Photo: "0B2C35D5-AADA-400F-9646-55D0730548CD.jpeg"},
	}
	render.Page(c, http.StatusOK, "about.html", view.AboutPage{Members: members})
}
