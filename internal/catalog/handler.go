package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type sectionView struct {
	Section string `json:"section"`
	Items   []Row  `json:"items"`
}

func (h *Handler) grouped(category string) []sectionView {
	sections, bySection := h.service.Grouped(category)
	views := make([]sectionView, 0, len(sections))
	for _, section := range sections {
		views = append(views, sectionView{Section: section, Items: bySection[section]})
	}
	return views
}

// GET /catalog
func (h *Handler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"diet":        h.grouped(CategoryDiet),
		"supplements": h.grouped(CategorySupplement),
		"info":        h.grouped(CategoryInfo),
	})
}
