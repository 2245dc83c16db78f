package plan

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func personParam(c *gin.Context) (Person, bool) {
	person := Person(c.Param("person"))
	if !person.Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown person"})
		return "", false
	}
	return person, true
}

// GET /profiles/:person
func (h *Handler) GetProfile(c *gin.Context) {
	person, ok := personParam(c)
	if !ok {
		return
	}

	p, err := h.service.GetProfile(c.Request.Context(), person)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// PATCH /profiles/:person
func (h *Handler) UpdateProfile(c *gin.Context) {
	person, ok := personParam(c)
	if !ok {
		return
	}

	var upd ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.service.UpdateProfile(c.Request.Context(), person, upd)
	if err != nil {
		if errors.Is(err, ErrUnknownPerson) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /profiles/:person/plan
func (h *Handler) GetPlan(c *gin.Context) {
	person, ok := personParam(c)
	if !ok {
		return
	}

	result, err := h.service.GetPlan(c.Request.Context(), person)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /plans
func (h *Handler) GetAllPlans(c *gin.Context) {
	plans, err := h.service.GetAllPlans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}
