package batch

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Karmadibsa/OptiCal-Center/internal/plan"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// scheduleView flattens the schedule into "Day-Meal" keys, the shape the
// frontend keeps its checkbox state in.
func scheduleView(s Schedule) map[string]Selection {
	view := make(map[string]Selection, len(s))
	for key, sel := range s {
		view[key.Day+"-"+key.Meal] = sel
	}
	return view
}

func (h *Handler) respondSchedule(c *gin.Context, s Schedule) {
	c.JSON(http.StatusOK, gin.H{"schedule": scheduleView(s)})
}

// GET /schedule
func (h *Handler) GetSchedule(c *gin.Context) {
	schedule, err := h.service.GetSchedule(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.respondSchedule(c, schedule)
}

type toggleRequest struct {
	Day    string `json:"day"`
	Meal   string `json:"meal"`
	Person string `json:"person"`
}

// POST /schedule/toggle
func (h *Handler) Toggle(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	schedule, err := h.service.Toggle(
		c.Request.Context(),
		SlotKey{Day: req.Day, Meal: req.Meal},
		plan.Person(req.Person),
	)
	if err != nil {
		if errors.Is(err, ErrInvalidSlot) || errors.Is(err, plan.ErrUnknownPerson) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.respondSchedule(c, schedule)
}

// POST /schedule/all
func (h *Handler) SelectAll(c *gin.Context) {
	schedule, err := h.service.SelectAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.respondSchedule(c, schedule)
}

// POST /schedule/weekdays
func (h *Handler) SelectWeekdays(c *gin.Context) {
	schedule, err := h.service.SelectWeekdays(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.respondSchedule(c, schedule)
}

// POST /schedule/reset
func (h *Handler) Reset(c *gin.Context) {
	if err := h.service.Reset(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.respondSchedule(c, Schedule{})
}

// GET /schedule/totals
func (h *Handler) Totals(c *gin.Context) {
	totals, err := h.service.Totals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rounded := totals.Rounded()

	// Stable copy-paste shopping list, one "Item: Ng" line per staple.
	items := make([]string, 0, len(rounded))
	for item := range rounded {
		items = append(items, item)
	}
	sort.Strings(items)

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s: %dg", item, rounded[item]))
	}

	c.JSON(http.StatusOK, gin.H{
		"totals": rounded,
		"misses": totals.Misses,
		"text":   strings.Join(lines, "\n"),
	})
}
