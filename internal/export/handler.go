package export

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Karmadibsa/OptiCal-Center/internal/catalog"
)

// Uploader pushes a generated document to object storage and returns its
// public URL. Nil when no storage is configured.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Handler struct {
	catalog  *catalog.Service
	uploader Uploader
}

func NewHandler(cat *catalog.Service, uploader Uploader) *Handler {
	return &Handler{catalog: cat, uploader: uploader}
}

// GET /export/pdf
// Streams the roadmap PDF. With ?share=1 and storage configured, the PDF
// is uploaded instead and a public URL returned.
func (h *Handler) ExportPDF(c *gin.Context) {
	doc, err := BuildPDF(h.catalog)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pdf generation failed"})
		return
	}

	if c.Query("share") == "1" {
		if h.uploader == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "export storage not configured"})
			return
		}

		key := "exports/" + uuid.New().String() + ".pdf"
		url, err := h.uploader.Upload(c.Request.Context(), key, bytes.NewReader(doc), "application/pdf")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="roadmap_frigo.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
