package http

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nicexwisly/Linebot-Jonggajang/internal/domain"
	"github.com/nicexwisly/Linebot-Jonggajang/internal/infrastructure/catalog"
	"github.com/nicexwisly/Linebot-Jonggajang/internal/metrics"
	"github.com/nicexwisly/Linebot-Jonggajang/internal/usecase"
)

// triggerPrefix marks chat messages addressed to the bot. Everything else in
// the group chat is ignored.
const triggerPrefix = "@@"

// maxUploadBytes caps catalog uploads (the daily export is ~2 MB).
const maxUploadBytes = 32 << 20

// Handler holds dependencies for HTTP handlers
type Handler struct {
	engine    *usecase.SearchService
	store     *catalog.Store
	replies   domain.ReplyClient
	collector *metrics.Collector
}

// NewHandler creates a new HTTP handler
func NewHandler(engine *usecase.SearchService, store *catalog.Store, replies domain.ReplyClient, collector *metrics.Collector) *Handler {
	return &Handler{
		engine:    engine,
		store:     store,
		replies:   replies,
		collector: collector,
	}
}

// Home returns the readiness banner
func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Jonggajang MM Bot Ready!")
}

// HealthCheck returns the health status of the service and catalog stats
func (h *Handler) HealthCheck(c *gin.Context) {
	resp := gin.H{
		"status":  "healthy",
		"service": "linebot-jonggajang",
		"version": "1.0.0",
		"catalog": gin.H{
			"populated": h.store.Populated(),
			"products":  h.store.Len(),
		},
	}
	if at := h.store.ReplacedAt(); !at.IsZero() {
		resp["catalog"].(gin.H)["replacedAt"] = at
	}
	c.JSON(http.StatusOK, resp)
}

// webhookPayload mirrors the LINE webhook event envelope, text messages only.
type webhookPayload struct {
	Events []webhookEvent `json:"events"`
}

type webhookEvent struct {
	Type       string `json:"type"`
	ReplyToken string `json:"replyToken"`
	Message    struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"message"`
}

// Callback handles LINE webhook events. Each triggered text message is
// answered with one engine result; a delivery failure for one event never
// fails the webhook, LINE would only retry the whole batch.
func (h *Handler) Callback(c *gin.Context) {
	var payload webhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
		return
	}

	for _, event := range payload.Events {
		if event.Type != "message" || event.Message.Type != "text" {
			continue
		}
		text := strings.TrimSpace(event.Message.Text)
		if !strings.HasPrefix(text, triggerPrefix) {
			continue
		}

		keyword := strings.TrimPrefix(text, triggerPrefix)
		result := h.engine.Search(keyword)

		err := h.replies.Reply(c.Request.Context(), event.ReplyToken, result.Text)
		h.collector.ObserveReply(err == nil)
		if err != nil {
			log.Printf("[HTTP] reply failed for keyword %q: %v", keyword, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// UploadCatalog replaces the catalog from a JSON array in the request body
func (h *Handler) UploadCatalog(c *gin.Context) {
	var records []domain.ProductRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	h.engine.ReplaceCatalog(records)
	c.JSON(http.StatusOK, gin.H{"status": "success", "records": len(records)})
}

// UploadCatalogFile replaces the catalog from a multipart upload carrying the
// JSON export as a file field. Supports the spreadsheet-export workflow where
// the converter posts the file it produced.
func (h *Handler) UploadCatalogFile(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "missing file field"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "unreadable file"})
		return
	}

	var records []domain.ProductRecord
	if err := json.Unmarshal(data, &records); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	h.engine.ReplaceCatalog(records)
	c.JSON(http.StatusOK, gin.H{"status": "success", "records": len(records)})
}
