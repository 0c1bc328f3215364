package api

import (
	"encoding/json"
	"net/http"
	"time"

	"template-gateway/internal/config"
	"template-gateway/internal/database"
	"template-gateway/internal/events"
	"template-gateway/internal/models"
	"template-gateway/internal/whatsapp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type TemplateHandler struct {
	Client    *whatsapp.Client
	Config    *config.Config
	Publisher events.Publisher
	log       zerolog.Logger
}

func NewTemplateHandler(client *whatsapp.Client, cfg *config.Config, pub events.Publisher, logger zerolog.Logger) *TemplateHandler {
	return &TemplateHandler{Client: client, Config: cfg, Publisher: pub, log: logger}
}

// PreviewTemplate validates a compose request and echoes back the payload
// that would be sent, without sending anything.
func (h *TemplateHandler) PreviewTemplate(c *gin.Context) {
	var req ComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tmpl, err := buildTemplate(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"template": tmpl})
}

type SendTemplateRequest struct {
	To       string         `json:"to" binding:"required"`
	Template ComposeRequest `json:"template" binding:"required"`
}

// SendTemplate composes, sends and logs one template message.
func (h *TemplateHandler) SendTemplate(c *gin.Context) {
	var req SendTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tmpl, err := buildTemplate(req.Template)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, err := json.Marshal(tmpl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	record := models.OutboundMessage{
		ID:           uuid.NewString(),
		WaID:         req.To,
		TemplateName: tmpl.Name,
		Language:     tmpl.Language.Code,
		Payload:      string(payload),
	}

	providerID, sendErr := h.Client.SendTemplate(c.Request.Context(), req.To, tmpl)
	evt := events.MessageEvent{
		ID:           record.ID,
		WaID:         req.To,
		TemplateName: tmpl.Name,
		Language:     tmpl.Language.Code,
		OccurredAt:   time.Now().UTC(),
	}

	if sendErr != nil {
		record.Status = "failed"
		record.Error = sendErr.Error()
		evt.Status = "failed"
		evt.Error = sendErr.Error()
	} else {
		record.Status = "sent"
		record.ProviderID = providerID
		evt.Status = "sent"
	}

	if err := database.GormDB.Create(&record).Error; err != nil {
		h.log.Error().Err(err).Str("wa_id", req.To).Msg("failed to log outbound message")
	}

	key := events.KeyMessageSent
	if sendErr != nil {
		key = events.KeyMessageFailed
	}
	if err := h.Publisher.Publish(c.Request.Context(), key, evt); err != nil {
		h.log.Error().Err(err).Str("key", key).Msg("failed to publish event")
	}

	if sendErr != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": sendErr.Error(), "message_id": record.ID})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "Message sent",
		"message_id":  record.ID,
		"provider_id": providerID,
	})
}

type BroadcastRequest struct {
	Recipients []string       `json:"recipients" binding:"required"`
	Template   ComposeRequest `json:"template" binding:"required"`
}

// SendBroadcast fans one composed template out to a recipient list.
func (h *TemplateHandler) SendBroadcast(c *gin.Context) {
	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tmpl, err := buildTemplate(req.Template)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, err := json.Marshal(tmpl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Iterate and send (in a real app, use a queue)
	successCount := 0
	for _, waID := range req.Recipients {
		record := models.OutboundMessage{
			ID:           uuid.NewString(),
			WaID:         waID,
			TemplateName: tmpl.Name,
			Language:     tmpl.Language.Code,
			Payload:      string(payload),
		}

		providerID, sendErr := h.Client.SendTemplate(c.Request.Context(), waID, tmpl)
		evt := events.MessageEvent{
			ID:           record.ID,
			WaID:         waID,
			TemplateName: tmpl.Name,
			Language:     tmpl.Language.Code,
			OccurredAt:   time.Now().UTC(),
		}

		key := events.KeyMessageSent
		if sendErr != nil {
			record.Status = "failed"
			record.Error = sendErr.Error()
			evt.Status = "failed"
			evt.Error = sendErr.Error()
			key = events.KeyMessageFailed
			h.log.Warn().Err(sendErr).Str("wa_id", waID).Msg("broadcast send failed")
		} else {
			record.Status = "sent"
			record.ProviderID = providerID
			evt.Status = "sent"
			successCount++
		}

		if err := database.GormDB.Create(&record).Error; err != nil {
			h.log.Error().Err(err).Str("wa_id", waID).Msg("failed to log outbound message")
		}

		if err := h.Publisher.Publish(c.Request.Context(), key, evt); err != nil {
			h.log.Error().Err(err).Str("key", key).Msg("failed to publish event")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "Broadcast processed",
		"sent_to": successCount,
		"total":   len(req.Recipients),
	})
}

// GetMessages returns the outbound send log, newest first.
func (h *TemplateHandler) GetMessages(c *gin.Context) {
	var messages []models.OutboundMessage
	if err := database.GormDB.Order("created_at DESC").Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GetTemplates returns the locally synced template catalog.
func (h *TemplateHandler) GetTemplates(c *gin.Context) {
	var templates []models.Template
	if err := database.GormDB.Find(&templates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, templates)
}

// CreateTemplate submits a new template definition to Meta for review.
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	if h.Config.WhatsAppBusinessAccountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "WABA_ID not configured in .env"})
		return
	}

	var templateData interface{}
	if err := c.ShouldBindJSON(&templateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Client.CreateTemplate(c.Request.Context(), templateData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SyncTemplates fetches the template catalog from Meta and stores it locally.
func (h *TemplateHandler) SyncTemplates(c *gin.Context) {
	if h.Config.WhatsAppBusinessAccountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "WABA_ID not configured in .env"})
		return
	}

	rawTemplates, err := h.Client.GetTemplates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch templates from Meta: " + err.Error()})
		return
	}

	templatesMap, ok := rawTemplates.(map[string]interface{})
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid response format from Meta"})
		return
	}

	data, ok := templatesMap["data"].([]interface{})
	if !ok {
		c.JSON(http.StatusOK, gin.H{"status": "No templates found", "count": 0})
		return
	}

	syncedCount := 0
	for _, item := range data {
		tmpl, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		id, _ := tmpl["id"].(string)
		name, _ := tmpl["name"].(string)
		if id == "" || name == "" {
			continue
		}
		language, _ := tmpl["language"].(string)
		category, _ := tmpl["category"].(string)
		status, _ := tmpl["status"].(string)

		componentsJSON := "[]"
		if components, ok := tmpl["components"]; ok {
			compBytes, err := json.Marshal(components)
			if err == nil {
				componentsJSON = string(compBytes)
			}
		}

		record := models.Template{
			ID:         id,
			Name:       name,
			Language:   language,
			Category:   category,
			Status:     status,
			Components: componentsJSON,
		}

		if err := database.GormDB.Save(&record).Error; err != nil {
			h.log.Error().Err(err).Str("name", name).Msg("error saving template")
			continue
		}
		syncedCount++
	}

	c.JSON(http.StatusOK, gin.H{"status": "Templates synced", "count": syncedCount})
}
