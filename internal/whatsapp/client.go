package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"template-gateway/internal/config"
	"template-gateway/internal/template"

	"github.com/rs/zerolog"
)

// Client talks to the WhatsApp Cloud API. It consumes assembled templates
// from the core package purely through their serialized shape.
type Client struct {
	Config  *config.Config
	BaseURL string // overridable for tests
	HTTP    *http.Client
	log     zerolog.Logger
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		Config:  cfg,
		BaseURL: "https://graph.facebook.com/" + cfg.GraphAPIVersion,
		HTTP:    &http.Client{},
		log:     logger,
	}
}

// --- Message Structures ---

// TemplateMessage is the Cloud API envelope around an assembled template.
type TemplateMessage struct {
	MessagingProduct string             `json:"messaging_product"`
	RecipientType    string             `json:"recipient_type,omitempty"`
	To               string             `json:"to"`
	Type             string             `json:"type"`
	Template         *template.Template `json:"template"`
}

type SendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// --- Helper Functions ---

func (c *Client) sendRequest(ctx context.Context, method, url string, body interface{}) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.Config.WhatsAppToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return respBody, fmt.Errorf("API error: %s - %s", resp.Status, string(respBody))
	}

	return respBody, nil
}

// --- Messaging Methods ---

// SendTemplate delivers an assembled template to one recipient and returns
// the provider-assigned message ID.
func (c *Client) SendTemplate(ctx context.Context, to string, tmpl *template.Template) (string, error) {
	msg := TemplateMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "template",
		Template:         tmpl,
	}

	url := fmt.Sprintf("%s/%s/messages", c.BaseURL, c.Config.PhoneNumberID)
	respBody, err := c.sendRequest(ctx, "POST", url, msg)
	if err != nil {
		c.log.Error().Err(err).Str("to", to).Str("template", tmpl.Name).Msg("send failed")
		return "", err
	}

	var sendResp SendResponse
	if err := json.Unmarshal(respBody, &sendResp); err != nil {
		return "", err
	}

	providerID := ""
	if len(sendResp.Messages) > 0 {
		providerID = sendResp.Messages[0].ID
	}
	c.log.Info().Str("to", to).Str("template", tmpl.Name).Str("message_id", providerID).Msg("template sent")
	return providerID, nil
}

// --- Template Management Methods ---

func (c *Client) GetTemplates(ctx context.Context) (interface{}, error) {
	url := fmt.Sprintf("%s/%s/message_templates", c.BaseURL, c.Config.WhatsAppBusinessAccountID)
	resp, err := c.sendRequest(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	var result interface{}
	err = json.Unmarshal(resp, &result)
	return result, err
}

func (c *Client) CreateTemplate(ctx context.Context, templateData interface{}) (interface{}, error) {
	url := fmt.Sprintf("%s/%s/message_templates", c.BaseURL, c.Config.WhatsAppBusinessAccountID)
	resp, err := c.sendRequest(ctx, "POST", url, templateData)
	if err != nil {
		return nil, err
	}

	var result interface{}
	err = json.Unmarshal(resp, &result)
	return result, err
}

func (c *Client) DeleteTemplate(ctx context.Context, templateName string) error {
	// DELETE https://graph.facebook.com/{version}/{waba_id}/message_templates?name={name}
	url := fmt.Sprintf("%s/%s/message_templates?name=%s", c.BaseURL, c.Config.WhatsAppBusinessAccountID, templateName)
	_, err := c.sendRequest(ctx, "DELETE", url, nil)
	return err
}
