package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"template-gateway/internal/config"
	"template-gateway/internal/template"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		WhatsAppToken:             "test-token",
		PhoneNumberID:             "123456",
		WhatsAppBusinessAccountID: "654321",
		GraphAPIVersion:           "v19.0",
	}
	c := NewClient(cfg, zerolog.Nop())
	c.BaseURL = srv.URL
	return c
}

func TestSendTemplate(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"messaging_product":"whatsapp","messages":[{"id":"wamid.ABC123"}]}`))
	})

	tmpl, err := template.New("hello_world", "en_US")
	require.NoError(t, err)

	providerID, err := c.SendTemplate(context.Background(), "15551234567", tmpl)
	require.NoError(t, err)
	require.Equal(t, "wamid.ABC123", providerID)

	require.Equal(t, "/123456/messages", gotPath)
	require.Equal(t, "Bearer test-token", gotAuth)
	require.Equal(t, "whatsapp", gotBody["messaging_product"])
	require.Equal(t, "template", gotBody["type"])
	require.Equal(t, "15551234567", gotBody["to"])

	sent, ok := gotBody["template"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "hello_world", sent["name"])
	lang, ok := sent["language"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "en_US", lang["code"])
	require.Equal(t, "deterministic", lang["policy"])
	_, hasComponents := sent["components"]
	require.False(t, hasComponents, "components must be omitted when none supplied")
}

func TestSendTemplateAPIError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"(#132001) Template name does not exist"}}`))
	})

	tmpl, err := template.New("missing_template", "en")
	require.NoError(t, err)

	_, err = c.SendTemplate(context.Background(), "15551234567", tmpl)
	require.Error(t, err)
	require.Contains(t, err.Error(), "132001")
}

func TestGetTemplates(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/654321/message_templates", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"data":[{"id":"1","name":"hello_world","language":"en_US","status":"APPROVED"}]}`))
	})

	result, err := c.GetTemplates(context.Background())
	require.NoError(t, err)

	m, ok := result.(map[string]any)
	require.True(t, ok)
	data, ok := m["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
}

func TestCreateTemplate(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/654321/message_templates", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "order_confirmation", body["name"])

		w.Write([]byte(`{"id":"9001","status":"PENDING"}`))
	})

	result, err := c.CreateTemplate(context.Background(), map[string]any{
		"name":     "order_confirmation",
		"language": "en_US",
		"category": "UTILITY",
	})
	require.NoError(t, err)

	m, ok := result.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "9001", m["id"])
	require.Equal(t, "PENDING", m["status"])
}

func TestDeleteTemplate(t *testing.T) {
	called := false
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "hello_world", r.URL.Query().Get("name"))
		w.Write([]byte(`{"success":true}`))
	})

	require.NoError(t, c.DeleteTemplate(context.Background(), "hello_world"))
	require.True(t, called)
}
