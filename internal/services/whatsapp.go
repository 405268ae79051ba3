package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TextSender sends a plain text message to a phone number.
type TextSender interface {
	SendText(ctx context.Context, to, body string) (string, error)
}

// WhatsAppSender sends messages via the WhatsApp Cloud API.
type WhatsAppSender struct {
	accessToken   string
	phoneNumberID string
	httpClient    *http.Client
	baseURL       string
}

// NewWhatsAppSender creates a WhatsApp sender with a bounded per-call timeout.
func NewWhatsAppSender(accessToken, phoneNumberID string) (*WhatsAppSender, error) {
	if accessToken == "" || phoneNumberID == "" {
		return nil, fmt.Errorf("WHATSAPP_TOKEN and WHATSAPP_PHONE_ID must be set")
	}
	return &WhatsAppSender{
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: "https://graph.facebook.com/v19.0",
	}, nil
}

type whatsAppTextMessage struct {
	MessagingProduct string `json:"messaging_product"`
	RecipientType    string `json:"recipient_type"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

type whatsAppResponse struct {
	MessagingProduct string `json:"messaging_product"`
	Messages         []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// SendText posts a text message and returns the API-assigned message ID.
func (w *WhatsAppSender) SendText(ctx context.Context, to, body string) (string, error) {
	message := whatsAppTextMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
	}
	message.Text.Body = body

	url := fmt.Sprintf("%s/%s/messages", w.baseURL, w.phoneNumberID)
	jsonData, err := json.Marshal(message)
	if err != nil {
		return "", fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+w.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("WhatsApp API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var waResp whatsAppResponse
	if err := json.Unmarshal(respBody, &waResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(waResp.Messages) == 0 {
		return "", fmt.Errorf("no message ID in response")
	}
	return waResp.Messages[0].ID, nil
}
