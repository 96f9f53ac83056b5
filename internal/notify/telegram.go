// Package notify posts published records to a Telegram channel through the
// Bot API.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramError carries the Bot API error payload.
type TelegramError struct {
	Method      string
	StatusCode  int
	Description string
}

func (e *TelegramError) Error() string {
	return fmt.Sprintf("telegram %s failed: HTTP %d: %s", e.Method, e.StatusCode, e.Description)
}

// TelegramClient is a minimal Bot API client covering the calls the poster
// needs.
type TelegramClient struct {
	baseURL string
	token   string
	chatID  string
	client  *http.Client
}

// NewTelegramClient builds a client for one bot and channel. baseURL
// overrides the production API host; pass "" for the default.
func NewTelegramClient(token, chatID, baseURL string) *TelegramClient {
	if baseURL == "" {
		baseURL = telegramAPIBase
	}
	return &TelegramClient{
		baseURL: baseURL,
		token:   token,
		chatID:  chatID,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

type messageResult struct {
	MessageID int `json:"message_id"`
}

// SendMessage posts an HTML-formatted message to the channel and returns
// the Telegram message id.
func (c *TelegramClient) SendMessage(ctx context.Context, text string) (int, error) {
	body := sendMessageRequest{
		ChatID:                c.chatID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: false,
	}

	var result messageResult
	if err := c.call(ctx, "sendMessage", body, &result); err != nil {
		return 0, err
	}
	return result.MessageID, nil
}

// EditMessage replaces the text of a previously posted message, keeping the
// HTML parse mode used by SendMessage.
func (c *TelegramClient) EditMessage(ctx context.Context, messageID int, text string) error {
	body := map[string]any{
		"chat_id":    c.chatID,
		"message_id": messageID,
		"text":       text,
		"parse_mode": "HTML",
	}
	return c.call(ctx, "editMessageText", body, nil)
}

// DeleteMessage removes a previously posted message. Unknown message ids
// are reported by the API and surface as a TelegramError.
func (c *TelegramClient) DeleteMessage(ctx context.Context, messageID int) error {
	body := map[string]any{
		"chat_id":    c.chatID,
		"message_id": messageID,
	}
	return c.call(ctx, "deleteMessage", body, nil)
}

func (c *TelegramClient) call(ctx context.Context, method string, body, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}

	var api apiResponse
	if err := json.Unmarshal(raw, &api); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if !api.OK {
		return &TelegramError{
			Method:      method,
			StatusCode:  resp.StatusCode,
			Description: api.Description,
		}
	}

	if result != nil && len(api.Result) > 0 {
		if err := json.Unmarshal(api.Result, result); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
	}
	return nil
}
