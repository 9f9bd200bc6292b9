package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/portfolio-site/backend/config"
)

// LikeMessage is the fixed text relayed when a visitor likes the portfolio.
const LikeMessage = "Вашему портфолио поставили лайк ❤️"

const defaultTelegramAPIBase = "https://api.telegram.org"

// telegramSendRequest represents the sendMessage payload for the Telegram Bot API
type telegramSendRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// telegramSendResponse represents the response from the Telegram Bot API
type telegramSendResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

// TelegramNotifier relays one-shot messages to a Telegram chat. It has no
// retry and persists nothing.
type TelegramNotifier struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
}

// NewTelegramNotifier builds a notifier from explicit credentials. Either
// credential may be empty; Configured reports whether sending is possible.
func NewTelegramNotifier(token, chatID string) *TelegramNotifier {
	return &TelegramNotifier{
		token:   token,
		chatID:  chatID,
		baseURL: defaultTelegramAPIBase,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewTelegramNotifierFromConfig reads TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID
// from the environment snapshot.
func NewTelegramNotifierFromConfig(c map[string]string) *TelegramNotifier {
	return NewTelegramNotifier(
		config.GetString(c, "TELEGRAM_BOT_TOKEN", ""),
		config.GetString(c, "TELEGRAM_CHAT_ID", ""),
	)
}

// WithBaseURL overrides the Telegram API base URL. Used in tests.
func (n *TelegramNotifier) WithBaseURL(baseURL string) *TelegramNotifier {
	n.baseURL = baseURL
	return n
}

// Configured reports whether both the bot token and the chat id are present.
func (n *TelegramNotifier) Configured() bool {
	return n.token != "" && n.chatID != ""
}

// SendMessage posts text to the configured chat via the Bot API sendMessage
// call. A non-2xx response or transport failure is returned as an error.
func (n *TelegramNotifier) SendMessage(ctx context.Context, text string) error {
	if !n.Configured() {
		return fmt.Errorf("telegram notifier is not configured")
	}

	payload := telegramSendRequest{
		ChatID: n.chatID,
		Text:   text,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to telegram: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read telegram response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp telegramSendResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Description != "" {
			return fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode, errorResp.Description)
		}
		return fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var sendResp telegramSendResponse
	if err := json.Unmarshal(bodyBytes, &sendResp); err != nil {
		log.Warn().Err(err).Msg("Failed to parse telegram response, but message was sent")
		return nil
	}
	if !sendResp.OK {
		return fmt.Errorf("telegram API rejected message: %s", sendResp.Description)
	}

	log.Info().Str("chatId", n.chatID).Msg("Successfully sent telegram notification")
	return nil
}
