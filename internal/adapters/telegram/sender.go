package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Sender implements ports.Messenger over the Telegram Bot API.
type Sender struct {
	token   string
	apiBase string
	http    *http.Client
}

func NewSender(token, apiBase string) *Sender {
	if apiBase == "" {
		apiBase = "https://api.telegram.org"
	}
	return &Sender{
		token:   token,
		apiBase: apiBase,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *Sender) SendMessage(ctx context.Context, conversationID int64, text string) error {
	return s.send(ctx, sendMessageRequest{
		ChatID:                conversationID,
		Text:                  text,
		DisableWebPagePreview: true,
	})
}

func (s *Sender) SendMenu(ctx context.Context, conversationID int64, text string, buttons []string) error {
	keyboard := make([][]KeyboardButton, 0, len(buttons))
	for _, b := range buttons {
		keyboard = append(keyboard, []KeyboardButton{{Text: b}})
	}
	return s.send(ctx, sendMessageRequest{
		ChatID: conversationID,
		Text:   text,
		ReplyMarkup: &ReplyKeyboardMarkup{
			Keyboard:        keyboard,
			ResizeKeyboard:  true,
			OneTimeKeyboard: true,
		},
	})
}

func (s *Sender) send(ctx context.Context, payload sendMessageRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram api: %s", result.Description)
	}
	return nil
}
