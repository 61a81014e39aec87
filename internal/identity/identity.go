package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// User — аутентифицированный принципал, каким его отдаёт провайдер.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Provider проверяет токены сессий во внешнем провайдере аутентификации.
// UserFromToken возвращает (nil, nil), если сессии нет: отсутствие принципала —
// ожидаемый исход, а не ошибка.
type Provider interface {
	UserFromToken(ctx context.Context, token string) (*User, error)
	Revoke(ctx context.Context, token string) error
}

const httpTimeout = 10 * time.Second

// Client — HTTP-клиент размещённого провайдера аутентификации.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиента провайдера по базовому URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: httpTimeout},
	}
}

// UserFromToken проверяет токен у провайдера и возвращает принципала.
// Пустой токен и ответы 401/403 означают отсутствие сессии.
func (c *Client) UserFromToken(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, nil
	default:
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	if user.ID == uuid.Nil {
		return nil, fmt.Errorf("identity provider returned empty user id")
	}
	return &user, nil
}

// Revoke аннулирует токен сессии у провайдера.
func (c *Client) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}
	return nil
}
