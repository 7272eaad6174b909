package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/habitkeeper/habitkeeper/internal/client/session"
	"github.com/habitkeeper/habitkeeper/pkg/api"
)

// Ошибки, в которые клиент переводит HTTP статусы сервера
var (
	// ErrNotAuthenticated локальной сессии нет, нужно выполнить login
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionExpired сервер отверг токен; локальная сессия уже удалена
	ErrSessionExpired = errors.New("session expired")

	// ErrInvalidCredentials неверный username или пароль при login
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound запрошенная запись не существует
	ErrNotFound = errors.New("not found")

	// ErrForbidden запись принадлежит другому пользователю
	ErrForbidden = errors.New("forbidden")

	// ErrBadRequest сервер отверг запрос (валидация, дубликат username)
	ErrBadRequest = errors.New("bad request")
)

// Client представляет HTTP клиент для взаимодействия с сервером
// Перед каждым авторизованным запросом токен читается из session store;
// ответ 401 удаляет сохраненную сессию и возвращает ErrSessionExpired
type Client struct {
	httpClient *http.Client
	baseURL    string
	sessions   session.Store
}

// NewClient создает новый API клиент
func NewClient(baseURL string, sessions session.Store) *Client {
	return &Client{
		baseURL:  baseURL,
		sessions: sessions,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, username, password string) (*api.UserResponse, error) {
	req := api.RegisterRequest{
		Username: username,
		Password: password,
	}

	var resp api.UserResponse
	if err := c.doJSON(ctx, http.MethodPost, "/users/register", req, &resp, false); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию и возвращает токен доступа
// Сервер принимает form-encoded тело, не JSON
func (c *Client) Login(ctx context.Context, username, password string) (*api.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if httpResp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidCredentials
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, statusError(httpResp.StatusCode, body)
	}

	var resp api.TokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &resp, nil
}

// Me возвращает текущего пользователя, как его видит сервер
func (c *Client) Me(ctx context.Context) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doJSON(ctx, http.MethodGet, "/users/me/", nil, &resp, true); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &resp, nil
}

// ListHabits возвращает привычки текущего пользователя
func (c *Client) ListHabits(ctx context.Context) ([]api.HabitResponse, error) {
	var resp []api.HabitResponse
	if err := c.doJSON(ctx, http.MethodGet, "/habits/", nil, &resp, true); err != nil {
		return nil, fmt.Errorf("list habits request failed: %w", err)
	}
	return resp, nil
}

// CreateHabit создает новую привычку
func (c *Client) CreateHabit(ctx context.Context, name, description string) (*api.HabitResponse, error) {
	req := api.CreateHabitRequest{
		Name:        name,
		Description: description,
	}

	var resp api.HabitResponse
	if err := c.doJSON(ctx, http.MethodPost, "/habits/", req, &resp, true); err != nil {
		return nil, fmt.Errorf("create habit request failed: %w", err)
	}
	return &resp, nil
}

// UpdateHabit частично обновляет привычку, nil-поля не меняются
func (c *Client) UpdateHabit(ctx context.Context, habitID int64, upd api.UpdateHabitRequest) (*api.HabitResponse, error) {
	var resp api.HabitResponse
	path := fmt.Sprintf("/habits/%d", habitID)
	if err := c.doJSON(ctx, http.MethodPut, path, upd, &resp, true); err != nil {
		return nil, fmt.Errorf("update habit request failed: %w", err)
	}
	return &resp, nil
}

// ToggleHabit переключает флаг выполнения привычки
func (c *Client) ToggleHabit(ctx context.Context, habitID int64) (*api.HabitResponse, error) {
	var resp api.HabitResponse
	path := fmt.Sprintf("/habits/%d/toggle", habitID)
	if err := c.doJSON(ctx, http.MethodPut, path, nil, &resp, true); err != nil {
		return nil, fmt.Errorf("toggle habit request failed: %w", err)
	}
	return &resp, nil
}

// DeleteHabit удаляет привычку
func (c *Client) DeleteHabit(ctx context.Context, habitID int64) error {
	path := fmt.Sprintf("/habits/%d", habitID)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil, true); err != nil {
		return fmt.Errorf("delete habit request failed: %w", err)
	}
	return nil
}

// doJSON выполняет HTTP запрос с JSON телом и ответом
// При authed=true токен читается из session store на каждый запрос
func (c *Client) doJSON(ctx context.Context, method, path string, body, result interface{}, authed bool) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authed {
		sess, err := c.sessions.Get(ctx)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				return ErrNotAuthenticated
			}
			return fmt.Errorf("failed to load session: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Сервер отверг токен: сбрасываем локальную сессию, дальше только re-login
	if authed && resp.StatusCode == http.StatusUnauthorized {
		if err := c.sessions.Delete(ctx); err != nil && !errors.Is(err, session.ErrSessionNotFound) {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// statusError переводит статус и тело ошибки сервера в типизированную ошибку
func statusError(statusCode int, body []byte) error {
	message := string(body)
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		message = errResp.Message
	}

	switch statusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	default:
		return fmt.Errorf("server error (%d): %s", statusCode, message)
	}
}
