package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dropops/internal/app/client/views"
	"dropops/internal/domain/airdrop"
	"dropops/internal/domain/finance"
	"dropops/internal/domain/step"
	"dropops/internal/domain/task"
	"dropops/internal/domain/waitlist"
)

var (
	ErrUnauthorized = errors.New("session is not valid, run `dropops wallet connect`")
	ErrNotFound     = errors.New("not found")
)

// APIError - ответ сервера со статусом вне 2xx.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ошибка сервера: статус %d", e.Status)
	}
	return fmt.Sprintf("ошибка сервера (%d): %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound, views.ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// APIClient обращается к серверу DropOps. Все вызовы, кроме SignIn и HealthCheck,
// отправляют bearer-токен из SetToken.
type APIClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewAPIClient(baseURL string, timeout time.Duration, log *slog.Logger) *APIClient {
	return &APIClient{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		log:       log.With("component", "api_client"),
		baseURL:   baseURL,
		userAgent: "DropOps-Client/1.0",
	}
}

// SetToken устанавливает токен аутентификации
func (h *APIClient) SetToken(token string) {
	h.token = token
}

func (h *APIClient) HealthCheck(ctx context.Context) error {
	return h.do(ctx, http.MethodGet, "/api/v1/health", nil, nil)
}

type signInRequest struct {
	Address   string `json:"address"`
	Message   string `json:"message,omitempty"`
	Signature string `json:"signature,omitempty"`
}

// SignIn регистрирует кошелёк и возвращает новый токен сессии.
func (h *APIClient) SignIn(ctx context.Context, address, message, signature string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	err := h.do(ctx, http.MethodPost, "/api/v1/auth/wallet", signInRequest{
		Address:   address,
		Message:   message,
		Signature: signature,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// SignOut отзывает token на сервере.
func (h *APIClient) SignOut(ctx context.Context, token string) error {
	return h.doWithToken(ctx, token, http.MethodDelete, "/api/v1/auth/session", nil, nil)
}

type Me struct {
	UserID        string    `json:"user_id"`
	WalletAddress string    `json:"wallet_address"`
	CreatedAt     time.Time `json:"created_at"`
	LastSeenAt    time.Time `json:"last_seen_at"`
}

func (h *APIClient) Me(ctx context.Context) (*Me, error) {
	var me Me
	if err := h.do(ctx, http.MethodGet, "/api/v1/me", nil, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

func (h *APIClient) ListAirdrops(ctx context.Context, filter airdrop.Filter, withSteps bool) ([]views.AirdropItem, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.Network != "" {
		q.Set("network", filter.Network)
	}
	if filter.OrderBy != "" {
		q.Set("order", filter.OrderBy)
	}
	if filter.Desc {
		q.Set("desc", "true")
	}
	if withSteps {
		q.Set("steps", "true")
	}

	var out []views.AirdropItem
	if err := h.do(ctx, http.MethodGet, withQuery("/api/v1/airdrops", q), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (h *APIClient) GetAirdrop(ctx context.Context, id string) (*airdrop.Airdrop, error) {
	var a airdrop.Airdrop
	if err := h.do(ctx, http.MethodGet, "/api/v1/airdrops/"+url.PathEscape(id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

type createAirdropRequest struct {
	SchemaVersion int      `json:"schema_version,omitempty"`
	Name          string   `json:"name"`
	Network       *string  `json:"network,omitempty"`
	Status        string   `json:"status,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	Website       *string  `json:"website,omitempty"`
	Funds         *string  `json:"funds,omitempty"`
	EstimatedTGE  *string  `json:"estimated_tge,omitempty"`
	EstimatedVal  *string  `json:"estimated_value,omitempty"`
	TasksSummary  *string  `json:"tasks_summary,omitempty"`
	StartDate     *string  `json:"start_date,omitempty"`
	EndDate       *string  `json:"end_date,omitempty"`
	FarmingPoints *string  `json:"farming_points,omitempty"`
	Steps         []string `json:"steps,omitempty"`
}

func (h *APIClient) CreateAirdrop(ctx context.Context, a airdrop.Airdrop, steps []string) (*views.AirdropItem, error) {
	req := createAirdropRequest{
		SchemaVersion: a.SchemaVersion,
		Name:          a.Name,
		Network:       a.Network,
		Status:        string(a.Status),
		Notes:         a.Notes,
		Website:       a.Website,
		Funds:         a.Funds,
		EstimatedTGE:  a.EstimatedTGE,
		EstimatedVal:  a.EstimatedVal,
		TasksSummary:  a.TasksSummary,
		StartDate:     a.StartDate,
		EndDate:       a.EndDate,
		FarmingPoints: a.FarmingPoints,
		Steps:         steps,
	}
	var out views.AirdropItem
	if err := h.do(ctx, http.MethodPost, "/api/v1/airdrops", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *APIClient) UpdateAirdrop(ctx context.Context, id string, patch airdrop.Patch) (*airdrop.Airdrop, error) {
	var a airdrop.Airdrop
	if err := h.do(ctx, http.MethodPut, "/api/v1/airdrops/"+url.PathEscape(id), patch, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (h *APIClient) DeleteAirdrop(ctx context.Context, id string) error {
	return h.do(ctx, http.MethodDelete, "/api/v1/airdrops/"+url.PathEscape(id), nil, nil)
}

func (h *APIClient) ListSteps(ctx context.Context, airdropID string) ([]step.Step, error) {
	var resp struct {
		Steps []step.Step `json:"steps"`
	}
	if err := h.do(ctx, http.MethodGet, "/api/v1/airdrops/"+url.PathEscape(airdropID)+"/steps", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Steps, nil
}

func (h *APIClient) AddSteps(ctx context.Context, airdropID string, titles []string) ([]step.Step, error) {
	var out []step.Step
	body := map[string][]string{"titles": titles}
	if err := h.do(ctx, http.MethodPost, "/api/v1/airdrops/"+url.PathEscape(airdropID)+"/steps", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (h *APIClient) UpdateStep(ctx context.Context, id string, patch step.Patch) (*step.Step, error) {
	var s step.Step
	if err := h.do(ctx, http.MethodPut, "/api/v1/steps/"+url.PathEscape(id), patch, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (h *APIClient) DeleteStep(ctx context.Context, id string) error {
	return h.do(ctx, http.MethodDelete, "/api/v1/steps/"+url.PathEscape(id), nil, nil)
}

func (h *APIClient) ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	q := url.Values{}
	if filter.AirdropID != "" {
		q.Set("airdrop_id", filter.AirdropID)
	}
	if filter.DailyOnly {
		q.Set("scope", "daily")
	}

	var resp struct {
		Tasks []task.Task `json:"tasks"`
	}
	if err := h.do(ctx, http.MethodGet, withQuery("/api/v1/tasks", q), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

type createTaskRequest struct {
	Title       string  `json:"title"`
	Type        string  `json:"type,omitempty"`
	AirdropID   *string `json:"airdrop_id,omitempty"`
	IsCompleted bool    `json:"is_completed,omitempty"`
}

func (h *APIClient) CreateTask(ctx context.Context, t task.Task) (*task.Task, error) {
	var out task.Task
	err := h.do(ctx, http.MethodPost, "/api/v1/tasks", createTaskRequest{
		Title:       t.Title,
		Type:        string(t.Type),
		AirdropID:   t.AirdropID,
		IsCompleted: t.IsCompleted,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *APIClient) UpdateTask(ctx context.Context, id string, patch task.Patch) (*task.Task, error) {
	var out task.Task
	if err := h.do(ctx, http.MethodPut, "/api/v1/tasks/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *APIClient) DeleteTask(ctx context.Context, id string) error {
	return h.do(ctx, http.MethodDelete, "/api/v1/tasks/"+url.PathEscape(id), nil, nil)
}

func (h *APIClient) ListFinance(ctx context.Context, airdropID string) ([]finance.Entry, error) {
	q := url.Values{}
	if airdropID != "" {
		q.Set("airdrop_id", airdropID)
	}
	var out []finance.Entry
	if err := h.do(ctx, http.MethodGet, withQuery("/api/v1/finance", q), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type createFinanceRequest struct {
	AirdropID string  `json:"airdrop_id"`
	CostType  string  `json:"cost_type"`
	Amount    float64 `json:"amount"`
}

func (h *APIClient) CreateFinance(ctx context.Context, e finance.Entry) (*finance.Entry, error) {
	var out finance.Entry
	err := h.do(ctx, http.MethodPost, "/api/v1/finance", createFinanceRequest{
		AirdropID: e.AirdropID,
		CostType:  string(e.CostType),
		Amount:    e.Amount,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *APIClient) DeleteFinance(ctx context.Context, id string) error {
	return h.do(ctx, http.MethodDelete, "/api/v1/finance/"+url.PathEscape(id), nil, nil)
}

// FinanceSummary возвращает итоги, посчитанные сервером.
func (h *APIClient) FinanceSummary(ctx context.Context) (*finance.Report, error) {
	var out finance.Report
	if err := h.do(ctx, http.MethodGet, "/api/v1/finance/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *APIClient) ListWaitlist(ctx context.Context) ([]waitlist.Item, error) {
	var out []waitlist.Item
	if err := h.do(ctx, http.MethodGet, "/api/v1/waitlist", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type createWaitlistRequest struct {
	ProjectName string  `json:"project_name"`
	Date        *string `json:"date,omitempty"`
	ItemType    string  `json:"item_type,omitempty"`
}

func (h *APIClient) CreateWaitlist(ctx context.Context, it waitlist.Item) (*waitlist.Item, error) {
	var out waitlist.Item
	err := h.do(ctx, http.MethodPost, "/api/v1/waitlist", createWaitlistRequest{
		ProjectName: it.ProjectName,
		Date:        it.Date,
		ItemType:    string(it.ItemType),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *APIClient) UpdateWaitlist(ctx context.Context, id string, patch waitlist.Patch) (*waitlist.Item, error) {
	var out waitlist.Item
	if err := h.do(ctx, http.MethodPut, "/api/v1/waitlist/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *APIClient) DeleteWaitlist(ctx context.Context, id string) error {
	return h.do(ctx, http.MethodDelete, "/api/v1/waitlist/"+url.PathEscape(id), nil, nil)
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func (h *APIClient) do(ctx context.Context, method, path string, body, result any) error {
	return h.doWithToken(ctx, h.token, method, path, body, result)
}

func (h *APIClient) doWithToken(ctx context.Context, token, method, path string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	h.log.Debug("Отправка запроса", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	return h.parseResponse(resp, result)
}

func (h *APIClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ", "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode >= http.StatusBadRequest {
		// huma отвечает в формате application/problem+json
		var problem struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
		}
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.Unmarshal(body, &problem); err == nil {
			apiErr.Message = problem.Detail
			if apiErr.Message == "" {
				apiErr.Message = problem.Title
			}
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode) + " " + strconv.Itoa(resp.StatusCode)
		}
		return apiErr
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}
	return nil
}
