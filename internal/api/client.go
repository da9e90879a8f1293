package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"order_viewer/internal/model"
)

// Envelope — конверт `{success, data, error}`, в который API оборачивает
// каждый ответ, включая ответы с кодом 404.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CacheStats — содержимое data для GET /cache/stats
type CacheStats struct {
	Size     int `json:"size"`
	Capacity int `json:"capacity"`
}

// OrderList — содержимое data для GET /orders
type OrderList struct {
	Orders []model.Order `json:"orders"`
	Count  int           `json:"count"`
}

// Health — содержимое data для GET /health
type Health struct {
	Status string     `json:"status"`
	Cache  CacheStats `json:"cache"`
}

// StatusError сигнализирует о транспортной ошибке: сервер ответил кодом
// вне диапазона 2xx еще до того, как дошло до разбора конверта.
type StatusError struct {
	Code int
	Text string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Text)
}

// Client выполняет запросы к пяти эндпоинтам сервиса заказов.
// Повторных попыток и таймаутов нет: любая сетевая ошибка
// возвращается вызывающему как есть.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient создает клиент для API по базовому адресу вида
// http://host:port/api/v1
func NewClient(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpc: httpc}
}

// SearchOrder запрашивает заказ по его UID.
// UID кодируется для безопасной подстановки в сегмент пути.
func (c *Client) SearchOrder(ctx context.Context, orderUID string) (*Envelope[model.Order], error) {
	return getEnvelope[model.Order](ctx, c, "/orders/"+url.PathEscape(orderUID))
}

// GetCacheStats запрашивает статистику кэша сервиса
func (c *Client) GetCacheStats(ctx context.Context) (*Envelope[CacheStats], error) {
	return getEnvelope[CacheStats](ctx, c, "/cache/stats")
}

// GetAllOrders запрашивает последние заказы, не более limit штук
func (c *Client) GetAllOrders(ctx context.Context, limit int) (*Envelope[OrderList], error) {
	return getEnvelope[OrderList](ctx, c, "/orders?limit="+strconv.Itoa(limit))
}

// HealthCheck запрашивает состояние сервиса
func (c *Client) HealthCheck(ctx context.Context) (*Envelope[Health], error) {
	return getEnvelope[Health](ctx, c, "/health")
}

// CreateRandomOrder просит сервис сгенерировать новый заказ.
// Ответ с кодом вне 2xx превращается в StatusError, а не в конверт:
// контроллер различает транспортный отказ и `success:false`.
func (c *Client) CreateRandomOrder(ctx context.Context) (*Envelope[model.Order], error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders/random", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Text: http.StatusText(resp.StatusCode)}
	}

	var env Envelope[model.Order]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &env, nil
}

// getEnvelope выполняет GET и разбирает конверт независимо от кода ответа:
// сервис оборачивает в конверт и ошибочные ответы
func getEnvelope[T any](ctx context.Context, c *Client, path string) (*Envelope[T], error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &env, nil
}
