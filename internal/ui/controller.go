package ui

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"order_viewer/internal/api"
	"order_viewer/internal/model"
	"order_viewer/internal/view"
)

// State — состояние поиска заказа
type State int

const (
	StateIdle State = iota
	StateSearching
	StateSuccess
	StateFailed
)

// Level — уровень всплывающего уведомления
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Gateway — набор операций API-клиента, нужных контроллеру.
// Интерфейс позволяет подменять клиент в тестах.
type Gateway interface {
	SearchOrder(ctx context.Context, orderUID string) (*api.Envelope[model.Order], error)
	GetCacheStats(ctx context.Context) (*api.Envelope[api.CacheStats], error)
	GetAllOrders(ctx context.Context, limit int) (*api.Envelope[api.OrderList], error)
	HealthCheck(ctx context.Context) (*api.Envelope[api.Health], error)
	CreateRandomOrder(ctx context.Context) (*api.Envelope[model.Order], error)
}

// Surface — поверхности отображения, которые контроллер получает снаружи
// вместо обращения к глобальному состоянию страницы
type Surface interface {
	ShowOrder(doc view.Document)
	ShowError(message string)
	ClearView()
	ShowModal(title string, body view.Section)
	CloseModal()
	Notify(level Level, message string)
	SetSearchEnabled(enabled bool)
	SetSearchInput(orderUID string)
	LockCreate(label string)
	UnlockCreate()
}

// Примеры идентификаторов для кнопки "случайный заказ"
var exampleOrderUIDs = []string{
	"b563feb7b2b84b6test",
	"sample_order_001",
	"demo_order_123",
	"test_order_456",
}

// Controller связывает действия пользователя с API-клиентом и поверхностями
// отображения. Все методы рассчитаны на вызов из одной горутины —
// командного цикла приложения.
type Controller struct {
	gw          Gateway
	surface     Surface
	ordersLimit int

	state State
	// seq растет с каждым новым поиском; результат с устаревшим номером
	// не перезаписывает текущее представление
	seq uint64
}

// NewController создает контроллер с внедренными зависимостями
func NewController(gw Gateway, surface Surface, ordersLimit int) *Controller {
	if ordersLimit <= 0 {
		ordersLimit = 10
	}
	return &Controller{gw: gw, surface: surface, ordersLimit: ordersLimit}
}

// State возвращает текущее состояние поиска
func (c *Controller) State() State {
	return c.state
}

// Search ищет заказ по идентификатору и показывает результат.
// Пустой ввод дает ошибку валидации без обращения к API.
func (c *Controller) Search(ctx context.Context, orderUID string) {
	orderUID = strings.TrimSpace(orderUID)
	if orderUID == "" {
		c.state = StateFailed
		c.surface.ShowError("Please enter an order ID")
		return
	}

	c.state = StateSearching
	c.seq++
	seq := c.seq

	c.surface.SetSearchEnabled(false)
	defer c.surface.SetSearchEnabled(true)

	c.surface.ClearView()

	slog.Debug("Searching for order", "order_uid", orderUID)

	env, err := c.gw.SearchOrder(ctx, orderUID)

	if seq != c.seq {
		// Пока ждали ответ, начался новый поиск — результат устарел
		slog.Debug("Discarding stale search result", "order_uid", orderUID)
		return
	}

	if err != nil {
		slog.Error("Search failed", "order_uid", orderUID, "error", err)
		c.state = StateFailed
		c.surface.ShowError(fmt.Sprintf("Network error: %v. Make sure the backend service is running.", err))
		return
	}

	if !env.Success || env.Data == nil {
		c.state = StateFailed
		c.surface.ShowError(orDefault(env.Error, "Order not found"))
		return
	}

	slog.Debug("Order found", "order_uid", env.Data.OrderUID)
	c.state = StateSuccess
	c.surface.ShowOrder(view.Render(*env.Data))
}

// SearchExample подставляет один из примеров идентификаторов в поле
// ввода и запускает обычный поиск
func (c *Controller) SearchExample(ctx context.Context) {
	orderUID := exampleOrderUIDs[rand.IntN(len(exampleOrderUIDs))]
	c.surface.SetSearchInput(orderUID)
	c.Search(ctx, orderUID)
}

// LoadOrder загружает заказ, выбранный в списке: закрывает модальное окно,
// подставляет идентификатор и запускает поиск
func (c *Controller) LoadOrder(ctx context.Context, orderUID string) {
	c.surface.CloseModal()
	c.surface.SetSearchInput(orderUID)
	c.Search(ctx, orderUID)
}

// CreateRandomOrder просит сервис сгенерировать заказ. Кнопка блокируется
// на время запроса и гарантированно разблокируется на любом исходе.
func (c *Controller) CreateRandomOrder(ctx context.Context) {
	c.surface.LockCreate("Creating...")
	defer c.surface.UnlockCreate()

	c.surface.ClearView()

	env, err := c.gw.CreateRandomOrder(ctx)
	if err != nil {
		slog.Error("Failed to create random order", "error", err)
		c.surface.Notify(LevelError, fmt.Sprintf("Error: %v", err))
		return
	}

	if !env.Success || env.Data == nil {
		c.surface.ShowError(orDefault(env.Error, "Failed to create order"))
		return
	}

	slog.Info("Random order created", "order_uid", env.Data.OrderUID)
	c.surface.SetSearchInput(env.Data.OrderUID)
	c.surface.ShowOrder(view.Render(*env.Data))
	c.surface.Notify(LevelSuccess, fmt.Sprintf("Order created: %s", env.Data.OrderUID))
}

// ShowCacheStats показывает статистику кэша сервиса в модальном окне
func (c *Controller) ShowCacheStats(ctx context.Context) {
	env, err := c.gw.GetCacheStats(ctx)
	if err != nil {
		c.surface.ShowError(fmt.Sprintf("Failed to fetch statistics: %v", err))
		return
	}

	if !env.Success || env.Data == nil {
		c.surface.ShowError(orDefault(env.Error, "Failed to fetch cache statistics"))
		return
	}

	c.surface.ShowModal("Cache statistics", cacheStatsSection(*env.Data))
}

// ListOrders показывает последние заказы в модальном окне
func (c *Controller) ListOrders(ctx context.Context) {
	env, err := c.gw.GetAllOrders(ctx, c.ordersLimit)
	if err != nil {
		c.surface.ShowError(fmt.Sprintf("Failed to fetch orders: %v", err))
		return
	}

	if !env.Success || env.Data == nil {
		c.surface.ShowError(orDefault(env.Error, "Failed to fetch the order list"))
		return
	}

	title := fmt.Sprintf("Recent orders (%d)", env.Data.Count)
	c.surface.ShowModal(title, orderListSection(*env.Data))
}

// HealthCheck показывает состояние сервиса в модальном окне
func (c *Controller) HealthCheck(ctx context.Context) {
	env, err := c.gw.HealthCheck(ctx)
	if err != nil {
		c.surface.ShowError(fmt.Sprintf("Service is unavailable: %v", err))
		return
	}

	if !env.Success || env.Data == nil {
		c.surface.ShowError(orDefault(env.Error, "Service is unavailable"))
		return
	}

	c.surface.ShowModal("Service health", healthSection(*env.Data, time.Now()))
}

func orDefault(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
