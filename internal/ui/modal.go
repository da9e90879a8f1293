package ui

import (
	"fmt"
	"math"
	"time"

	"order_viewer/internal/api"
	"order_viewer/internal/format"
	"order_viewer/internal/view"
)

// cacheStatsSection собирает содержимое модального окна статистики кэша
func cacheStatsSection(stats api.CacheStats) view.Section {
	fields := []view.Field{
		{Label: "Cache size", Value: fmt.Sprintf("%d", stats.Size)},
		{Label: "Capacity", Value: fmt.Sprintf("%d", stats.Capacity)},
	}

	if stats.Capacity > 0 {
		load := int(math.Round(float64(stats.Size) / float64(stats.Capacity) * 100))
		fields = append(fields, view.Field{Label: "Load", Value: fmt.Sprintf("%d%%", load)})
	}

	return view.Section{Title: "Cache statistics", Fields: fields}
}

// orderListSection собирает список последних заказов: идентификатор
// и дата создания в каждой строке
func orderListSection(list api.OrderList) view.Section {
	if len(list.Orders) == 0 {
		return view.Section{
			Title:  "Recent orders",
			Fields: []view.Field{{Label: "No orders found", Value: ""}},
		}
	}

	fields := make([]view.Field, 0, len(list.Orders))
	for _, order := range list.Orders {
		fields = append(fields, view.Field{
			Label: order.OrderUID,
			Value: format.Date(order.DateCreated),
		})
	}

	return view.Section{Title: "Recent orders", Fields: fields}
}

// healthSection собирает содержимое модального окна состояния сервиса
func healthSection(health api.Health, now time.Time) view.Section {
	return view.Section{
		Title: "Service health",
		Fields: []view.Field{
			{Label: "Status", Value: health.Status},
			{Label: "Cache", Value: fmt.Sprintf("%d/%d", health.Cache.Size, health.Cache.Capacity)},
			{Label: "Checked at", Value: format.Timestamp(now.Unix())},
		},
	}
}
