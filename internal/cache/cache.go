package cache

import "order_viewer/internal/model"

// OrderCache определяет интерфейс для кэша заказов
type OrderCache interface {
	Set(uid string, order model.Order)
	Get(uid string) (model.Order, bool)
	Len() int
	Capacity() int
	Recent(limit int) []model.Order
}
