package cache

import (
	"testing"

	"order_viewer/internal/model"

	"github.com/stretchr/testify/require"
)

// TestLRUCache проверяет основную логику LRU кэша
func TestLRUCache(t *testing.T) {
	order1 := model.Order{OrderUID: "order1", DateCreated: "2021-11-26T06:22:19Z"}
	order2 := model.Order{OrderUID: "order2", DateCreated: "2021-11-27T06:22:19Z"}
	order3 := model.Order{OrderUID: "order3", DateCreated: "2021-11-28T06:22:19Z"}

	t.Run("Set and Get", func(t *testing.T) {
		cache := NewLRUCache(2)
		cache.Set(order1.OrderUID, order1)

		retrievedOrder, found := cache.Get(order1.OrderUID)
		require.True(t, found, "Элемент должен быть найден в кэше")
		require.Equal(t, order1.OrderUID, retrievedOrder.OrderUID, "UID полученного заказа должен совпадать")
	})

	t.Run("Eviction policy", func(t *testing.T) {
		cache := NewLRUCache(2)

		cache.Set(order1.OrderUID, order1)
		cache.Set(order2.OrderUID, order2)

		cache.Set(order3.OrderUID, order3)

		_, found := cache.Get(order1.OrderUID)
		require.False(t, found, "Самый старый элемент (order1) должен был быть вытеснен")

		_, found = cache.Get(order2.OrderUID)
		require.True(t, found, "Элемент order2 должен остаться в кэше")
		_, found = cache.Get(order3.OrderUID)
		require.True(t, found, "Новый элемент order3 должен быть в кэше")
	})

	t.Run("Get updates recentness", func(t *testing.T) {
		cache := NewLRUCache(2)

		cache.Set(order1.OrderUID, order1)
		cache.Set(order2.OrderUID, order2)

		cache.Get(order1.OrderUID)

		cache.Set(order3.OrderUID, order3)

		_, found := cache.Get(order2.OrderUID)
		require.False(t, found, "Элемент order2 должен был быть вытеснен")

		_, found = cache.Get(order1.OrderUID)
		require.True(t, found, "Элемент order1 (к которому недавно обращались) должен остаться")
		_, found = cache.Get(order3.OrderUID)
		require.True(t, found, "Новый элемент order3 должен быть в кэше")
	})

	t.Run("Len and Capacity", func(t *testing.T) {
		cache := NewLRUCache(2)
		require.Equal(t, 0, cache.Len())
		require.Equal(t, 2, cache.Capacity())

		cache.Set(order1.OrderUID, order1)
		require.Equal(t, 1, cache.Len())

		cache.Set(order2.OrderUID, order2)
		cache.Set(order3.OrderUID, order3)
		require.Equal(t, 2, cache.Len(), "Размер не должен превышать емкость")
	})

	t.Run("Recent returns newest first", func(t *testing.T) {
		cache := NewLRUCache(3)
		cache.Set(order1.OrderUID, order1)
		cache.Set(order2.OrderUID, order2)
		cache.Set(order3.OrderUID, order3)

		recent := cache.Recent(2)
		require.Len(t, recent, 2)
		require.Equal(t, "order3", recent[0].OrderUID, "Сначала идут самые свежие заказы")
		require.Equal(t, "order2", recent[1].OrderUID)
	})

	t.Run("Recent with oversized limit", func(t *testing.T) {
		cache := NewLRUCache(3)
		cache.Set(order1.OrderUID, order1)

		recent := cache.Recent(10)
		require.Len(t, recent, 1, "Лимит больше размера кэша не должен ломать выдачу")
	})
}
