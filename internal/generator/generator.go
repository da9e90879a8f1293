package generator

import (
	"fmt"
	"time"

	"order_viewer/internal/model"

	"github.com/brianvoe/gofakeit/v7"
)

// RandomOrder создает случайный заказ для эндпоинта POST /orders/random.
// Денежные поля согласованы между собой и заданы в минорных единицах валюты.
func RandomOrder() model.Order {
	orderUID := gofakeit.Password(true, false, true, false, false, 20)
	trackNumber := "WBILM" + gofakeit.Password(false, true, false, false, false, 10)
	currency := gofakeit.CurrencyShort()

	var items []model.Item
	goodsTotal := 0
	for i := 0; i < gofakeit.Number(1, 5); i++ {
		price := gofakeit.Number(100, 500000)
		sale := gofakeit.Number(0, 70)
		totalPrice := price * (100 - sale) / 100

		item := model.Item{
			ChrtID:      gofakeit.Number(1000000, 9999999),
			TrackNumber: trackNumber,
			Price:       price,
			Rid:         gofakeit.Password(true, false, true, false, false, 21),
			Name:        gofakeit.ProductName(),
			Sale:        sale,
			Size:        "0",
			TotalPrice:  totalPrice,
			NmID:        gofakeit.Number(1000000, 9999999),
			Brand:       gofakeit.Company(),
			Status:      202,
		}
		items = append(items, item)
		goodsTotal += totalPrice
	}

	deliveryCost := gofakeit.Number(30000, 150000)

	return model.Order{
		OrderUID:    orderUID,
		TrackNumber: trackNumber,
		Entry:       "WBIL",
		Delivery: &model.Delivery{
			Name:    gofakeit.Name(),
			Phone:   gofakeit.Phone(),
			Zip:     gofakeit.Zip(),
			City:    gofakeit.City(),
			Address: gofakeit.StreetName() + " " + gofakeit.StreetNumber(),
			Region:  gofakeit.State(),
			Email:   gofakeit.Email(),
		},
		Payment: &model.Payment{
			Transaction:  orderUID,
			Currency:     currency,
			Provider:     "wbpay",
			Amount:       goodsTotal + deliveryCost,
			PaymentDt:    time.Now().Unix(),
			Bank:         gofakeit.BS(),
			DeliveryCost: deliveryCost,
			GoodsTotal:   goodsTotal,
		},
		Items:           items,
		Locale:          "en",
		CustomerID:      gofakeit.Username(),
		DeliveryService: "meest",
		Shardkey:        fmt.Sprintf("%d", gofakeit.Number(1, 10)),
		SmID:            gofakeit.Number(1, 100),
		DateCreated:     time.Now().UTC().Format(time.RFC3339),
		OofShard:        fmt.Sprintf("%d", gofakeit.Number(1, 10)),
	}
}
