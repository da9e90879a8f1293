package view

import (
	"fmt"

	"order_viewer/internal/format"
	"order_viewer/internal/model"
)

// Document — готовое к показу представление заказа: секции в фиксированном
// порядке (основная информация, доставка, платеж, товары). Построение
// документа не имеет побочных эффектов, показом занимается поверхность UI.
type Document struct {
	Sections []Section
}

// Section — группа связанных полей заказа
type Section struct {
	Title  string
	Fields []Field
	Items  []ItemCard
}

// Field — одна строка "подпись: значение"
type Field struct {
	Label string
	Value string
}

// Badge — статус товара с классом подсветки
type Badge struct {
	Label string
	Class format.Class
}

// ItemCard — карточка одного товара внутри секции товаров
type ItemCard struct {
	Name    string
	Price   string
	Details []Field
	Status  Badge
}

// Render собирает документ из заказа. Секции доставки и платежа появляются
// только при наличии соответствующих записей, секция товаров — только когда
// список не пуст. Валюта товаров всегда берется из платежа, при его
// отсутствии используется USD.
func Render(order model.Order) Document {
	currency := "USD"
	if order.Payment != nil && order.Payment.Currency != "" {
		currency = order.Payment.Currency
	}

	doc := Document{Sections: []Section{identitySection(order)}}

	if s, ok := deliverySection(order.Delivery); ok {
		doc.Sections = append(doc.Sections, s)
	}
	if s, ok := paymentSection(order.Payment); ok {
		doc.Sections = append(doc.Sections, s)
	}
	if s, ok := itemsSection(order.Items, currency); ok {
		doc.Sections = append(doc.Sections, s)
	}

	return doc
}

// identitySection присутствует в любом документе
func identitySection(order model.Order) Section {
	locale := order.Locale
	if locale == "" {
		locale = format.Placeholder
	}

	return Section{
		Title: "General information",
		Fields: []Field{
			{Label: "Order ID", Value: order.OrderUID},
			{Label: "Track number", Value: order.TrackNumber},
			{Label: "Customer", Value: order.CustomerID},
			{Label: "Date created", Value: format.Date(order.DateCreated)},
			{Label: "Delivery service", Value: order.DeliveryService},
			{Label: "Locale", Value: locale},
		},
	}
}

func deliverySection(d *model.Delivery) (Section, bool) {
	if d == nil {
		return Section{}, false
	}

	return Section{
		Title: "Delivery",
		Fields: []Field{
			{Label: "Recipient", Value: d.Name},
			{Label: "Phone", Value: d.Phone},
			{Label: "Email", Value: d.Email},
			{Label: "Address", Value: d.Address},
			{Label: "City", Value: d.City},
			{Label: "Region", Value: d.Region},
			{Label: "Zip code", Value: d.Zip},
		},
	}, true
}

func paymentSection(p *model.Payment) (Section, bool) {
	if p == nil {
		return Section{}, false
	}

	return Section{
		Title: "Payment",
		Fields: []Field{
			{Label: "Order amount", Value: format.Currency(p.Amount, p.Currency)},
			{Label: "Goods total", Value: format.Currency(p.GoodsTotal, p.Currency)},
			{Label: "Delivery cost", Value: format.Currency(p.DeliveryCost, p.Currency)},
			{Label: "Provider", Value: p.Provider},
			{Label: "Bank", Value: p.Bank},
			{Label: "Transaction", Value: p.Transaction},
			{Label: "Payment date", Value: format.Timestamp(p.PaymentDt)},
		},
	}, true
}

// itemsSection строит карточки товаров. Строка скидки добавляется только
// когда скидка ненулевая.
func itemsSection(items []model.Item, currency string) (Section, bool) {
	if len(items) == 0 {
		return Section{}, false
	}

	cards := make([]ItemCard, 0, len(items))
	for _, item := range items {
		size := item.Size
		if size == "" {
			size = format.Placeholder
		}

		details := []Field{
			{Label: "Brand", Value: item.Brand},
			{Label: "Size", Value: size},
			{Label: "Article", Value: fmt.Sprintf("%d", item.NmID)},
			{Label: "Price", Value: format.Currency(item.Price, currency)},
		}
		if item.Sale > 0 {
			details = append(details, Field{Label: "Sale", Value: fmt.Sprintf("%d%%", item.Sale)})
		}

		cards = append(cards, ItemCard{
			Name:    item.Name,
			Price:   format.Currency(item.TotalPrice, currency),
			Details: details,
			Status: Badge{
				Label: format.StatusText(item.Status),
				Class: format.StatusClass(item.Status),
			},
		})
	}

	return Section{
		Title: fmt.Sprintf("Items (%d)", len(items)),
		Items: cards,
	}, true
}
