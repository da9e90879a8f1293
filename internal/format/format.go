package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder подставляется вместо отсутствующих необязательных полей
const Placeholder = "not specified"

// UnknownTime возвращается, когда метку времени платежа разобрать нельзя
const UnknownTime = "unknown"

const longDate = "2 January 2006, 15:04"

// Class определяет, каким цветом подсвечивается статус товара
type Class string

const (
	ClassSuccess Class = "success"
	ClassWarning Class = "warning"
	ClassError   Class = "error"
)

var printer = message.NewPrinter(language.English)

var statusText = map[int]string{
	100: "Processing",
	200: "Confirmed",
	202: "Accepted",
	300: "Delivered",
	400: "Error",
	500: "Cancelled",
}

// Date разбирает метку времени ISO-8601 и возвращает длинную дату с временем.
// При ошибке парсинга возвращает исходную строку без изменений.
func Date(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Format(longDate)
}

// Timestamp переводит секунды эпохи в ту же длинную дату с временем.
// Для неположительных значений возвращает фиксированную заглушку.
func Timestamp(sec int64) string {
	if sec <= 0 {
		return UnknownTime
	}
	return time.Unix(sec, 0).UTC().Format(longDate)
}

// Currency делит сумму в минорных единицах на 100 и выводит ее
// с двумя знаками после запятой и кодом валюты ISO 4217.
// Нечисловые значения возвращаются без изменений, некорректный код
// валюты не приводит к ошибке — сумма выводится как есть рядом с кодом.
func Currency(amount any, code string) string {
	var minor float64
	switch v := amount.(type) {
	case int:
		minor = float64(v)
	case int32:
		minor = float64(v)
	case int64:
		minor = float64(v)
	case float64:
		minor = v
	default:
		return fmt.Sprint(amount)
	}

	if code == "" {
		code = "USD"
	}

	value := minor / 100

	unit, err := currency.ParseISO(code)
	if err != nil {
		return printer.Sprintf("%.2f %s", value, strings.ToUpper(code))
	}
	return printer.Sprintf("%.2f %v", value, unit)
}

// StatusClass классифицирует код статуса товара
func StatusClass(code int) Class {
	switch {
	case code >= 200 && code < 300:
		return ClassSuccess
	case code >= 100 && code < 200:
		return ClassWarning
	default:
		return ClassError
	}
}

// StatusText возвращает текстовую расшифровку кода статуса
func StatusText(code int) string {
	if text, ok := statusText[code]; ok {
		return text
	}
	return fmt.Sprintf("Status %d", code)
}
