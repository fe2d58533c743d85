package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

func init() {
	// Кастомное правило: дата не позже сегодняшнего дня
	_ = v.RegisterValidation("notfuture", notFuture)
}

// notFuture сравнивает только календарные даты, время суток игнорируется.
func notFuture(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return true
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
	return !day.After(today)
}

// Struct прогоняет все правила формы и собирает карту поле→сообщение.
// Пустой результат означает, что форма принята. Проверка не прерывается
// на первой ошибке: клиент получает полный список проблем за один запрос.
func Struct(s interface{}) map[string]string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fieldKey(fe)] = message(fe)
	}
	return out
}

// fieldKey возвращает путь поля без имени корневой структуры,
// например "Items[0].ProductId".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

var labels = map[string]string{
	"VendorName":      "Vendor name",
	"InvoiceDate":     "Invoice date",
	"TravelRequestId": "Travel request ID",
}

// Сообщения, которые не раскладываются на общий шаблон
var overrides = map[string]string{
	"Currency.len":       "Currency must be a 3-character ISO code",
	"Currency.alpha":     "Currency must be a valid 3-character uppercase ISO code",
	"Currency.uppercase": "Currency must be a valid 3-character uppercase ISO code",
	"Items.required":     "At least one item is required",
	"Items.min":          "At least one item is required",
	"Quantity.min":       "Quantity must be at least 1",
	"TravelRequestId.gt": "Travel request ID must be greater than zero",
}

func message(fe validator.FieldError) string {
	if m, ok := overrides[fe.Field()+"."+fe.Tag()]; ok {
		return m
	}
	name := fe.Field()
	if l, ok := labels[name]; ok {
		name = l
	}
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "notfuture":
		return name + " cannot be in the future"
	case "gt":
		return name + " must be greater than zero"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
	default:
		return name + " is invalid"
	}
}
