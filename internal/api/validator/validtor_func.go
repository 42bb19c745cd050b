package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	orderIDRegex = `^order_[A-Za-z0-9]+$`
)

const (
	OrderIDTag = "order_id"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	OrderIDTag: ValidateOrderID,
}

func ValidateOrderID(fl validator.FieldLevel) bool {
	orderID := fl.Field().String()
	return regexp.MustCompile(orderIDRegex).MatchString(orderID)
}
