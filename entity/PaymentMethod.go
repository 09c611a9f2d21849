package entity

import (
	"gorm.io/gorm"
)

type PaymentMethod struct {
	gorm.Model
	MethodName string `json:"methodName"`

	Payments []Payment `json:"-"`
}
