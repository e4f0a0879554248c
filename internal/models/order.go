package models

import "time"

// ContactDetails контактные данные покупателя, указанные при оформлении.
type ContactDetails struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Company  string `json:"company,omitempty"`
}

// Order результат успешного оформления заказа. Заказ формируется из снимка
// корзины на момент оформления и возвращается вызывающей стороне.
type Order struct {
	ID         string         `json:"id"`
	Items      Cart           `json:"items"`
	TotalPrice float64        `json:"total_price"`
	TotalCount int            `json:"total_count"`
	Contact    ContactDetails `json:"contact"`
	CreatedAt  time.Time      `json:"created_at"`
}
