package models

// Plan тарифный план продукта в корзине.
type Plan string

// Поддерживаемые тарифные планы.
const (
	PlanBasic      Plan = "basic"
	PlanPremium    Plan = "premium"
	PlanEnterprise Plan = "enterprise"
)

// IsValidPlan проверяет, что строка является известным планом.
func IsValidPlan(s string) bool {
	switch Plan(s) {
	case PlanBasic, PlanPremium, PlanEnterprise:
		return true
	}
	return false
}

// CartItem позиция корзины. Ключ уникальности — пара (ProductID, SelectedPlan).
type CartItem struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	SelectedPlan Plan    `json:"selected_plan"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"` // Всегда >= 1
}

// Cart упорядоченный список позиций, порядок добавления значим для отображения.
// Переходы состояния реализованы как чистые функции: сохранение снимка в
// хранилище выполняет сервисный слой отдельно.
type Cart []CartItem

// Add возвращает новую корзину с добавленной позицией. Если позиция с той же
// парой (продукт, план) уже есть, ее количество увеличивается на количество
// новой позиции (по умолчанию 1) вместо создания дубликата.
func (c Cart) Add(item CartItem) Cart {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	next := make(Cart, len(c))
	copy(next, c)
	for i := range next {
		if next[i].ProductID == item.ProductID && next[i].SelectedPlan == item.SelectedPlan {
			next[i].Quantity += item.Quantity
			return next
		}
	}
	return append(next, item)
}

// Remove возвращает корзину без позиций указанного продукта. Если план задан,
// удаляется только позиция этого плана, иначе — все планы продукта.
func (c Cart) Remove(productID string, plan *Plan) Cart {
	next := make(Cart, 0, len(c))
	for _, it := range c {
		if it.ProductID == productID && (plan == nil || it.SelectedPlan == *plan) {
			continue
		}
		next = append(next, it)
	}
	return next
}

// TotalPrice сумма по всем позициям: цена умноженная на количество.
func (c Cart) TotalPrice() float64 {
	var sum float64
	for _, it := range c {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		sum += it.Price * float64(qty)
	}
	return sum
}

// TotalCount суммарное количество единиц во всех позициях.
func (c Cart) TotalCount() int {
	var count int
	for _, it := range c {
		if it.Quantity < 1 {
			count++
			continue
		}
		count += it.Quantity
	}
	return count
}
