// Package models содержит доменные структуры витрины данных:
// продукты каталога, сессию посетителя, корзину и заказ.
package models

// Category тип категории продукта данных. Всего восемь значений.
type Category string

// Поддерживаемые категории каталога.
const (
	CategoryPostal      Category = "postal"
	CategoryTele        Category = "tele"
	CategoryEmail       Category = "email"
	CategoryHealthcare  Category = "healthcare"
	CategoryNewBusiness Category = "new-business"
	CategorySoho        Category = "soho"
	CategoryPoi         Category = "poi"
	CategoryEnrichment  Category = "enrichment"
)

// Categories список всех категорий в порядке отображения.
var Categories = []Category{
	CategoryPostal, CategoryTele, CategoryEmail, CategoryHealthcare,
	CategoryNewBusiness, CategorySoho, CategoryPoi, CategoryEnrichment,
}

// IsValidCategory проверяет, что строка является известной категорией.
func IsValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// IndustryShare доля отрасли в составе продукта данных.
type IndustryShare struct {
	Name       string `json:"name"`       // Название отрасли
	Percentage int    `json:"percentage"` // Доля в процентах
}

// DictionaryField описание одного поля словаря данных продукта.
type DictionaryField struct {
	Field       string `json:"field"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// PlanPrices цены продукта по тарифным планам (за пакет данных).
type PlanPrices struct {
	Basic      float64 `json:"basic"`
	Premium    float64 `json:"premium"`
	Enterprise float64 `json:"enterprise"`
}

// ForPlan возвращает цену для указанного плана.
func (p PlanPrices) ForPlan(plan Plan) float64 {
	switch plan {
	case PlanPremium:
		return p.Premium
	case PlanEnterprise:
		return p.Enterprise
	default:
		return p.Basic
	}
}

// DataProduct продукт каталога данных. Создается один раз при загрузке
// каталога и далее не изменяется.
type DataProduct struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Category         Category          `json:"category"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"short_description"`
	Volume           int64             `json:"volume"`           // Количество записей
	ConfidenceScore  int               `json:"confidence_score"` // 0-100
	MatchRate        int               `json:"match_rate"`       // 0-100
	Industries       []IndustryShare   `json:"industries"`
	Geography        []string          `json:"geography"`
	Compliance       []string          `json:"compliance"`
	PriceRange       string            `json:"price_range"` // Отображаемая строка цены за запись
	Prices           PlanPrices        `json:"prices"`
	SampleFields     []string          `json:"sample_fields"`
	DataDictionary   []DictionaryField `json:"data_dictionary"`
	LastUpdated      string            `json:"last_updated"`
	Tags             []string          `json:"tags"`
}

// CategoryInfo описание категории для навигации по каталогу.
type CategoryInfo struct {
	ID          Category `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	VolumeLabel string   `json:"volume_label"`
}

// UseCase преднастроенный сценарий использования данных.
type UseCase struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Categories  []Category `json:"categories"`
}
