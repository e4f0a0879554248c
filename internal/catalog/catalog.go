// Package catalog реализует статический каталог продуктов данных: единственный
// источник истины, который читают все остальные компоненты витрины. Продукты
// загружаются один раз при старте из встроенного JSON и далее не изменяются.
package catalog

import (
	"encoding/json"
	"fmt"

	_ "embed"

	"github.com/dataiq/storefront/internal/models"
)

//go:embed products.json
var productsJSON []byte

// Catalog неизменяемый каталог продуктов, категорий и сценариев использования.
type Catalog struct {
	products []models.DataProduct
	byID     map[string]models.DataProduct
}

// Load разбирает встроенный JSON каталога и строит индекс по идентификатору.
func Load() (*Catalog, error) {
	const op = "catalog.Load"

	var products []models.DataProduct
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	byID := make(map[string]models.DataProduct, len(products))
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("%s: product without id", op)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("%s: duplicate product id %q", op, p.ID)
		}
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}, nil
}

// Products возвращает копию списка продуктов в порядке каталога.
func (c *Catalog) Products() []models.DataProduct {
	out := make([]models.DataProduct, len(c.products))
	copy(out, c.products)
	return out
}

// Product возвращает продукт по идентификатору. Второй результат false,
// если продукт не найден — вызывающая сторона отвечает за "not found".
func (c *Catalog) Product(id string) (models.DataProduct, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Size количество продуктов в каталоге.
func (c *Catalog) Size() int {
	return len(c.products)
}

// CategoryInfos возвращает описания всех категорий каталога.
func (c *Catalog) CategoryInfos() []models.CategoryInfo {
	out := make([]models.CategoryInfo, len(categoryInfos))
	copy(out, categoryInfos)
	return out
}

// UseCases возвращает преднастроенные сценарии использования.
func (c *Catalog) UseCases() []models.UseCase {
	out := make([]models.UseCase, len(useCases))
	copy(out, useCases)
	return out
}

var categoryInfos = []models.CategoryInfo{
	{ID: models.CategoryPostal, Name: "Postal Data", Description: "High-quality direct mail data with verified addresses", VolumeLabel: "42M+"},
	{ID: models.CategoryTele, Name: "Telemarketing", Description: "TPS-screened B2B telephone data for outreach", VolumeLabel: "28M+"},
	{ID: models.CategoryEmail, Name: "Email Data", Description: "Verified B2B email contacts for campaigns", VolumeLabel: "35M+"},
	{ID: models.CategoryHealthcare, Name: "Healthcare", Description: "HCP & pharma professional data", VolumeLabel: "8M+"},
	{ID: models.CategoryNewBusiness, Name: "New Business", Description: "Newly registered company data", VolumeLabel: "1.2M+"},
	{ID: models.CategorySoho, Name: "SOHO", Description: "Micro-business and sole trader data", VolumeLabel: "5.5M+"},
	{ID: models.CategoryPoi, Name: "POI & Analytics", Description: "Points of interest and location analytics", VolumeLabel: "12M+"},
	{ID: models.CategoryEnrichment, Name: "Enrichment", Description: "Data enhancement and append services", VolumeLabel: "100M+"},
}

var useCases = []models.UseCase{
	{ID: "lead-gen", Name: "Lead Generation", Description: "Find and qualify new B2B leads", Categories: []models.Category{models.CategoryPostal, models.CategoryTele, models.CategoryEmail}},
	{ID: "market-expansion", Name: "Market Expansion", Description: "Discover new markets and segments", Categories: []models.Category{models.CategoryPoi, models.CategoryNewBusiness, models.CategoryEnrichment}},
	{ID: "healthcare-targeting", Name: "Healthcare Targeting", Description: "Reach HCPs and pharma professionals", Categories: []models.Category{models.CategoryHealthcare, models.CategoryEmail}},
	{ID: "direct-mail", Name: "Direct Mail Campaigns", Description: "Launch targeted postal campaigns", Categories: []models.Category{models.CategoryPostal, models.CategoryEnrichment}},
	{ID: "new-biz-outreach", Name: "New Business Outreach", Description: "Target freshly registered companies", Categories: []models.Category{models.CategoryNewBusiness, models.CategoryTele, models.CategoryEmail}},
	{ID: "local-marketing", Name: "Local Marketing", Description: "Geo-targeted campaigns with POI data", Categories: []models.Category{models.CategoryPoi, models.CategorySoho, models.CategoryPostal}},
}
