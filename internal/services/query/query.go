// Package services содержит логику выборки по каталогу: фильтрацию по
// категории и свободному тексту и сортировку результата. Все функции чистые:
// каталог не изменяется, результат детерминирован для фиксированного запроса.
package services

import (
	"sort"
	"strings"

	"github.com/dataiq/storefront/internal/catalog"
	"github.com/dataiq/storefront/internal/models"
)

// SortKey ключ сортировки результата выборки.
type SortKey string

// Поддерживаемые сортировки. По умолчанию — по уверенности, убывание.
const (
	SortByName       SortKey = "name"       // Лексикографически, возрастание
	SortByVolume     SortKey = "volume"     // По объему, убывание
	SortByConfidence SortKey = "confidence" // По уверенности, убывание
)

// Query параметры выборки по каталогу.
type Query struct {
	Text     string  // Поиск без учета регистра по имени, описанию, тегам и категории
	Category string  // Точное совпадение категории, пусто — без фильтра
	Sort     SortKey // Пустое значение трактуется как SortByConfidence
}

// QueryService выполняет выборки по статическому каталогу.
type QueryService struct {
	catalog *catalog.Catalog
}

// NewQueryService создает новый экземпляр QueryService.
func NewQueryService(cat *catalog.Catalog) *QueryService {
	return &QueryService{catalog: cat}
}

// Run применяет запрос к каталогу: сначала фильтр по категории, затем по
// тексту, затем сортировка. Пустой результат — нормальный исход, ошибок нет.
func (s *QueryService) Run(q Query) []models.DataProduct {
	return Apply(s.catalog.Products(), q)
}

// Product возвращает продукт по идентификатору.
func (s *QueryService) Product(id string) (models.DataProduct, bool) {
	return s.catalog.Product(id)
}

// Categories возвращает описания категорий каталога.
func (s *QueryService) Categories() []models.CategoryInfo {
	return s.catalog.CategoryInfos()
}

// Search свободный поиск по каталогу с необязательным набором категорий.
// Продукт проходит фильтр, если его категория входит в набор (пустой набор
// пропускает все) и текст встречается в имени, кратком описании, любом теге
// или строке категории.
func (s *QueryService) Search(text string, categories []string) []models.DataProduct {
	products := s.catalog.Products()
	if len(categories) == 0 && text == "" {
		return products
	}

	allowed := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		allowed[c] = struct{}{}
	}

	out := make([]models.DataProduct, 0, len(products))
	for _, p := range products {
		if len(allowed) > 0 {
			if _, ok := allowed[string(p.Category)]; !ok {
				continue
			}
		}
		if text != "" && !matchesText(p, text) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Apply чистая функция выборки над произвольным срезом продуктов.
func Apply(products []models.DataProduct, q Query) []models.DataProduct {
	out := make([]models.DataProduct, 0, len(products))
	for _, p := range products {
		if q.Category != "" && string(p.Category) != q.Category {
			continue
		}
		if q.Text != "" && !matchesText(p, q.Text) {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortByVolume:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Volume > out[j].Volume })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ConfidenceScore > out[j].ConfidenceScore })
	}
	return out
}

// matchesText проверяет вхождение текста без учета регистра в имя, краткое
// описание, любой тег или строку категории продукта.
func matchesText(p models.DataProduct, text string) bool {
	needle := strings.ToLower(text)
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.ShortDescription), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(string(p.Category)), needle)
}
