// Package services содержит бизнес-логику списка сравнения: рабочий набор
// не более чем из трех продуктов для постраничного сопоставления. Список
// живет в памяти процесса и, в отличие от сессии и корзины, намеренно не
// переживает перезапуск.
package services

import (
	"log/slog"
	"sync"

	"github.com/dataiq/storefront/internal/catalog"
	"github.com/dataiq/storefront/internal/models"
)

// MaxCompareItems предел размера списка сравнения.
const MaxCompareItems = 3

// CompareService хранит списки сравнения всех посетителей.
type CompareService struct {
	mu      sync.Mutex
	lists   map[string][]string // Идентификаторы продуктов в порядке добавления
	catalog *catalog.Catalog
	log     *slog.Logger
}

// NewCompareService создает новый экземпляр CompareService.
func NewCompareService(cat *catalog.Catalog, log *slog.Logger) *CompareService {
	return &CompareService{
		lists:   make(map[string][]string),
		catalog: cat,
		log:     log,
	}
}

// Add добавляет продукт в список сравнения посетителя. Возвращает false без
// изменения списка, если список уже полон, продукт уже в нем или продукта
// нет в каталоге. Отказ — штатный результат, а не ошибка.
func (s *CompareService) Add(visitorUID, productID string) bool {
	if _, ok := s.catalog.Product(productID); !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[visitorUID]
	if len(list) >= MaxCompareItems {
		return false
	}
	for _, id := range list {
		if id == productID {
			return false
		}
	}
	s.lists[visitorUID] = append(list, productID)

	s.log.Info("added product to compare",
		slog.String("visitor_uid", visitorUID),
		slog.String("product_id", productID))
	return true
}

// Remove убирает продукт из списка сравнения.
func (s *CompareService) Remove(visitorUID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[visitorUID]
	next := list[:0]
	for _, id := range list {
		if id != productID {
			next = append(next, id)
		}
	}
	if len(next) == 0 {
		delete(s.lists, visitorUID)
		return
	}
	s.lists[visitorUID] = next
}

// Clear сбрасывает список сравнения посетителя.
func (s *CompareService) Clear(visitorUID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists, visitorUID)
}

// IsInCompare проверяет наличие продукта в списке сравнения.
func (s *CompareService) IsInCompare(visitorUID, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.lists[visitorUID] {
		if id == productID {
			return true
		}
	}
	return false
}

// IsMaxed признак заполненного списка: дальнейшие добавления отклоняются.
func (s *CompareService) IsMaxed(visitorUID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lists[visitorUID]) >= MaxCompareItems
}

// List возвращает продукты списка сравнения в порядке добавления.
func (s *CompareService) List(visitorUID string) []models.DataProduct {
	s.mu.Lock()
	ids := make([]string, len(s.lists[visitorUID]))
	copy(ids, s.lists[visitorUID])
	s.mu.Unlock()

	out := make([]models.DataProduct, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.catalog.Product(id); ok {
			out = append(out, p)
		}
	}
	return out
}
