// Package services содержит эвристический подбор продуктов под сценарий
// использования: балльную оценку соответствия, пояснения и прикидку ROI.
// Случайность заменяет настоящую рекомендательную модель, поэтому источник
// случайных чисел передается снаружи и в тестах фиксируется.
package services

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/dataiq/storefront/internal/catalog"
	"github.com/dataiq/storefront/internal/models"
)

// Балльная схема оценки соответствия.
const (
	baseScore      = 50
	industryBonus  = 20
	geographyBonus = 15
	budgetBonus    = 5
	maxScore       = 99
	topResults     = 6
)

// Filters необязательные требования посетителя к данным.
type Filters struct {
	Industry  string `json:"industry,omitempty"`
	Goal      string `json:"goal,omitempty"`
	Geography string `json:"geography,omitempty"`
	Budget    string `json:"budget,omitempty"`
}

// Recommendation продукт с оценкой соответствия требованиям.
type Recommendation struct {
	Product      models.DataProduct `json:"product"`
	MatchScore   int                `json:"match_score"`
	Reasons      []string           `json:"reasons"`
	EstimatedROI int                `json:"estimated_roi"` // Процент, прикидка
}

// RecommendService считает оценки соответствия по каталогу.
type RecommendService struct {
	catalog *catalog.Catalog
	mu      sync.Mutex
	rnd     *rand.Rand
}

// NewRecommendService создает новый экземпляр RecommendService с переданным
// источником случайности.
func NewRecommendService(cat *catalog.Catalog, rnd *rand.Rand) *RecommendService {
	return &RecommendService{catalog: cat, rnd: rnd}
}

// UseCases возвращает преднастроенные сценарии использования.
func (s *RecommendService) UseCases() []models.UseCase {
	return s.catalog.UseCases()
}

// Recommend оценивает каждый продукт каталога по фильтрам и возвращает до
// шести лучших по убыванию оценки.
//
// Схема: база 50; +20 при совпадении отрасли с составом продукта; +15 при
// совпадении географии; случайная прибавка [5,20) при выбранной цели; +5 при
// выбранном бюджете; случайный разброс [0,10); итог ограничен сверху 99.
func (s *RecommendService) Recommend(f Filters) []Recommendation {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.catalog.Products()
	recs := make([]Recommendation, 0, len(products))
	for _, p := range products {
		score := baseScore
		if f.Industry != "" && matchesIndustry(p, f.Industry) {
			score += industryBonus
		}
		if f.Geography != "" && matchesGeography(p, f.Geography) {
			score += geographyBonus
		}
		if f.Goal != "" {
			score += s.rnd.Intn(15) + 5
		}
		if f.Budget != "" {
			score += budgetBonus
		}
		score += s.rnd.Intn(10)
		if score > maxScore {
			score = maxScore
		}

		recs = append(recs, Recommendation{
			Product:      p,
			MatchScore:   score,
			Reasons:      reasons(p, f),
			EstimatedROI: s.rnd.Intn(300) + 150,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].MatchScore > recs[j].MatchScore })
	if len(recs) > topResults {
		recs = recs[:topResults]
	}
	return recs
}

// reasons формирует человеко-читаемые пояснения оценки.
func reasons(p models.DataProduct, f Filters) []string {
	var out []string
	if f.Industry != "" {
		share := 20
		if len(p.Industries) > 0 {
			share = p.Industries[0].Percentage
		}
		out = append(out, fmt.Sprintf("Strong %s coverage with %d%% industry share", f.Industry, share))
	}
	if f.Geography != "" {
		out = append(out, fmt.Sprintf("Available in %s", strings.Join(p.Geography, ", ")))
	}
	out = append(out, fmt.Sprintf("%d%% confidence score ensures data quality", p.ConfidenceScore))
	return out
}

// matchesIndustry проверяет вхождение выбранной отрасли в названия отраслей
// состава продукта без учета регистра.
func matchesIndustry(p models.DataProduct, industry string) bool {
	needle := strings.ToLower(industry)
	for _, share := range p.Industries {
		if strings.Contains(strings.ToLower(share.Name), needle) {
			return true
		}
	}
	return false
}

// matchesGeography проверяет вхождение выбранной географии в регионы продукта.
func matchesGeography(p models.DataProduct, geo string) bool {
	needle := strings.ToLower(geo)
	for _, g := range p.Geography {
		if strings.Contains(strings.ToLower(g), needle) {
			return true
		}
	}
	return false
}
