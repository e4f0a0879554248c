// Package services содержит логику пользовательских настроек витрины:
// тему оформления и отметку о пройденном ознакомительном туре.
package services

import (
	"context"
	"fmt"

	"github.com/dataiq/storefront/internal/models"
	"github.com/dataiq/storefront/internal/store"
)

// StateStore определяет методы для чтения и записи состояния посетителя.
type StateStore interface {
	Get(ctx context.Context, visitorUID, entry string, result any) (bool, error)
	Set(ctx context.Context, visitorUID, entry string, value any) error
}

// PrefsService реализует чтение и сохранение настроек посетителя.
type PrefsService struct {
	states StateStore
}

// NewPrefsService создает новый экземпляр PrefsService.
func NewPrefsService(states StateStore) *PrefsService {
	return &PrefsService{states: states}
}

// Prefs возвращает сохраненные настройки посетителя. Отсутствующая или
// поврежденная запись приравнивается к настройкам по умолчанию.
func (s *PrefsService) Prefs(ctx context.Context, visitorUID string) (models.Prefs, error) {
	var prefs models.Prefs
	found, err := s.states.Get(ctx, visitorUID, store.KeyPrefs, &prefs)
	if err != nil {
		return models.Prefs{}, err
	}
	if !found {
		return models.DefaultPrefs(), nil
	}
	return prefs, nil
}

// Save перезаписывает настройки посетителя целиком.
func (s *PrefsService) Save(ctx context.Context, visitorUID string, prefs models.Prefs) error {
	const op = "prefs.Save"
	if err := s.states.Set(ctx, visitorUID, store.KeyPrefs, prefs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
