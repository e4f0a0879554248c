// Package services содержит бизнес-логику сессии и прав доступа посетителя:
// вход без проверки учетных данных, выход, пробный период и проверку
// закрытых возможностей по таблице ролей.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dataiq/storefront/internal/models"
	"github.com/dataiq/storefront/internal/store"
)

// StateStore определяет методы для чтения и записи состояния посетителя.
type StateStore interface {
	// Get читает запись состояния, false без ошибки если записи нет.
	Get(ctx context.Context, visitorUID, entry string, result any) (bool, error)
	// Set перезаписывает запись состояния целиком.
	Set(ctx context.Context, visitorUID, entry string, value any) error
	// Invalidate удаляет запись состояния.
	Invalidate(ctx context.Context, visitorUID, entry string) error
}

// gatedFeatures таблица закрытых возможностей: имя возможности и роли,
// которым она доступна. Возможность вне таблицы открыта всем.
var gatedFeatures = map[string][]models.Role{
	"download":       {models.RoleTrial, models.RolePaid},
	"fullAnalytics":  {models.RoleTrial, models.RolePaid},
	"comparison":     {models.RoleTrial, models.RolePaid},
	"dataDictionary": {models.RoleTrial, models.RolePaid},
	"sampleData":     {models.RoleTrial, models.RolePaid},
}

// AccessService реализует операции над сессией посетителя. Текущее время
// передается функцией, чтобы остаток пробного периода можно было проверять
// в тестах без ожидания.
type AccessService struct {
	states    StateStore
	log       *slog.Logger
	trialDays int
	now       func() time.Time
}

// NewAccessService создает новый экземпляр AccessService.
func NewAccessService(states StateStore, log *slog.Logger, trialDays int, now func() time.Time) *AccessService {
	if now == nil {
		now = time.Now
	}
	return &AccessService{
		states:    states,
		log:       log,
		trialDays: trialDays,
		now:       now,
	}
}

// Session возвращает сохраненную сессию посетителя. Отсутствующая или
// поврежденная запись приравнивается к гостевой сессии.
func (s *AccessService) Session(ctx context.Context, visitorUID string) (models.Session, error) {
	var session models.Session
	found, err := s.states.Get(ctx, visitorUID, store.KeySession, &session)
	if err != nil {
		return models.Session{}, err
	}
	if !found || !models.IsValidRole(string(session.Role)) {
		return models.GuestSession(), nil
	}
	return session, nil
}

// Login устанавливает роль посетителя. Проверки учетных данных нет и не
// требуется: операция всегда успешна. Для пробной роли фиксируется момент
// начала пробного периода, для остальных ролей отметка сбрасывается.
func (s *AccessService) Login(ctx context.Context, visitorUID string, role models.Role, name string) (models.Session, error) {
	const op = "access.Login"
	if name == "" {
		name = "User"
	}
	session := models.Session{
		Role:     role,
		UserName: name,
	}
	if role == models.RoleTrial {
		start := s.now()
		session.TrialStartDate = &start
	}
	if err := s.states.Set(ctx, visitorUID, store.KeySession, session); err != nil {
		return models.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("visitor logged in",
		slog.String("visitor_uid", visitorUID),
		slog.String("role", string(role)))
	return session, nil
}

// Logout сбрасывает сессию в начальное гостевое состояние.
func (s *AccessService) Logout(ctx context.Context, visitorUID string) (models.Session, error) {
	const op = "access.Logout"
	session := models.GuestSession()
	if err := s.states.Set(ctx, visitorUID, store.KeySession, session); err != nil {
		return models.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("visitor logged out", slog.String("visitor_uid", visitorUID))
	return session, nil
}

// TrialDaysLeft возвращает остаток пробного периода в днях. Значение всегда
// вычисляется от текущего времени и никогда не берется из сохраненного
// состояния, поэтому не может устареть.
func (s *AccessService) TrialDaysLeft(session models.Session) int {
	return TrialDaysLeft(session, s.now(), s.trialDays)
}

// TrialDaysLeft чистая функция остатка пробного периода:
// max(0, trialDays - floor(прошедших полных суток)). Для ролей без пробного
// периода всегда 0.
func TrialDaysLeft(session models.Session, now time.Time, trialDays int) int {
	if session.Role != models.RoleTrial || session.TrialStartDate == nil {
		return 0
	}
	elapsedDays := int(now.Sub(*session.TrialStartDate) / (24 * time.Hour))
	left := trialDays - elapsedDays
	if left < 0 {
		return 0
	}
	return left
}

// CanAccess проверяет доступ сессии к именованной возможности.
// Возможность вне таблицы открыта всем. Истекший пробный период теряет
// доступ ко всем закрытым возможностям, хотя роль остается "trial"
// до явного выхода.
func (s *AccessService) CanAccess(session models.Session, feature string) bool {
	allowed, gated := gatedFeatures[feature]
	if !gated {
		return true
	}
	if session.Role == models.RoleTrial && s.TrialDaysLeft(session) <= 0 {
		return false
	}
	for _, role := range allowed {
		if session.Role == role {
			return true
		}
	}
	return false
}
