package models

import "time"

// Role уровень доступа посетителя.
type Role string

// Уровни доступа: гость, пробный период, оплаченный доступ.
const (
	RoleGuest Role = "guest"
	RoleTrial Role = "trial"
	RolePaid  Role = "paid"
)

// IsValidRole проверяет, что строка является известной ролью.
func IsValidRole(s string) bool {
	switch Role(s) {
	case RoleGuest, RoleTrial, RolePaid:
		return true
	}
	return false
}

// Session состояние сессии посетителя. Создается как гостевая при первом
// обращении, изменяется только явными login/logout и сохраняется в
// хранилище состояния при каждом изменении.
//
// Остаток пробного периода не хранится: он каждый раз вычисляется заново
// по TrialStartDate и текущему времени.
type Session struct {
	Role           Role       `json:"role"`
	TrialStartDate *time.Time `json:"trial_start_date,omitempty"`
	UserName       string     `json:"user_name"`
}

// GuestSession возвращает начальное гостевое состояние.
func GuestSession() Session {
	return Session{Role: RoleGuest}
}

// IsLoggedIn признак авторизованного посетителя, производный от роли.
func (s Session) IsLoggedIn() bool {
	return s.Role != RoleGuest
}
