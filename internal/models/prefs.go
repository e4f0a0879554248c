package models

// Prefs пользовательские настройки витрины: тема оформления и отметка о
// пройденном ознакомительном туре. Третья логическая запись в хранилище
// состояния посетителя.
type Prefs struct {
	Theme          string `json:"theme"` // "dark" или "light"
	OnboardingDone bool   `json:"onboarding_done"`
}

// DefaultPrefs настройки по умолчанию для нового посетителя.
func DefaultPrefs() Prefs {
	return Prefs{Theme: "dark"}
}
