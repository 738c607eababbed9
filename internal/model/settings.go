package model

type NotificationSettings struct {
	DailyReminders bool `json:"dailyReminders"`
	NewContent     bool `json:"newContent"`
	Achievements   bool `json:"achievements"`
	WeeklyRecap    bool `json:"weeklyRecap"`
}

type PrivacySettings struct {
	ShareProgress     bool `json:"shareProgress"`
	LearningAnalytics bool `json:"learningAnalytics"`
	HistorySaving     bool `json:"historySaving"`
}

type AppSettings struct {
	DownloadOverWifi bool   `json:"downloadOverWifi"`
	OfflineMode      bool   `json:"offlineMode"`
	AutoPlay         bool   `json:"autoPlay"`
	Language         string `json:"language"`
}

// Settings 设置页的开关集合
// swagger:model Settings
type Settings struct {
	DarkMode      bool                 `json:"darkMode"`
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
	App           AppSettings          `json:"app"`
}

func DefaultSettings() Settings {
	return Settings{
		DarkMode: false,
		Notifications: NotificationSettings{
			DailyReminders: true,
			NewContent:     true,
			Achievements:   true,
			WeeklyRecap:    false,
		},
		Privacy: PrivacySettings{
			ShareProgress:     true,
			LearningAnalytics: true,
			HistorySaving:     true,
		},
		App: AppSettings{
			DownloadOverWifi: true,
			OfflineMode:      false,
			AutoPlay:         true,
			Language:         "en",
		},
	}
}
