package domain

import "time"

// SettingsID идентификатор единственной записи настроек
const SettingsID = "global_settings"

// Settings shop-wide presentation settings
type Settings struct {
	ID              string
	LogoURL         *string
	PixQRURL        *string
	InstagramHandle *string
	WhatsAppPhone   *string
	UpdatedAt       time.Time
}

// SettingsPatch partial update, nil fields are left untouched
type SettingsPatch struct {
	LogoURL         *string
	PixQRURL        *string
	InstagramHandle *string
	WhatsAppPhone   *string
}

// IsEmpty returns true if nothing is going to change
func (p SettingsPatch) IsEmpty() bool {
	return p.LogoURL == nil && p.PixQRURL == nil && p.InstagramHandle == nil && p.WhatsAppPhone == nil
}
