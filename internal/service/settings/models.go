package settings

import (
	"time"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// Response настройки магазина в формате API
type Response struct {
	ID              string    `json:"id"`
	LogoURL         *string   `json:"logo_url"`
	PixQRURL        *string   `json:"pix_qr_url"`
	InstagramHandle *string   `json:"instagram_handle"`
	WhatsAppPhone   *string   `json:"whatsapp_phone"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UpdateRequest частичное обновление, отсутствующие поля не меняются
type UpdateRequest struct {
	LogoURL         *string `json:"logo_url,omitempty" validate:"omitempty,max=2048"`
	PixQRURL        *string `json:"pix_qr_url,omitempty" validate:"omitempty,max=2048"`
	InstagramHandle *string `json:"instagram_handle,omitempty" validate:"omitempty,max=100"`
	WhatsAppPhone   *string `json:"whatsapp_phone,omitempty" validate:"omitempty,max=32"`
}

func (r *UpdateRequest) toPatch() domain.SettingsPatch {
	return domain.SettingsPatch{
		LogoURL:         r.LogoURL,
		PixQRURL:        r.PixQRURL,
		InstagramHandle: r.InstagramHandle,
		WhatsAppPhone:   r.WhatsAppPhone,
	}
}

func fromDomain(s *domain.Settings) *Response {
	return &Response{
		ID:              s.ID,
		LogoURL:         s.LogoURL,
		PixQRURL:        s.PixQRURL,
		InstagramHandle: s.InstagramHandle,
		WhatsAppPhone:   s.WhatsAppPhone,
		UpdatedAt:       s.UpdatedAt,
	}
}
