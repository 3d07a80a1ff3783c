// Package receipt собирает чек аренды после завершения и готовое сообщение
// WhatsApp, которое оператор отправляет клиенту.
package receipt

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/internal/rentaltimer"
)

const whatsAppBaseURL = "https://wa.me/"

// ErrNoRental возвращается при попытке построить чек без аренды
var ErrNoRental = errors.New("receipt: rental is required")

// Shop реквизиты магазина в шапке чека
type Shop struct {
	Name     string
	Location string
	Timezone *time.Location
}

// Receipt итог аренды
type Receipt struct {
	RentalID      uuid.UUID
	RenterName    string
	SurfboardName string
	StartTime     time.Time
	EndTime       time.Time
	// ElapsedMinutes оплачиваемое время без пауз
	ElapsedMinutes float64
	Clock          string
	Duration       string
	Amount         decimal.Decimal
	// Final false для предварительного чека незавершённой аренды
	Final bool
}

// Build собирает чек. Для незавершённой аренды время окончания равно now,
// сумма считается по таймеру.
func Build(r *domain.Rental, now time.Time) (*Receipt, error) {
	if r == nil {
		return nil, ErrNoRental
	}

	end := now
	if r.EndTime != nil {
		end = *r.EndTime
	}

	elapsed := rentaltimer.ElapsedMinutes(r, end)

	amount := rentaltimer.AmountDue(r, end).Round(2)
	if r.FinalAmount != nil {
		amount = *r.FinalAmount
	}

	return &Receipt{
		RentalID:       r.ID,
		RenterName:     r.RenterName,
		SurfboardName:  r.SurfboardName,
		StartTime:      r.StartTime,
		EndTime:        end,
		ElapsedMinutes: elapsed,
		Clock:          rentaltimer.FormatDuration(elapsed),
		Duration:       HumanDuration(elapsed),
		Amount:         amount,
		Final:          r.IsCompleted(),
	}, nil
}

// HumanDuration форматирует минуты как "2h 5min" или "45min"
func HumanDuration(minutes float64) string {
	if minutes < 0 || math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		minutes = 0
	}
	total := int64(math.Floor(minutes))
	hours, mins := total/60, total%60
	if hours > 0 {
		return fmt.Sprintf("%dh %dmin", hours, mins)
	}
	return fmt.Sprintf("%dmin", mins)
}

// Message текст чека для отправки в мессенджер
func (rc *Receipt) Message(shop Shop) string {
	loc := shop.Timezone
	if loc == nil {
		loc = time.UTC
	}

	var b strings.Builder
	b.WriteString("🏄 *COMPROVANTE DE LOCAÇÃO*\n")
	b.WriteString("━━━━━━━━━━━━━━━━━━━━\n")
	if shop.Name != "" {
		fmt.Fprintf(&b, "🏪 *%s*\n", shop.Name)
	}
	if shop.Location != "" {
		fmt.Fprintf(&b, "📍 %s\n", shop.Location)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "👤 *Locatário:* %s\n", rc.RenterName)
	fmt.Fprintf(&b, "🏄 *Prancha:* %s\n", rc.SurfboardName)
	b.WriteString("\n")
	fmt.Fprintf(&b, "📅 *Início:* %s\n", rc.StartTime.In(loc).Format(domain.DateTimeFormat))
	fmt.Fprintf(&b, "📅 *Término:* %s\n", rc.EndTime.In(loc).Format(domain.DateTimeFormat))
	fmt.Fprintf(&b, "⏱️ *Duração:* %s\n", rc.Duration)
	b.WriteString("\n")
	fmt.Fprintf(&b, "💰 *VALOR TOTAL: R$ %s*\n", rc.Amount.StringFixed(2))
	b.WriteString("━━━━━━━━━━━━━━━━━━━━\n")
	b.WriteString("\n")
	b.WriteString("Obrigado pela preferência! 🤙\n")
	b.WriteString("Volte sempre!")

	return b.String()
}

// WhatsAppURL deep link с готовым текстом. Без телефона WhatsApp предлагает выбрать контакт.
func WhatsAppURL(message string, phone *string) string {
	target := whatsAppBaseURL
	if phone != nil {
		target += digitsOnly(*phone)
	}
	return target + "?text=" + encodeComponent(message)
}

// encodeComponent кодирует строку как encodeURIComponent: пробел становится %20, а не +
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
