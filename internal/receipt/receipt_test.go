package receipt

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/pkg/ptr"
)

var start = time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC)

func completedRental() *domain.Rental {
	end := start.Add(95 * time.Minute)
	amount := decimal.RequireFromString("42.50")
	return &domain.Rental{
		ID:                  uuid.New(),
		SurfboardID:         uuid.New(),
		SurfboardName:       "Fish 5'8",
		RenterName:          "João Silva",
		HourlyRate:          decimal.NewFromInt(30),
		EstimatedTime:       60,
		StartTime:           start,
		EndTime:             &end,
		TotalPausedDuration: 10,
		Status:              domain.RentalCompleted,
		FinalAmount:         &amount,
	}
}

func TestBuild_CompletedRental(t *testing.T) {
	rc, err := Build(completedRental(), start.Add(5*time.Hour))

	require.NoError(t, err)
	assert.True(t, rc.Final)
	assert.Equal(t, 85.0, rc.ElapsedMinutes)
	assert.Equal(t, "01:25:00", rc.Clock)
	assert.Equal(t, "1h 25min", rc.Duration)
	assert.Equal(t, "42.50", rc.Amount.StringFixed(2))
	assert.Equal(t, start.Add(95*time.Minute), rc.EndTime)
}

func TestBuild_ActiveRentalPreview(t *testing.T) {
	r := completedRental()
	r.Status = domain.RentalActive
	r.EndTime = nil
	r.FinalAmount = nil
	r.TotalPausedDuration = 0

	rc, err := Build(r, start.Add(45*time.Minute))

	require.NoError(t, err)
	assert.False(t, rc.Final)
	assert.Equal(t, "45min", rc.Duration)
	assert.Equal(t, "22.50", rc.Amount.StringFixed(2))
}

func TestBuild_NilRental(t *testing.T) {
	_, err := Build(nil, start)
	assert.ErrorIs(t, err, ErrNoRental)
}

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "0min", HumanDuration(0))
	assert.Equal(t, "59min", HumanDuration(59.9))
	assert.Equal(t, "1h 0min", HumanDuration(60))
	assert.Equal(t, "26h 3min", HumanDuration(26*60+3))
	assert.Equal(t, "0min", HumanDuration(-5))
}

func TestMessage(t *testing.T) {
	rc, err := Build(completedRental(), start)
	require.NoError(t, err)

	msg := rc.Message(Shop{Name: "Tabatinga2Surf", Location: "Tabatinga, Paraíba", Timezone: time.FixedZone("BRT", -3*3600)})

	assert.True(t, strings.HasPrefix(msg, "🏄 *COMPROVANTE DE LOCAÇÃO*"))
	assert.Contains(t, msg, "🏪 *Tabatinga2Surf*")
	assert.Contains(t, msg, "👤 *Locatário:* João Silva")
	assert.Contains(t, msg, "🏄 *Prancha:* Fish 5'8")
	assert.Contains(t, msg, "📅 *Início:* 10/01/2025 08:00")
	assert.Contains(t, msg, "📅 *Término:* 10/01/2025 09:35")
	assert.Contains(t, msg, "⏱️ *Duração:* 1h 25min")
	assert.Contains(t, msg, "💰 *VALOR TOTAL: R$ 42.50*")
	assert.True(t, strings.HasSuffix(msg, "Volte sempre!"))
}

func TestWhatsAppURL(t *testing.T) {
	link := WhatsAppURL("Olá mundo & cia", nil)

	assert.Equal(t, "https://wa.me/?text=Ol%C3%A1%20mundo%20%26%20cia", link)
	assert.NotContains(t, link, "+")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Olá mundo & cia", parsed.Query().Get("text"))
}

func TestWhatsAppURL_WithPhone(t *testing.T) {
	link := WhatsAppURL("oi", ptr.Ptr("+55 (83) 99999-0000"))

	assert.Equal(t, "https://wa.me/5583999990000?text=oi", link)
}
