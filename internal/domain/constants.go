package domain

// Business validation constants
const (
	MaxRenterNameLength   = 100
	MinEstimatedTime      = 1    // minutes
	MaxEstimatedTime      = 1440 // 24 hours
	MaxSurfboardNameLen   = 100
	MaxProductNameLength  = 200
	MaxDescriptionLength  = 2000
	MaxCategoryLength     = 100
	MaxGalleryTitleLength = 200
	MaxOrderItems         = 50
	MaxItemQuantity       = 100
)

// History limits
const (
	DefaultHistoryLimit = 100
	DateHistoryLimit    = 1000
)

// Time format constants
const (
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	TimeFormat     = "15:04"            // HH:MM
	DateTimeFormat = "02/01/2006 15:04" // DD/MM/YYYY HH:MM, формат чека
)

// DefaultCurrency валюта магазина (ISO 4217, нижний регистр как в Stripe)
const DefaultCurrency = "brl"

// InProgressStatuses статусы аренд, у которых доска ещё у клиента
var InProgressStatuses = []RentalStatus{
	RentalActive,
	RentalPaused,
}
