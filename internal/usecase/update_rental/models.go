package update_rental

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// Request модель запроса на изменение аренды
type Request struct {
	RentalID    uuid.UUID           // ID аренды
	Action      domain.RentalAction // pause | resume | complete
	FinalAmount *decimal.Decimal    // Итог, указанный оператором при завершении (опционально)
}
