package start_rental

import "github.com/google/uuid"

// Request модель запроса на выдачу доски
type Request struct {
	SurfboardID   uuid.UUID // ID доски
	RenterName    string    // Имя клиента
	EstimatedTime int       // Ожидаемая длительность, минуты
}
