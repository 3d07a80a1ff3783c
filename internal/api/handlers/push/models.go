package push

// SubscribeResponse ответ на подписку
type SubscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
