package setup_operator

// SetupResponse ответ на создание первого оператора
type SetupResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
}
