package openweather

import "errors"

var (
	// ErrNoAPIKey возвращается, если ключ OpenWeather не настроен
	ErrNoAPIKey = errors.New("openweather client: api key is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("openweather client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("openweather client: invalid response")
)
