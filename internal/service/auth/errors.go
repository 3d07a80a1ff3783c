package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserExists возвращается, если логин уже занят
	ErrUserExists = errors.New("user already exists")

	// ErrSetupClosed возвращается, если первый оператор уже создан
	ErrSetupClosed = errors.New("setup already completed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
