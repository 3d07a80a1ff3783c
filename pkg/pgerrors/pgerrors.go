package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL
const (
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
	codeSerializationFailed = "40001"
)

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

// IsUniqueViolation нарушение уникального индекса
func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// IsCheckViolation нарушение CHECK ограничения
func IsCheckViolation(err error) bool {
	return hasCode(err, codeCheckViolation)
}

// IsSerializationFailure конфликт сериализуемых транзакций, запрос можно повторить
func IsSerializationFailure(err error) bool {
	return hasCode(err, codeSerializationFailed)
}
