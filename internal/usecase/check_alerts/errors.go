package check_alerts

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("check_alerts: internal error")
