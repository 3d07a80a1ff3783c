package upload_file

import (
	"io"

	"github.com/m04kA/SMC-SurfShopService/internal/infra/uploads"
)

type FileStore interface {
	Save(originalName string, content io.Reader) (*uploads.Stored, error)
	MaxBytes() int64
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
