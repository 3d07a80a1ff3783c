package upload_file

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
	"github.com/m04kA/SMC-SurfShopService/internal/api/middleware"
	"github.com/m04kA/SMC-SurfShopService/internal/infra/uploads"
)

const (
	formField = "file"

	// запас на заголовки multipart сверх лимита файла
	multipartOverhead = 64 << 10

	msgMissingFile     = "arquivo não enviado"
	msgTooLarge        = "arquivo muito grande"
	msgUnsupportedType = "tipo de arquivo não suportado, envie uma imagem"
)

type Handler struct {
	store  FileStore
	logger Logger
}

func NewHandler(store FileStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle POST /api/v1/upload (multipart, поле file)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := h.store.MaxBytes()
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)

	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("POST /upload - Request too large: limit=%d", limit)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgTooLarge)
			return
		}
		h.logger.Warn("POST /upload - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(formField)
	if err != nil {
		h.logger.Warn("POST /upload - Missing file: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	stored, err := h.store.Save(header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrTooLarge):
			h.logger.Warn("POST /upload - File too large: name=%q, size=%d", header.Filename, header.Size)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgTooLarge)
		case errors.Is(err, uploads.ErrUnsupportedType):
			h.logger.Warn("POST /upload - Unsupported file: name=%q", header.Filename)
			handlers.RespondBadRequest(w, msgUnsupportedType)
		default:
			h.logger.Error("POST /upload - Failed to store file: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /upload - File stored: %s, operator=%s", stored.Filename, middleware.GetOperatorName(r.Context()))
	handlers.RespondJSON(w, http.StatusOK, UploadResponse{URL: stored.URL, Filename: stored.Filename})
}
