package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const maxJSONBodySize = 1 << 20

const (
	msgInternalError = "erro interno do servidor"
	msgUnauthorized  = "não autorizado"
	msgForbidden     = "acesso negado"
)

// ErrEmptyBody возвращается, когда тело запроса пустое
var ErrEmptyBody = errors.New("request body is empty")

// ErrorResponse модель ошибки API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DecodeJSON читает JSON тело запроса в dst. Неизвестные поля запрещены.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodySize))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}

// PathUUID извлекает UUID из переменной пути
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(mux.Vars(r)[name]))
}

func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondUnauthorized(w http.ResponseWriter) {
	RespondError(w, http.StatusUnauthorized, msgUnauthorized)
}

func RespondForbidden(w http.ResponseWriter) {
	RespondError(w, http.StatusForbidden, msgForbidden)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondNoContent отвечает 204 без тела
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
