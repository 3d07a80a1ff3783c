package products

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	service "github.com/m04kA/SMC-SurfShopService/internal/service/products"
	"github.com/m04kA/SMC-SurfShopService/internal/service/products/models"
	"github.com/m04kA/SMC-SurfShopService/pkg/logger"
)

type fakeService struct {
	category *string
	deleted  []uuid.UUID
	err      error
}

func (f *fakeService) List(_ context.Context, category *string) ([]models.ProductResponse, error) {
	f.category = category
	return []models.ProductResponse{{ID: "p1", Name: "Parafina", Category: "acessorios"}}, nil
}

func (f *fakeService) Create(_ context.Context, req *models.ProductRequest) (*models.ProductResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ProductResponse{ID: uuid.NewString(), Name: req.Name, Price: req.Price, Stock: req.Stock}, nil
}

func (f *fakeService) Update(_ context.Context, id uuid.UUID, req *models.ProductRequest) (*models.ProductResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ProductResponse{ID: id.String(), Name: req.Name}, nil
}

func (f *fakeService) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func serve(svc ProductService, method, target, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/products", h.List).Methods(http.MethodGet)
	r.HandleFunc("/products", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/products/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/products/{id}", h.Delete).Methods(http.MethodDelete)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
	return w
}

func TestHandler_List_Category(t *testing.T) {
	svc := &fakeService{}

	w := serve(svc, http.MethodGet, "/products?category=acessorios", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.category)
	assert.Equal(t, "acessorios", *svc.category)

	serve(svc, http.MethodGet, "/products", "")
	assert.Nil(t, svc.category)
}

func TestHandler_Create(t *testing.T) {
	w := serve(&fakeService{}, http.MethodPost, "/products", `{"name":"Parafina","price":15.9,"category":"acessorios","stock":30}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"price":15.9`)
	assert.Contains(t, w.Body.String(), `"stock":30`)
}

func TestHandler_Delete(t *testing.T) {
	svc := &fakeService{}
	id := uuid.New()

	w := serve(svc, http.MethodDelete, "/products/"+id.String(), "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []uuid.UUID{id}, svc.deleted)
}

func TestHandler_Errors(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name   string
		err    error
		method string
		target string
		body   string
		want   int
	}{
		{"missing category", nil, http.MethodPost, "/products", `{"name":"x","price":1}`, http.StatusBadRequest},
		{"negative stock", nil, http.MethodPost, "/products", `{"name":"x","category":"c","stock":-1}`, http.StatusBadRequest},
		{"service rejects", service.ErrInvalidInput, http.MethodPost, "/products", `{"name":"x","category":"c"}`, http.StatusBadRequest},
		{"bad id", nil, http.MethodPut, "/products/abc", `{"name":"x","category":"c"}`, http.StatusBadRequest},
		{"update missing", service.ErrProductNotFound, http.MethodPut, "/products/" + id, `{"name":"x","category":"c"}`, http.StatusNotFound},
		{"delete missing", service.ErrProductNotFound, http.MethodDelete, "/products/" + id, "", http.StatusNotFound},
		{"internal", service.ErrInternal, http.MethodDelete, "/products/" + id, "", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(&fakeService{err: tt.err}, tt.method, tt.target, tt.body).Code)
		})
	}
}
