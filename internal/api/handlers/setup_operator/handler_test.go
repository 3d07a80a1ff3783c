package setup_operator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SurfShopService/internal/service/auth"
	"github.com/m04kA/SMC-SurfShopService/pkg/logger"
)

type fakeService struct {
	err error
}

func (f fakeService) Setup(context.Context, *auth.Credentials) error {
	return f.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		err  error
		body string
		want int
	}{
		{"created", nil, `{"username":" admin ","password":"segredo123"}`, http.StatusCreated},
		{"missing username", nil, `{"password":"segredo123"}`, http.StatusBadRequest},
		{"long password", nil, `{"username":"admin","password":"` + strings.Repeat("x", 73) + `"}`, http.StatusBadRequest},
		{"username taken", auth.ErrUserExists, `{"username":"admin","password":"segredo123"}`, http.StatusConflict},
		{"setup closed", auth.ErrSetupClosed, `{"username":"outro","password":"segredo123"}`, http.StatusForbidden},
		{"internal", auth.ErrInternal, `{"username":"admin","password":"segredo123"}`, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			NewHandler(fakeService{err: tt.err}, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/setup", strings.NewReader(tt.body)))

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusCreated {
				assert.JSONEq(t, `{"success":true,"username":"admin"}`, w.Body.String())
			}
		})
	}
}
