package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ventas-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ventas-api/internal/domain"
	"github.com/vfg2006/ventas-api/internal/scheduler"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "clave incorrecta", body: `{"email":"kuky@lanegra.cl","clave":"000000"}`, wantStatus: http.StatusNotFound, wantBody: `{"mensaje":"Acceso Denegado"}`},
		{name: "email desconocido", body: `{"email":"otro@lanegra.cl","clave":"123456"}`, wantStatus: http.StatusNotFound, wantBody: `{"mensaje":"Acceso Denegado"}`},
		{name: "sin clave", body: `{"email":"kuky@lanegra.cl"}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "json mal formado", body: `no-json`, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rt, _ := newTestRouter(t, mocks.NewMockVentaRepository(ctrl), false)

			rec := serve(rt, http.MethodPost, "/login", tt.body, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestLogin_TokenOpensListado(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockVentaRepository(ctrl)
	repo.EXPECT().ListVentas(gomock.Any()).Return([]*domain.Venta{}, nil)
	rt, auth := newTestRouter(t, repo, false)

	rec := serve(rt, http.MethodPost, "/login", `{"email":"kuky@lanegra.cl","clave":"123456"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var token string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token), "el token es un string JSON sin envolver")
	assert.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "kuky@lanegra.cl", claims.Email)
	assert.NotContains(t, rec.Body.String(), "123456")

	rec = serve(rt, http.MethodGet, "/ventas", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

type stubChecker struct {
	status scheduler.DatabaseStatus
}

func (s stubChecker) Check(ctx context.Context) scheduler.DatabaseStatus {
	return s.status
}

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name       string
		status     scheduler.DatabaseStatus
		wantStatus int
		wantState  string
	}{
		{name: "base disponible", status: scheduler.DatabaseStatus{Healthy: true, CheckedAt: time.Now()}, wantStatus: http.StatusOK, wantState: "ok"},
		{name: "base caida", status: scheduler.DatabaseStatus{Error: "connection refused"}, wantStatus: http.StatusServiceUnavailable, wantState: "degradado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(HealthcheckHandler(stubChecker{status: tt.status}, "1.0.1"), http.MethodGet, "/healthcheck", "", "")
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp HealthcheckResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantState, resp.Status)
			assert.Equal(t, "1.0.1", resp.Version)
			assert.Equal(t, tt.status.Error, resp.Database.Error)
		})
	}
}
