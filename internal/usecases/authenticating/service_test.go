package authenticating

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ventas-api/infrastructure/repository"
	"github.com/vfg2006/ventas-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ventas-api/internal/config"
	"github.com/vfg2006/ventas-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const (
	operatorEmail    = "kuky@lanegra.cl"
	operatorPassword = "123456"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey: "clave-de-prueba",
		Auth: config.Auth{
			SigningMethod: "HS256",
			TokenTTL:      time.Hour,
		},
		Operator: config.Operator{Email: operatorEmail, Password: operatorPassword},
	}
}

func newTestService(t *testing.T, cfg *config.Config) Authenticator {
	t.Helper()
	service, err := NewService(repository.NewOperatorRepository(cfg.Operator), cfg)
	require.NoError(t, err)
	return service
}

func TestNewService_RejectsNonHMAC(t *testing.T) {
	for _, method := range []string{"RS256", "none", "desconocido"} {
		cfg := testConfig()
		cfg.Auth.SigningMethod = method

		_, err := NewService(repository.NewOperatorRepository(cfg.Operator), cfg)
		assert.ErrorIs(t, err, ErrUnsupportedSigningMethod, method)
	}
}

func TestService_LoginOperator(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		clave   string
		wantErr error
	}{
		{name: "credenciales correctas", email: operatorEmail, clave: operatorPassword},
		{name: "clave incorrecta", email: operatorEmail, clave: "654321", wantErr: ErrAccessDenied},
		{name: "email desconocido", email: "otro@lanegra.cl", clave: operatorPassword, wantErr: ErrAccessDenied},
		{name: "email con otra capitalizacion", email: "KUKY@lanegra.cl", clave: operatorPassword, wantErr: ErrAccessDenied},
		{name: "clave vacia", email: operatorEmail, clave: "", wantErr: ErrAccessDenied},
	}

	service := newTestService(t, testConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.LoginOperator(context.Background(), tt.email, tt.clave)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, operatorEmail, claims.Email)
			assert.NotEmpty(t, claims.ID)
		})
	}
}

func TestService_LoginOperator_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOperatorRepository(ctrl)
	repo.EXPECT().GetOperatorByEmail(gomock.Any(), operatorEmail).Return(nil, errors.New("sin conexion"))

	service, err := NewService(repo, testConfig())
	require.NoError(t, err)

	_, err = service.LoginOperator(context.Background(), operatorEmail, operatorPassword)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccessDenied)
}

func TestService_IssueToken_RequiresEmail(t *testing.T) {
	service := newTestService(t, testConfig())

	_, err := service.IssueToken(&domain.Claims{})
	assert.ErrorIs(t, err, ErrMissingEmailClaim)

	_, err = service.IssueToken(nil)
	assert.ErrorIs(t, err, ErrMissingEmailClaim)
}

func TestService_IssueToken_SetsExpiration(t *testing.T) {
	service := newTestService(t, testConfig())

	token, err := service.IssueToken(&domain.Claims{Email: operatorEmail})
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestService_ValidateToken(t *testing.T) {
	cfg := testConfig()
	service := newTestService(t, cfg)

	validToken, err := service.IssueToken(&domain.Claims{Email: operatorEmail})
	require.NoError(t, err)

	expiredCfg := testConfig()
	expiredCfg.Auth.TokenTTL = -time.Minute
	expiredToken, err := newTestService(t, expiredCfg).IssueToken(&domain.Claims{Email: operatorEmail})
	require.NoError(t, err)

	otherKeyCfg := testConfig()
	otherKeyCfg.SecretKey = "otra-clave"
	foreignToken, err := newTestService(t, otherKeyCfg).IssueToken(&domain.Claims{Email: operatorEmail})
	require.NoError(t, err)

	hs512Token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, domain.Claims{
		Email: operatorEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(cfg.SecretKey))
	require.NoError(t, err)

	noExpToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
		Email: operatorEmail,
	}).SignedString([]byte(cfg.SecretKey))
	require.NoError(t, err)

	parts := strings.Split(validToken, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "token valido", token: validToken},
		{name: "token expirado", token: expiredToken, wantErr: ErrExpiredToken},
		{name: "firmado con otra clave", token: foreignToken, wantErr: ErrInvalidToken},
		{name: "algoritmo distinto al configurado", token: hs512Token, wantErr: ErrInvalidToken},
		{name: "sin expiracion", token: noExpToken, wantErr: ErrInvalidToken},
		{name: "payload alterado", token: tampered, wantErr: ErrInvalidToken},
		{name: "basura", token: "no-es-un-jwt", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsAuthenticationError(err))
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, operatorEmail, claims.Email)
		})
	}
}

func TestService_AuthorizeOperator(t *testing.T) {
	service := newTestService(t, testConfig())
	ctx := context.Background()

	assert.NoError(t, service.AuthorizeOperator(ctx, &domain.Claims{Email: operatorEmail}))
	assert.ErrorIs(t, service.AuthorizeOperator(ctx, &domain.Claims{Email: "intruso@lanegra.cl"}), ErrForbidden)
	assert.ErrorIs(t, service.AuthorizeOperator(ctx, nil), ErrForbidden)
}
