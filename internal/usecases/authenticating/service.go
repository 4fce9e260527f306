package authenticating

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ventas-api/infrastructure/repository"
	"github.com/vfg2006/ventas-api/internal/config"
	"github.com/vfg2006/ventas-api/internal/domain"
	"github.com/vfg2006/ventas-api/pkg/utils"
)

type Authenticator interface {
	LoginOperator(ctx context.Context, email, clave string) (string, error)
	IssueToken(claims *domain.Claims) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	AuthorizeOperator(ctx context.Context, claims *domain.Claims) error
}

type Service struct {
	operatorRepo  repository.OperatorRepository
	secretKey     []byte
	signingMethod jwt.SigningMethod
	tokenTTL      time.Duration
	now           func() time.Time
}

// NewService solo acepta metodos de firma HMAC (HS256, HS384, HS512).
func NewService(operatorRepo repository.OperatorRepository, cfg *config.Config) (Authenticator, error) {
	method, ok := jwt.GetSigningMethod(cfg.Auth.SigningMethod).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Wrap(ErrUnsupportedSigningMethod, cfg.Auth.SigningMethod)
	}

	return &Service{
		operatorRepo:  operatorRepo,
		secretKey:     []byte(cfg.SecretKey),
		signingMethod: method,
		tokenTTL:      cfg.Auth.TokenTTL,
		now:           time.Now,
	}, nil
}

// LoginOperator devuelve un token firmado si email y clave coinciden con un operador.
// Cualquier discrepancia se informa como ErrAccessDenied.
func (s *Service) LoginOperator(ctx context.Context, email, clave string) (string, error) {
	operator, err := s.operatorRepo.GetOperatorByEmail(ctx, email)
	if err != nil {
		return "", errors.Wrap(err, "error al consultar el operador")
	}

	if operator == nil {
		return "", ErrAccessDenied
	}

	if subtle.ConstantTimeCompare([]byte(operator.Password), []byte(clave)) != 1 {
		logrus.WithField("user_email", email).Debug("Clave incorrecta")
		return "", ErrAccessDenied
	}

	return s.IssueToken(&domain.Claims{Email: operator.Email})
}

func (s *Service) IssueToken(claims *domain.Claims) (string, error) {
	if claims == nil || claims.Email == "" {
		return "", ErrMissingEmailClaim
	}

	jti, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "error al generar el id del token")
	}

	now := s.now()
	signed := *claims
	signed.RegisteredClaims = jwt.RegisteredClaims{
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(s.signingMethod, signed)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{s.signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, errors.WithMessage(ErrInvalidToken, err.Error())
	}

	if !token.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// AuthorizeOperator rechaza con ErrForbidden los tokens validos cuyo email no
// pertenece a un operador habilitado.
func (s *Service) AuthorizeOperator(ctx context.Context, claims *domain.Claims) error {
	if claims == nil {
		return ErrForbidden
	}

	operator, err := s.operatorRepo.GetOperatorByEmail(ctx, claims.Email)
	if err != nil {
		return errors.Wrap(err, "error al consultar el operador")
	}

	if operator == nil {
		return ErrForbidden
	}

	return nil
}
