package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"studio/config"
	"studio/internal/domain/service"
	"studio/internal/errors"
)

const tokenIssuer = "studio"

type jwtService struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTService builds the HS256 token service from the admin section.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Admin == nil || cfg.Admin.TokenSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:    []byte(cfg.Admin.TokenSecret),
		accessTTL: cfg.Admin.TokenTTL,
		now:       time.Now,
	}, nil
}

// GenerateAccessToken signs an access token whose subject is the staff user ID.
func (s *jwtService) GenerateAccessToken(userID int64, username string, roles []string) (string, error) {
	now := s.now()
	claims := service.Claims{
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}

// ValidateToken verifies the signature, issuer and expiry of tokenString.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}

	if _, err := strconv.ParseInt(claims.Subject, 10, 64); err != nil {
		return nil, errors.Wrap(err, "token subject is not a user id")
	}

	return claims, nil
}

// AccessTokenTTL returns the configured duration for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
