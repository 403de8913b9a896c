package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/pressure-drop-service/config"
	"github.com/guttosm/pressure-drop-service/internal/domain/dto"
)

var (
	// ErrInvalidCredentials is returned when a client ID or secret is incorrect.
	ErrInvalidCredentials = errors.New("invalid client credentials")
	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// tokenIssuer is the iss claim of every access token.
const tokenIssuer = "pressure-drop-service"

// ClaimsWithJWT extends dto.Claims with JWT RegisteredClaims for token generation.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// TokenService exchanges client credentials for signed access tokens and
// validates them. Tokens are stateless; they expire but are never stored.
type TokenService interface {
	// IssueToken verifies the client secret and returns a signed access token.
	IssueToken(ctx context.Context, clientID, clientSecret string) (*dto.TokenResponse, error)
	// ValidateToken validates an access token and returns its claims.
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
}

// TokenServiceImpl implements TokenService.
type TokenServiceImpl struct {
	secretKey      []byte
	accessTokenTTL time.Duration
	clients        map[string]string
	now            func() time.Time
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
	// Clients maps a client ID to the bcrypt hash of its secret.
	Clients map[string]string
}

// NewTokenConfigFromAuthConfig creates TokenConfig from config.AuthConfig.
func NewTokenConfigFromAuthConfig(authConfig config.AuthConfig) TokenConfig {
	return TokenConfig{
		SecretKey:      authConfig.JWTSecretKey,
		AccessTokenTTL: authConfig.AccessTokenTTL,
		Clients:        authConfig.Clients,
	}
}

// NewTokenService creates a new token service.
func NewTokenService(cfg TokenConfig) *TokenServiceImpl {
	return &TokenServiceImpl{
		secretKey:      []byte(cfg.SecretKey),
		accessTokenTTL: cfg.AccessTokenTTL,
		clients:        cfg.Clients,
		now:            time.Now,
	}
}

// IssueToken verifies the client secret and returns a signed access token.
func (s *TokenServiceImpl) IssueToken(_ context.Context, clientID, clientSecret string) (*dto.TokenResponse, error) {
	hash, ok := s.clients[clientID]
	if !ok {
		// Unknown IDs cost one comparison, the same as a wrong secret.
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(clientSecret))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(clientSecret)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTokenTTL.Seconds()),
	}, nil
}

// ValidateToken validates an access token and returns its claims.
func (s *TokenServiceImpl) ValidateToken(_ context.Context, tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ClaimsWithJWT)
	if !ok || !token.Valid || claims.ClientID == "" {
		return nil, ErrInvalidToken
	}
	return &claims.Claims, nil
}

func (s *TokenServiceImpl) generateAccessToken(clientID string) (string, error) {
	now := s.now()

	claims := &ClaimsWithJWT{
		Claims: dto.Claims{ClientID: clientID},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   clientID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("unused-client-secret"), bcrypt.DefaultCost)
	return hash
})
