package http

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	ctxAdminKey = "admin"
	tokenType   = "Bearer"
)

var (
	ErrJWTSecretIsRequired     = errors.New("jwt secret is required")
	ErrAdminIsNotConfigured    = errors.New("admin username and password hash are required")
	errUnexpectedSigningMethod = errors.New("unexpected signing method")
)

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries a signed access token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AuthConfig holds the single back-office account. PasswordHash is a bcrypt hash.
type AuthConfig struct {
	Username     string
	PasswordHash string
	Secret       string
	TokenTTL     time.Duration
}

// Authenticator issues and verifies HS256 admin tokens.
type Authenticator struct {
	username     []byte
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

func NewAuthenticator(cfg AuthConfig) (*Authenticator, error) {
	if cfg.Secret == "" {
		return nil, ErrJWTSecretIsRequired
	}
	if cfg.Username == "" || cfg.PasswordHash == "" {
		return nil, ErrAdminIsNotConfigured
	}
	if _, err := bcrypt.Cost([]byte(cfg.PasswordHash)); err != nil {
		return nil, fmt.Errorf("admin password hash: %w", err)
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &Authenticator{
		username:     []byte(cfg.Username),
		passwordHash: []byte(cfg.PasswordHash),
		secret:       []byte(cfg.Secret),
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

// Login handles POST /api/admin/login.
func (a *Authenticator) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), a.username) == 1
	passErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(req.Password))
	if !userOK || passErr != nil {
		return errorJSON(c, http.StatusUnauthorized, "invalid username or password")
	}

	token, err := a.IssueToken(req.Username)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}

	return c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   tokenType,
		ExpiresIn:   int64(a.ttl.Seconds()),
	})
}

// IssueToken signs a token for subject, valid for the configured TTL.
func (a *Authenticator) IssueToken(subject string) (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Middleware rejects requests without a valid bearer token.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, rawToken, ok := strings.Cut(authz, " ")
			if !ok || !strings.EqualFold(scheme, tokenType) {
				return errorJSON(c, http.StatusUnauthorized, "unauthorized")
			}

			claims, err := a.parse(strings.TrimSpace(rawToken))
			if err != nil {
				return errorJSON(c, http.StatusUnauthorized, "unauthorized")
			}

			c.Set(ctxAdminKey, claims.Subject)
			return next(c)
		}
	}
}

func (a *Authenticator) parse(rawToken string) (*jwt.RegisteredClaims, error) {
	if rawToken == "" {
		return nil, jwt.ErrTokenMalformed
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errUnexpectedSigningMethod
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
