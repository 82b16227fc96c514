package utils

import (
	"errors"
	"strings"
	"time"

	"pandas-platform/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const TokenCookieName = "token"

var (
	ErrTokenMissing = errors.New("token missing")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// SessionClaims holds the user id; expiry lives in the registered claims.
type SessionClaims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

func GenerateJWTToken(userID uint, cfg *config.Config) (string, error) {
	return generateJWTToken(userID, cfg.JWTSecret, time.Now(), cfg.JWTExpire)
}

func generateJWTToken(userID uint, secret string, now time.Time, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWTToken verifies signature and expiry and returns the user id.
// Errors are ErrTokenMissing, ErrTokenExpired or ErrTokenInvalid.
func ParseJWTToken(tokenString string, cfg *config.Config) (uint, error) {
	if tokenString == "" {
		return 0, ErrTokenMissing
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !token.Valid || claims.UserID == 0 || claims.ExpiresAt == nil {
		return 0, ErrTokenInvalid
	}

	return claims.UserID, nil
}

// ExtractToken reads the session token from the cookie, then from a bearer header.
func ExtractToken(c *fiber.Ctx) string {
	if token := c.Cookies(TokenCookieName); token != "" {
		return token
	}
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// SetTokenCookie stores the session token in an http-only, strict same-site cookie.
func SetTokenCookie(c *fiber.Ctx, token string, cfg *config.Config) {
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(cfg.JWTExpire),
		HTTPOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// ClearTokenCookie expires the session cookie. The token itself stays valid until exp.
func ClearTokenCookie(c *fiber.Ctx, cfg *config.Config) {
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(1, 0),
		HTTPOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
