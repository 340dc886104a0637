package middleware

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/richardGonza/orasLocal/internal/domain/entities"
)

const (
	// SessionCookieName es la cookie httpOnly que lleva el token de sesión
	SessionCookieName = "oras_session"
	// CsrfCookieName es la cookie legible por JS del doble envío CSRF
	CsrfCookieName = "csrf_token"
	// CsrfHeaderName es el header que debe repetir el valor de la cookie CSRF
	CsrfHeaderName = "X-CSRF-Token"

	sessionTTL = 24 * time.Hour

	localsPersonKey = "person"
)

// sessionClaims son los claims del token de sesión
type sessionClaims struct {
	UserID  uint `json:"user_id"`
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// JWTSecret retorna la clave de firma de los tokens de sesión. El default solo
// sirve para desarrollo local; en despliegue JWT_SECRET es obligatoria.
func JWTSecret() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("oras-local-dev-secret")
}

// IssueSessionToken firma un token HS256 de 24h para la persona
func IssueSessionToken(person *entities.People) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID:  person.ID,
		IsAdmin: person.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret())
}

// SetSessionCookie escribe la cookie de sesión httpOnly
func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// ClearSessionCookie vence la cookie de sesión
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// IssueCsrfCookie rota el token CSRF y lo escribe en una cookie legible por
// JS (el cliente debe reenviarlo en el header X-CSRF-Token)
func IssueCsrfCookie(c *fiber.Ctx) string {
	token := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     CsrfCookieName,
		Value:    token,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: false,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return token
}

// sessionToken extrae el token de la cookie de sesión o del header
// Authorization: Bearer
func sessionToken(c *fiber.Ctx) string {
	if cookie := c.Cookies(SessionCookieName); cookie != "" {
		return cookie
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// RequireAuth valida el token de sesión y carga la persona desde la base en
// c.Locals. Cargar de la base (y no confiar en los claims) hace que bajas y
// cambios de rol apliquen de inmediato.
func RequireAuth(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := sessionToken(c)
		if tokenStr == "" {
			return unauthorized(c)
		}

		claims := &sessionClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("método de firma inesperado")
			}
			return JWTSecret(), nil
		})
		if err != nil || !token.Valid {
			return unauthorized(c)
		}

		var person entities.People
		if err := db.First(&person, claims.UserID).Error; err != nil {
			return unauthorized(c)
		}

		c.Locals(localsPersonKey, &person)
		return c.Next()
	}
}

// RequireAdmin corta con 403 si la persona autenticada no es admin. Debe ir
// después de RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		person := CurrentPerson(c)
		if person == nil {
			return unauthorized(c)
		}
		if !person.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "No tienes permisos de administrador",
			})
		}
		return c.Next()
	}
}

// VerifyCsrf aplica el chequeo de doble envío a los métodos con efectos:
// la cookie csrf_token y el header X-CSRF-Token deben coincidir
func VerifyCsrf() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}

		cookie := c.Cookies(CsrfCookieName)
		header := c.Get(CsrfHeaderName)
		if cookie == "" || header == "" || cookie != header {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Token CSRF inválido",
			})
		}
		return c.Next()
	}
}

// CurrentPerson retorna la persona cargada por RequireAuth, o nil
func CurrentPerson(c *fiber.Ctx) *entities.People {
	person, _ := c.Locals(localsPersonKey).(*entities.People)
	return person
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": "No autenticado",
	})
}
