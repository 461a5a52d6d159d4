package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const adminUser = "admin"

// BasicAuth admin uçlarını tek bir paylaşılan parola ile korur.
// Parola hiç konfigüre edilmemişse her istek, normal yetki hatasından
// ayrışan bir sunucu konfigürasyon hatasıyla (500) reddedilir.
func BasicAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "ADMIN_PASSWORD not set on server."})
		}

		scheme, token, _ := strings.Cut(c.Get(fiber.HeaderAuthorization), " ")
		if !strings.EqualFold(scheme, "Basic") || token == "" {
			return challenge(c, "Missing auth.")
		}

		decoded, err := base64.StdEncoding.DecodeString(token)
		if err != nil {
			return challenge(c, "Missing auth.")
		}

		user, password, ok := strings.Cut(string(decoded), ":")
		if !ok || user != adminUser || !secretMatches(password, secret) {
			return challenge(c, "Unauthorized.")
		}

		return c.Next()
	}
}

// challenge WWW-Authenticate başlığıyla 401 döner.
func challenge(c *fiber.Ctx, msg string) error {
	c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="Admin"`)
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}

// secretMatches sunulan parolayı sabit zamanda karşılaştırır. Konfigüre
// edilen değer bcrypt özeti ise özet üzerinden doğrulanır.
func secretMatches(presented, configured string) bool {
	if strings.HasPrefix(configured, "$2a$") ||
		strings.HasPrefix(configured, "$2b$") ||
		strings.HasPrefix(configured, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(presented)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(configured)) == 1
}
