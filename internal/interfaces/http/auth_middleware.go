package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/pkg/jwt"
)

// Locals keys gravadas pelo middleware de auth.
const (
	LocalUserID     = "user_id"
	LocalBusinessID = "business_id"
	LocalRole       = "role"
)

// HeaderBusinessID permite ao superadmin operar sobre um tenant específico.
const HeaderBusinessID = "X-Business-Id"

// AuthMiddleware valida o Bearer Token JWT e grava UserID, BusinessID e Role
// em c.Locals. Para superadmin, o header X-Business-Id sobrescreve o tenant
// do token.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, businessID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		if role == entity.RoleSuperAdmin {
			if override := c.Get(HeaderBusinessID); override != "" {
				businessID = override
			}
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalBusinessID, businessID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// roleRank ordena os papéis do menos ao mais privilegiado.
var roleRank = map[string]int{
	entity.RoleCaixa:      1,
	entity.RoleGerente:    2,
	entity.RoleAdmin:      3,
	entity.RoleSuperAdmin: 4,
}

// RequireRole exige papel igual ou mais privilegiado que minRole. Aplicar
// depois de AuthMiddleware.
func RequireRole(minRole string) fiber.Handler {
	min := roleRank[minRole]
	return func(c *fiber.Ctx) error {
		if roleRank[GetRole(c)] < min {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "papel sem permissão para esta operação"})
		}
		return c.Next()
	}
}

// GetUserID devolve o UserID do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetBusinessID devolve o tenant do contexto (depois do middleware de auth).
func GetBusinessID(c *fiber.Ctx) string {
	v := c.Locals(LocalBusinessID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devolve o papel do contexto (depois do middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
