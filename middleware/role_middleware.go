package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "job-board-backend/lib/utils/auth-utils"
	"job-board-backend/models"
	apimodels "job-board-backend/models/api"
)

// RecruiterRequired пускает дальше только пользователей с ролью рекрутера.
// Роль записывается в токен при входе и не меняется операциями профиля
func RecruiterRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsRecruiter() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция доступна только рекрутеру"))
		}
		return ctx.Next()
	}
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if stringSub, ok := sub.(string); ok {
			return stringSub
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}
