package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"job-board-backend/config"
	"job-board-backend/controllers"
	authhandler "job-board-backend/lib/auth"
	apperrors "job-board-backend/lib/utils/app-errors"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
	authapimodels "job-board-backend/models/api/auth"
	userapimodels "job-board-backend/models/api/users"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("user", func(router fiber.Router) {
		router.Post("register", controller.register)
		router.Post("login", controller.login)
		router.Get("logout", controller.logout)
		router.Use(middleware.AuthorizationRequired())
		router.Get("me", controller.me)
		router.Put("profile/update", controller.updateProfile)
	})
}

// @Summary Регистрация пользователя
// @Tags Пользователи
// @Description Регистрация пользователя с выдачей токена сессии
// @Param	body				body		authapimodels.RegisterRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.AuthResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user/register [post]
func (c *authApiController) register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Register(payload)
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	setAuthCookie(ctx, resp.AccessToken)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Аутентификация пользователя
// @Tags Пользователи
// @Description Аутентификация пользователя, роль в запросе должна совпадать с ролью учетной записи
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.AuthResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(payload)
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	setAuthCookie(ctx, resp.AccessToken)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выход из системы
// @Tags Пользователи
// @Description Сбрасывает cookie с токеном сессии. Выпущенный токен действует до истечения срока
// @Success 200 {object} apimodels.Response
// @router /api/v1/user/logout [get]
func (c *authApiController) logout(ctx *fiber.Ctx) error {
	ctx.Cookie(&fiber.Cookie{
		Name:     config.Conf.Auth.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получить информацию о текущем пользователе
// @Tags Пользователи
// @Description Получить информацию о текущем пользователе
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := authhandler.Instance.Me(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновить профиль пользователя
// @Tags Пользователи
// @Description Обновить профиль текущего пользователя
// @Param	body				body		userapimodels.ProfileUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user/profile/update [put]
func (c *authApiController) updateProfile(ctx *fiber.Ctx) error {
	var payload userapimodels.ProfileUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err := authhandler.Instance.UpdateProfile(userID, payload); err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Me(userID)
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func setAuthCookie(ctx *fiber.Ctx, token string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     config.Conf.Auth.CookieName,
		Value:    token,
		Expires:  time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
