package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	savedjobshandler "job-board-backend/lib/saved-jobs"
	apperrors "job-board-backend/lib/utils/app-errors"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
)

type savedJobsApiController struct {
	controllers.BaseAPIController
}

func InitSavedJobsApiRouters(app *fiber.App) {
	controller := savedJobsApiController{}
	app.Route("saved-jobs", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("toggle/:jobId", controller.toggle)
		router.Get("check/:jobId", controller.check)
		router.Get("/", controller.list)
	})
}

// @Summary Сохранить/убрать вакансию
// @Tags Сохраненные вакансии
// @Description Переключает отметку сохранения вакансии для текущего пользователя
// @Param	jobId				path		string	true	"ID вакансии"
// @Success 200 {object} apimodels.Response{data=bool}
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/saved-jobs/toggle/{jobId} [post]
func (c *savedJobsApiController) toggle(ctx *fiber.Ctx) error {
	saved, err := savedjobshandler.Instance.Toggle(middleware.GetUserID(ctx), ctx.Params("jobId"))
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(saved))
}

// @Summary Проверить отметку сохранения
// @Tags Сохраненные вакансии
// @Description Проверяет, сохранена ли вакансия текущим пользователем
// @Param	jobId				path		string	true	"ID вакансии"
// @Success 200 {object} apimodels.Response{data=bool}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/saved-jobs/check/{jobId} [get]
func (c *savedJobsApiController) check(ctx *fiber.Ctx) error {
	saved, err := savedjobshandler.Instance.IsSaved(middleware.GetUserID(ctx), ctx.Params("jobId"))
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(saved))
}

// @Summary Список сохраненных вакансий
// @Tags Сохраненные вакансии
// @Description Сохраненные вакансии текущего пользователя
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/saved-jobs/ [get]
func (c *savedJobsApiController) list(ctx *fiber.Ctx) error {
	resp, err := savedjobshandler.Instance.List(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
