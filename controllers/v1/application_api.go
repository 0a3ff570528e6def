package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	applicanthandler "job-board-backend/lib/applicant"
	apperrors "job-board-backend/lib/utils/app-errors"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
	applicantapimodels "job-board-backend/models/api/applicant"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("application", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("apply/:jobId", controller.apply)
		router.Get("my-applications", controller.listMy)
		router.Get("job/:jobId/applicants", middleware.RecruiterRequired(), controller.listByJob)
		router.Get("job/:jobId/applicants/export", middleware.RecruiterRequired(), controller.exportByJob)
		router.Put(":id/status", middleware.RecruiterRequired(), controller.updateStatus)
		router.Get(":id", controller.getByID)
	})
}

// @Summary Откликнуться на вакансию
// @Tags Отклики
// @Description Отклик на открытую вакансию, повторный отклик на ту же вакансию невозможен
// @Param	jobId				path		string	true	"ID вакансии"
// @Param	body				body		applicantapimodels.ApplyRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/apply/{jobId} [post]
func (c *applicationApiController) apply(ctx *fiber.Ctx) error {
	var payload applicantapimodels.ApplyRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := applicanthandler.Instance.Apply(ctx.Params("jobId"), middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Мои отклики
// @Tags Отклики
// @Description Отклики текущего пользователя, сортировка по дате создания
// @Success 200 {object} apimodels.Response{data=[]applicantapimodels.ApplicationView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/my-applications [get]
func (c *applicationApiController) listMy(ctx *fiber.Ctx) error {
	resp, err := applicanthandler.Instance.ListMy(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отклики по вакансии
// @Tags Отклики
// @Description Отклики по вакансии, доступно только рекрутеру-владельцу
// @Param	jobId				path		string	true	"ID вакансии"
// @Success 200 {object} apimodels.Response{data=[]applicantapimodels.ApplicationView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/job/{jobId}/applicants [get]
func (c *applicationApiController) listByJob(ctx *fiber.Ctx) error {
	resp, err := applicanthandler.Instance.ListByJob(ctx.Params("jobId"), middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выгрузка откликов по вакансии
// @Tags Отклики
// @Description Выгрузка откликов по вакансии в xlsx, доступно только рекрутеру-владельцу
// @Param	jobId				path		string	true	"ID вакансии"
// @Success 200 {file} file
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/job/{jobId}/applicants/export [get]
func (c *applicationApiController) exportByJob(ctx *fiber.Ctx) error {
	buf, err := applicanthandler.Instance.ExportByJob(ctx.Params("jobId"), middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="applicants.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Сменить статус отклика
// @Tags Отклики
// @Description Смена статуса отклика рекрутером-владельцем вакансии, допустим переход между любыми статусами
// @Param	id					path		string	true	"ID отклика"
// @Param	body				body		applicantapimodels.StatusUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/status [put]
func (c *applicationApiController) updateStatus(ctx *fiber.Ctx) error {
	var payload applicantapimodels.StatusUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := applicanthandler.Instance.UpdateStatus(ctx.Params("id"), middleware.GetUserID(ctx), payload.Status)
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получить отклик
// @Tags Отклики
// @Description Получить отклик, доступно его автору и рекрутеру-владельцу вакансии
// @Param	id					path		string	true	"ID отклика"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicationView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id} [get]
func (c *applicationApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := applicanthandler.Instance.GetByID(ctx.Params("id"), middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
