package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	jobhandler "job-board-backend/lib/job"
	apperrors "job-board-backend/lib/utils/app-errors"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
	jobapimodels "job-board-backend/models/api/job"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app *fiber.App) {
	controller := jobApiController{}
	app.Route("job", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("all", controller.list)
		router.Get("recruiter/jobs", middleware.RecruiterRequired(), controller.listMy)
		router.Post("post", middleware.RecruiterRequired(), controller.create)
		router.Put("update/:id", middleware.RecruiterRequired(), controller.update)
		router.Delete("delete/:id", middleware.RecruiterRequired(), controller.delete)
		router.Get(":id", controller.getByID)
	})
}

// @Summary Список вакансий
// @Tags Вакансии
// @Description Список вакансий с поиском по названию и описанию, сортировка по дате создания
// @Param	keyword				query		string	false	"подстрока для поиска без учета регистра"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/all [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	filter := jobapimodels.JobFilter{
		Keyword: ctx.Query("keyword", ""),
	}
	resp, err := jobhandler.Instance.List(filter)
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Вакансии текущего рекрутера
// @Tags Вакансии
// @Description Вакансии, размещенные текущим рекрутером
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/recruiter/jobs [get]
func (c *jobApiController) listMy(ctx *fiber.Ctx) error {
	resp, err := jobhandler.Instance.ListMy(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Разместить вакансию
// @Tags Вакансии
// @Description Разместить вакансию, новая вакансия открыта для откликов
// @Param	body				body		jobapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/post [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := jobhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновить вакансию
// @Tags Вакансии
// @Description Обновить вакансию, доступно только рекрутеру-владельцу. Через статус closed вакансия закрывается для откликов
// @Param	id					path		string	true	"ID вакансии"
// @Param	body				body		jobapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/update/{id} [put]
func (c *jobApiController) update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := jobhandler.Instance.Update(id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удалить вакансию
// @Tags Вакансии
// @Description Безусловное удаление вакансии рекрутером-владельцем, отклики сохраняются как история
// @Param	id					path		string	true	"ID вакансии"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/delete/{id} [delete]
func (c *jobApiController) delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	err := jobhandler.Instance.Delete(id, middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получить вакансию
// @Tags Вакансии
// @Description Получить вакансию по идентификатору
// @Param	id					path		string	true	"ID вакансии"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/{id} [get]
func (c *jobApiController) getByID(ctx *fiber.Ctx) error {
	resp, err := jobhandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
