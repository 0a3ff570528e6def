package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-board-backend/controllers"
	gpthandler "job-board-backend/lib/gpt"
	apperrors "job-board-backend/lib/utils/app-errors"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
	gptmodels "job-board-backend/models/api/gpt"
)

type gptApiController struct {
	controllers.BaseAPIController
}

func InitGptApiRouters(app *fiber.App) {
	controller := gptApiController{}
	app.Route("ai", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("generate-job-description", controller.generateJobDescription)
		router.Post("generate-cover-letter", controller.generateCoverLetter)
	})
}

// @Summary Сгенерировать описание вакансии
// @Tags GPT
// @Description Сгенерировать описание вакансии по структурированным данным
// @Param	body				body		gptmodels.GenJobDescriptionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=gptmodels.GenJobDescriptionResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai/generate-job-description [post]
func (c *gptApiController) generateJobDescription(ctx *fiber.Ctx) error {
	var payload gptmodels.GenJobDescriptionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := gpthandler.Instance.GenerateJobDescription(payload)
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Сгенерировать сопроводительное письмо
// @Tags GPT
// @Description Сгенерировать сопроводительное письмо по данным кандидата и вакансии
// @Param	body				body		gptmodels.GenCoverLetterRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=gptmodels.GenCoverLetterResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai/generate-cover-letter [post]
func (c *gptApiController) generateCoverLetter(ctx *fiber.Ctx) error {
	var payload gptmodels.GenCoverLetterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := gpthandler.Instance.GenerateCoverLetter(payload)
	if err != nil {
		return ctx.Status(apperrors.StatusCode(err)).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
