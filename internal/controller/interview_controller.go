package controller

import (
	"zyglio-be/internal/dto"
	"zyglio-be/internal/pkg/serverutils"
	"zyglio-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IInterviewController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Answer(ctx *fiber.Ctx) error
	Coverage(ctx *fiber.Ctx) error
	Transcript(ctx *fiber.Ctx) error
	End(ctx *fiber.Ctx) error
}

type interviewController struct {
	interviewService service.IInterviewService
}

func NewInterviewController(interviewService service.IInterviewService) IInterviewController {
	return &interviewController{
		interviewService: interviewService,
	}
}

func (c *interviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interview/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("start", c.Start)
	h.Post("answer", c.Answer)
	h.Post("end", c.End)
	h.Get(":procedureId/coverage", c.Coverage)
	h.Get(":procedureId/transcript", c.Transcript)
}

func (c *interviewController) Start(ctx *fiber.Ctx) error {
	var req dto.StartInterviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interviewService.StartInterview(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success start interview", res))
}

func (c *interviewController) Answer(ctx *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.interviewService.SubmitAnswer(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process answer", res))
}

func (c *interviewController) Coverage(ctx *fiber.Ctx) error {
	procedureId, err := uuid.Parse(ctx.Params("procedureId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid procedure id")
	}

	res, err := c.interviewService.GetCoverage(ctx.Context(), procedureId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get coverage", res))
}

func (c *interviewController) Transcript(ctx *fiber.Ctx) error {
	procedureId, err := uuid.Parse(ctx.Params("procedureId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid procedure id")
	}

	res, err := c.interviewService.GetTranscript(ctx.Context(), procedureId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get transcript", res))
}

func (c *interviewController) End(ctx *fiber.Ctx) error {
	var req dto.EndInterviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.interviewService.EndInterview(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success end interview", nil))
}
