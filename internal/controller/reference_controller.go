package controller

import (
	"zyglio-be/internal/dto"
	"zyglio-be/internal/pkg/serverutils"
	"zyglio-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReferenceController interface {
	RegisterRoutes(r fiber.Router)
	Ingest(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type referenceController struct {
	referenceService service.IReferenceService
}

func NewReferenceController(referenceService service.IReferenceService) IReferenceController {
	return &referenceController{
		referenceService: referenceService,
	}
}

func (c *referenceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reference/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("ingest", c.Ingest)
	h.Get(":procedureId/search", c.Search)
}

func (c *referenceController) Ingest(ctx *fiber.Ctx) error {
	var req dto.IngestReferenceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.referenceService.Ingest(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success ingest reference material", res))
}

func (c *referenceController) Search(ctx *fiber.Ctx) error {
	procedureId, err := uuid.Parse(ctx.Params("procedureId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid procedure id")
	}

	q := ctx.Query("q", "")

	res, err := c.referenceService.Search(ctx.Context(), procedureId, q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search reference material", res))
}
