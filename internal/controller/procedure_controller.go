package controller

import (
	"zyglio-be/internal/dto"
	"zyglio-be/internal/pkg/serverutils"
	"zyglio-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProcedureController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Certifications(ctx *fiber.Ctx) error
}

type procedureController struct {
	procedureService service.IProcedureService
}

func NewProcedureController(procedureService service.IProcedureService) IProcedureController {
	return &procedureController{
		procedureService: procedureService,
	}
}

func (c *procedureController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/procedure/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Get(":id/certifications", c.Certifications)
}

func (c *procedureController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProcedureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.procedureService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create procedure", res))
}

func (c *procedureController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid procedure id")
	}

	res, err := c.procedureService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show procedure", res))
}

func (c *procedureController) List(ctx *fiber.Ctx) error {
	req := dto.ListProceduresRequest{
		Industry: ctx.Query("industry"),
		Limit:    ctx.QueryInt("limit", 0),
		Offset:   ctx.QueryInt("offset", 0),
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.procedureService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list procedures", res))
}

func (c *procedureController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid procedure id")
	}

	var req dto.UpdateProcedureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.procedureService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update procedure", res))
}

func (c *procedureController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid procedure id")
	}

	if err := c.procedureService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete procedure", nil))
}

func (c *procedureController) Certifications(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid procedure id")
	}

	res, err := c.procedureService.GetCertifications(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list certifications", res))
}
