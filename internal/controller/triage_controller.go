package controller

import (
	"errors"

	"ai-helpdesk-be/internal/dto"
	"ai-helpdesk-be/internal/pkg/serverutils"
	"ai-helpdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITriageController interface {
	RegisterRoutes(r fiber.Router)
	Triage(ctx *fiber.Ctx) error
	GetSuggestion(ctx *fiber.Ctx) error
}

type triageController struct {
	service service.ITriageService
}

func NewTriageController(service service.ITriageService) ITriageController {
	return &triageController{service: service}
}

func (c *triageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agent/v1")
	h.Post("/triage", c.Triage)
	h.Get("/suggestion/:ticketId", c.GetSuggestion)
}

func (c *triageController) Triage(ctx *fiber.Ctx) error {
	var req dto.TriageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Triage(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrPipeline) {
			return serverutils.NewApiError(fiber.StatusInternalServerError, "Triage processing failed")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Triage completed", res))
}

func (c *triageController) GetSuggestion(ctx *fiber.Ctx) error {
	ticketId := ctx.Params("ticketId")

	res, err := c.service.GetSuggestion(ctx.Context(), ticketId)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewApiError(fiber.StatusNotFound, "No suggestion for ticket")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get suggestion", res))
}
