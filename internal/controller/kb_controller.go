package controller

import (
	"ai-helpdesk-be/internal/pkg/serverutils"
	"ai-helpdesk-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IKBController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type kbController struct {
	service service.IKBService
}

func NewKBController(service service.IKBService) IKBController {
	return &kbController{service: service}
}

func (c *kbController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/kb/v1")
	h.Get("", c.GetAll)
	h.Get("/search", c.Search)
}

func (c *kbController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all articles", res))
}

func (c *kbController) Search(ctx *fiber.Ctx) error {
	query := ctx.Query("query")
	category := ctx.Query("category")

	res, err := c.service.Search(ctx.Context(), query, category)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search articles", res))
}
