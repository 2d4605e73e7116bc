package controller

import (
	"regboard-be/internal/pkg/serverutils"
	"regboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRegulationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type regulationController struct {
	regulationService service.IRegulationService
}

func NewRegulationController(regulationService service.IRegulationService) IRegulationController {
	return &regulationController{
		regulationService: regulationService,
	}
}

func (c *regulationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/regulation/v1")
	h.Get("", c.List)
}

func (c *regulationController) List(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	source := ctx.Query("source")
	articleNo := ctx.Query("article_no")

	res, err := c.regulationService.ListRecent(ctx.Context(), limit, source, articleNo)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list regulations", res))
}
