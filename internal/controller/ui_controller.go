package controller

import (
	"regboard-be/internal/dto"
	"regboard-be/internal/pkg/serverutils"
	"regboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUIController interface {
	RegisterRoutes(r fiber.Router)
	Render(ctx *fiber.Ctx) error
	Action(ctx *fiber.Ctx) error
	Tools(ctx *fiber.Ctx) error
}

type uiController struct {
	uiService service.IUIService
}

func NewUIController(uiService service.IUIService) IUIController {
	return &uiController{
		uiService: uiService,
	}
}

func (c *uiController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ui/v1")
	h.Get("tools", c.Tools)
	h.Post("render", c.Render)
	h.Post("action", c.Action)
}

// Render takes the raw component JSON as the request body and returns its
// HTML. The body goes through the schema gate before anything trusts it.
func (c *uiController) Render(ctx *fiber.Ctx) error {
	res, err := c.uiService.RenderComponent(ctx.Body())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success render component", res))
}

func (c *uiController) Action(ctx *fiber.Ctx) error {
	var req dto.ComponentActionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.uiService.ExecuteAction(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success execute action", res))
}

func (c *uiController) Tools(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success list tools", c.uiService.ListTools()))
}
