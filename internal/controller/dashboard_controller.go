package controller

import (
	"regboard-be/internal/dto"
	"regboard-be/internal/pkg/serverutils"
	"regboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SessionHeader carries the dashboard session id. Requests without one get a
// fresh session; the response body echoes the id to reuse.
const SessionHeader = "X-Session-Id"

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	View(ctx *fiber.Ctx) error
}

type dashboardController struct {
	dashboardService service.IDashboardService
}

func NewDashboardController(dashboardService service.IDashboardService) IDashboardController {
	return &dashboardController{
		dashboardService: dashboardService,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard/v1")
	h.Get("state", c.State)
	h.Post("search", c.Search)
	h.Post("reset", c.Reset)
	h.Get("view", c.View)
}

func sessionID(ctx *fiber.Ctx) string {
	if id := ctx.Get(SessionHeader); id != "" {
		return id
	}
	return ctx.Query("session_id")
}

func (c *dashboardController) State(ctx *fiber.Ctx) error {
	res, err := c.dashboardService.State(ctx.Context(), sessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard state", res))
}

func (c *dashboardController) Search(ctx *fiber.Ctx) error {
	var req dto.DashboardSearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.dashboardService.Search(ctx.Context(), sessionID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search dashboard", res))
}

func (c *dashboardController) Reset(ctx *fiber.Ctx) error {
	res, err := c.dashboardService.Reset(ctx.Context(), sessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reset dashboard", res))
}

func (c *dashboardController) View(ctx *fiber.Ctx) error {
	res, err := c.dashboardService.View(ctx.Context(), sessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success render dashboard view", res))
}
