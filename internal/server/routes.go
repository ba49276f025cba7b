package server

import (
	"pharmacy/internal/config"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Auth.RegisterRoutes(e)
	h.Medicine.RegisterRoutes(e, cfg)
	h.Cart.RegisterRoutes(e, cfg)

	//POST /orders・GET /orders/user はユーザー、
	//GET /orders・PUT /orders/:id・DELETE /orders/:id はADMINのみ
	h.Order.RegisterRoutes(e, cfg)
	h.AdminOrder.RegisterRoutes(e, cfg)
}
