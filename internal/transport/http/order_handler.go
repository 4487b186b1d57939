package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/service"
)

func (s *Server) createSale(c echo.Context) error {
	var req createSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := s.orders.CreateSale(c.Request().Context(), service.CreateSaleInput{
		Items: toItemInputs(req.Items),
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, toOrderDTO(order))
}

func (s *Server) getOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := s.orders.GetOrder(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toOrderDTO(order))
}

func (s *Server) listOrders(c echo.Context) error {
	f := service.ListFilter{
		Limit:  cast.ToInt(c.QueryParam("limit")),
		Offset: cast.ToInt(c.QueryParam("offset")),
	}
	if st := c.QueryParam("status"); st != "" {
		status := models.OrderStatus(st)
		f.Status = &status
	}

	list, total, err := s.orders.ListOrders(c.Request().Context(), f)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, listResponse[orderDTO]{Total: total, Data: toOrderDTOs(list)})
}
