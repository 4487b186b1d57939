package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/service"
)

func (s *Server) createQuote(c echo.Context) error {
	var req createQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.CustomerID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "customerId is required")
	}

	quote, err := s.quotes.CreateQuote(c.Request().Context(), service.CreateQuoteInput{
		CustomerID:    req.CustomerID,
		Items:         toItemInputs(req.Items),
		DiscountCents: req.DiscountCents,
		ShippingCents: req.ShippingCents,
		TaxCents:      req.TaxCents,
		Notes:         req.Notes,
		InternalNotes: req.InternalNotes,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, toOrderDTO(quote))
}

func (s *Server) listQuotes(c echo.Context) error {
	list, total, err := s.quotes.ListQuotes(c.Request().Context(),
		cast.ToInt(c.QueryParam("limit")),
		cast.ToInt(c.QueryParam("offset")))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, listResponse[orderDTO]{Total: total, Data: toOrderDTOs(list)})
}

func (s *Server) convertQuote(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid quote id")
	}

	var req convertQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	sale, err := s.quotes.ConvertToSale(c.Request().Context(), id, service.ConvertQuoteOptions{
		SaleStatus: req.SaleStatus,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, toOrderDTO(sale))
}
