package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/repository"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/service"
)

type optionDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Active        bool      `json:"active"`
	ModifierType  string    `json:"modifierType"`
	ModifierValue int64     `json:"modifierValue"`
}

type optionGroupDTO struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Required  bool        `json:"required"`
	MinSelect int         `json:"minSelect"`
	MaxSelect int         `json:"maxSelect"`
	Options   []optionDTO `json:"options"`
}

type productDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description,omitempty"`
	Active        bool      `json:"active"`
	PricingModel  string    `json:"pricingModel"`
	DimensionUnit string    `json:"dimensionUnit"`

	MinWidth  *int `json:"minWidth,omitempty"`
	MaxWidth  *int `json:"maxWidth,omitempty"`
	MinHeight *int `json:"minHeight,omitempty"`
	MaxHeight *int `json:"maxHeight,omitempty"`
	Step      *int `json:"step,omitempty"`

	MinAreaM2     *float64 `json:"minAreaM2,omitempty"`
	MinPriceCents *int64   `json:"minPriceCents,omitempty"`

	BaseUnitPriceCents    *int64 `json:"baseUnitPriceCents,omitempty"`
	BaseM2PriceCents      *int64 `json:"baseM2PriceCents,omitempty"`
	BaseLinearMPriceCents *int64 `json:"baseLinearMPriceCents,omitempty"`

	StockQuantity *int             `json:"stockQuantity,omitempty"`
	OptionGroups  []optionGroupDTO `json:"optionGroups"`
	CreatedAt     time.Time        `json:"createdAt"`
}

type createProductRequest struct {
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Active      *bool      `json:"active"`
	CategoryID  *uuid.UUID `json:"categoryId"`

	PricingModel  models.PricingModel  `json:"pricingModel"`
	DimensionUnit models.DimensionUnit `json:"dimensionUnit"`

	MinWidth  *int `json:"minWidth"`
	MaxWidth  *int `json:"maxWidth"`
	MinHeight *int `json:"minHeight"`
	MaxHeight *int `json:"maxHeight"`
	Step      *int `json:"step"`

	MinAreaM2     *float64 `json:"minAreaM2"`
	MinPriceCents *int64   `json:"minPriceCents"`

	BaseUnitPriceCents    *int64 `json:"baseUnitPriceCents"`
	BaseM2PriceCents      *int64 `json:"baseM2PriceCents"`
	BaseLinearMPriceCents *int64 `json:"baseLinearMPriceCents"`
}

type updateProductRequest struct {
	Name        *string    `json:"name"`
	Slug        *string    `json:"slug"`
	Description *string    `json:"description"`
	Active      *bool      `json:"active"`
	CategoryID  *uuid.UUID `json:"categoryId"`

	PricingModel  *models.PricingModel  `json:"pricingModel"`
	DimensionUnit *models.DimensionUnit `json:"dimensionUnit"`

	MinWidth  *int `json:"minWidth"`
	MaxWidth  *int `json:"maxWidth"`
	MinHeight *int `json:"minHeight"`
	MaxHeight *int `json:"maxHeight"`
	Step      *int `json:"step"`

	MinAreaM2     *float64 `json:"minAreaM2"`
	MinPriceCents *int64   `json:"minPriceCents"`

	BaseUnitPriceCents    *int64 `json:"baseUnitPriceCents"`
	BaseM2PriceCents      *int64 `json:"baseM2PriceCents"`
	BaseLinearMPriceCents *int64 `json:"baseLinearMPriceCents"`
}

// columns maps the non-nil patch fields onto column names the
// repository update understands.
func (r updateProductRequest) columns() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Slug != nil {
		fields["slug"] = *r.Slug
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Active != nil {
		fields["active"] = *r.Active
	}
	if r.CategoryID != nil {
		fields["category_id"] = *r.CategoryID
	}
	if r.PricingModel != nil {
		fields["pricing_model"] = *r.PricingModel
	}
	if r.DimensionUnit != nil {
		fields["dimension_unit"] = *r.DimensionUnit
	}
	if r.MinWidth != nil {
		fields["min_width"] = *r.MinWidth
	}
	if r.MaxWidth != nil {
		fields["max_width"] = *r.MaxWidth
	}
	if r.MinHeight != nil {
		fields["min_height"] = *r.MinHeight
	}
	if r.MaxHeight != nil {
		fields["max_height"] = *r.MaxHeight
	}
	if r.Step != nil {
		fields["step"] = *r.Step
	}
	if r.MinAreaM2 != nil {
		fields["min_area_m2"] = *r.MinAreaM2
	}
	if r.MinPriceCents != nil {
		fields["min_price_cents"] = *r.MinPriceCents
	}
	if r.BaseUnitPriceCents != nil {
		fields["base_unit_price_cents"] = *r.BaseUnitPriceCents
	}
	if r.BaseM2PriceCents != nil {
		fields["base_m2_price_cents"] = *r.BaseM2PriceCents
	}
	if r.BaseLinearMPriceCents != nil {
		fields["base_linear_m_price_cents"] = *r.BaseLinearMPriceCents
	}
	return fields
}

type optionGroupRequest struct {
	Name      string `json:"name"`
	Required  bool   `json:"required"`
	MinSelect int    `json:"minSelect"`
	MaxSelect int    `json:"maxSelect"`
	SortOrder int    `json:"sortOrder"`
}

type optionRequest struct {
	Name          string              `json:"name"`
	Active        *bool               `json:"active"`
	ModifierType  models.ModifierType `json:"modifierType"`
	ModifierValue int64               `json:"modifierValue"`
}

type stockRequest struct {
	Quantity int `json:"quantity"`
}

func toProductDTO(p *models.Product) productDTO {
	groups := make([]optionGroupDTO, 0, len(p.OptionGroups))
	for _, g := range p.OptionGroups {
		opts := make([]optionDTO, 0, len(g.Options))
		for _, o := range g.Options {
			opts = append(opts, optionDTO{
				ID:            o.ID,
				Name:          o.Name,
				Active:        o.Active,
				ModifierType:  string(o.ModifierType),
				ModifierValue: o.ModifierValue,
			})
		}
		groups = append(groups, optionGroupDTO{
			ID:        g.ID,
			Name:      g.Name,
			Required:  g.Required,
			MinSelect: g.MinSelect,
			MaxSelect: g.MaxSelect,
			Options:   opts,
		})
	}

	dto := productDTO{
		ID:                    p.ID,
		Name:                  p.Name,
		Slug:                  p.Slug,
		Description:           p.Description,
		Active:                p.Active,
		PricingModel:          string(p.PricingModel),
		DimensionUnit:         string(p.DimensionUnit),
		MinWidth:              p.MinWidth,
		MaxWidth:              p.MaxWidth,
		MinHeight:             p.MinHeight,
		MaxHeight:             p.MaxHeight,
		Step:                  p.Step,
		MinAreaM2:             p.MinAreaM2,
		MinPriceCents:         p.MinPriceCents,
		BaseUnitPriceCents:    p.BaseUnitPriceCents,
		BaseM2PriceCents:      p.BaseM2PriceCents,
		BaseLinearMPriceCents: p.BaseLinearMPriceCents,
		OptionGroups:          groups,
		CreatedAt:             p.CreatedAt,
	}
	if p.Stock != nil {
		dto.StockQuantity = &p.Stock.Quantity
	}
	return dto
}

func (s *Server) listProducts(c echo.Context) error {
	list, total, err := s.products.ListPublic(c.Request().Context(), repository.ProductListFilter{
		Search:       c.QueryParam("search"),
		CategorySlug: c.QueryParam("category"),
		Limit:        cast.ToInt(c.QueryParam("limit")),
		Offset:       cast.ToInt(c.QueryParam("offset")),
	})
	if err != nil {
		return toHTTPError(err)
	}

	data := make([]productDTO, 0, len(list))
	for i := range list {
		data = append(data, toProductDTO(&list[i]))
	}
	return c.JSON(http.StatusOK, listResponse[productDTO]{Total: total, Data: data})
}

func (s *Server) getProduct(c echo.Context) error {
	p, err := s.products.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toProductDTO(p))
}

func (s *Server) createProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	pm := req.PricingModel
	if pm == "" {
		pm = models.PricingUnit
	}
	du := req.DimensionUnit
	if du == "" {
		du = models.DimensionCM
	}

	p, err := s.products.Create(c.Request().Context(), &models.Product{
		Name:                  req.Name,
		Slug:                  req.Slug,
		Description:           req.Description,
		Active:                active,
		CategoryID:            req.CategoryID,
		PricingModel:          pm,
		DimensionUnit:         du,
		MinWidth:              req.MinWidth,
		MaxWidth:              req.MaxWidth,
		MinHeight:             req.MinHeight,
		MaxHeight:             req.MaxHeight,
		Step:                  req.Step,
		MinAreaM2:             req.MinAreaM2,
		MinPriceCents:         req.MinPriceCents,
		BaseUnitPriceCents:    req.BaseUnitPriceCents,
		BaseM2PriceCents:      req.BaseM2PriceCents,
		BaseLinearMPriceCents: req.BaseLinearMPriceCents,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, toProductDTO(p))
}

func (s *Server) updateProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	fields := req.columns()
	if len(fields) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "nothing to update")
	}

	p, err := s.products.Update(c.Request().Context(), id, fields)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toProductDTO(p))
}

func (s *Server) addOptionGroup(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req optionGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	g, err := s.products.AddOptionGroup(c.Request().Context(), productID, service.CreateOptionGroupInput{
		Name:      req.Name,
		Required:  req.Required,
		MinSelect: req.MinSelect,
		MaxSelect: req.MaxSelect,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, g)
}

func (s *Server) addOption(c echo.Context) error {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid group id")
	}

	var req optionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	o, err := s.products.AddOption(c.Request().Context(), groupID, service.CreateOptionInput{
		Name:          req.Name,
		Active:        active,
		ModifierType:  req.ModifierType,
		ModifierValue: req.ModifierValue,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (s *Server) updateStock(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req stockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Quantity < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "quantity must be >= 0")
	}

	if err := s.products.UpdateStock(c.Request().Context(), productID, req.Quantity); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
