package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowiq/flowiq/internal/core/ports"
)

// InventoryHandler serves the item catalogue, stock levels, and the
// inventory dashboard snapshot.
type InventoryHandler struct {
	inventory ports.InventoryService
}

func NewInventoryHandler(inventory ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

type addItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type setStockRequest struct {
	Quantity    int `json:"quantity" validate:"gte=0"`
	MinQuantity int `json:"min_quantity" validate:"gte=0"`
}

func (h *InventoryHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.inventory.AddItem(c.Request().Context(), req.Name, req.Description, req.Category, req.Price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) GetItem(c echo.Context) error {
	item, err := h.inventory.Item(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) ListItems(c echo.Context) error {
	items, err := h.inventory.Items(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) SetStock(c echo.Context) error {
	var req setStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	stock, err := h.inventory.SetStock(c.Request().Context(), c.Param("id"), req.Quantity, req.MinQuantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stock)
}

func (h *InventoryHandler) LowStock(c echo.Context) error {
	items, err := h.inventory.LowStock(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Value reports the total stock valuation on its own, for clients that
// don't want the whole summary.
func (h *InventoryHandler) Value(c echo.Context) error {
	summary, err := h.inventory.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]float64{"total_value": summary.TotalValue})
}

func (h *InventoryHandler) Summary(c echo.Context) error {
	summary, err := h.inventory.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
