package handlers

import (
	"net/http"
	"strconv"

	"hhdonations/internal/geo"
	"hhdonations/internal/models"
	"hhdonations/internal/services"

	"github.com/labstack/echo/v4"
)

// BinHandlers handles HTTP requests for donation bins
type BinHandlers struct {
	binService services.BinService
}

// NewBinHandlers creates a new bin handlers instance
func NewBinHandlers(binService services.BinService) *BinHandlers {
	return &BinHandlers{binService: binService}
}

// CreateBin handles POST /api/bins
func (h *BinHandlers) CreateBin(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Name      string   `json:"name"`
		Address   string   `json:"address"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Hours     string   `json:"hours"`
		Type      string   `json:"type"`
		DriveUp   bool     `json:"drive_up"`
		Notes     *string  `json:"notes"`
		Distance  *string  `json:"distance"`
		Status    string   `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	bin := &models.Bin{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Hours:     req.Hours,
		Type:      models.BinType(req.Type),
		DriveUp:   req.DriveUp,
		Notes:     req.Notes,
		Distance:  req.Distance,
		Status:    models.BinStatus(req.Status),
	}

	created, err := h.binService.Create(ctx, bin)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Bin created successfully",
		"bin":     created,
	})
}

// ListBins handles GET /api/admin/bins
func (h *BinHandlers) ListBins(c echo.Context) error {
	ctx := c.Request().Context()

	opts := listOptions(c, []string{"status", "type"}, []string{"name", "address", "bin_number"})

	result, err := h.binService.List(ctx, opts)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"bins":        result.Items,
		"total_count": result.TotalCount,
	})
}

// ListPublicBins handles GET /api/bins. Only active bins are returned;
// when lat and lng are supplied each bin carries its distance from the
// caller and the listing orders closest-first.
func (h *BinHandlers) ListPublicBins(c echo.Context) error {
	ctx := c.Request().Context()

	opts := listOptions(c, []string{"type"}, []string{"name", "address"})

	var origin *geo.Coordinates
	latParam := c.QueryParam("lat")
	lngParam := c.QueryParam("lng")
	if latParam != "" && lngParam != "" {
		lat, latErr := strconv.ParseFloat(latParam, 64)
		lng, lngErr := strconv.ParseFloat(lngParam, 64)
		if latErr != nil || lngErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid coordinates")
		}
		origin = &geo.Coordinates{Latitude: lat, Longitude: lng}
	}

	result, err := h.binService.ListPublic(ctx, opts, origin)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"bins":        result.Items,
		"total_count": result.TotalCount,
	})
}

// GetBinByID handles GET /api/admin/bins/:id
func (h *BinHandlers) GetBinByID(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	bin, err := h.binService.GetByID(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"bin": bin})
}

// UpdateBin handles PUT /api/admin/bins/:id
func (h *BinHandlers) UpdateBin(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch models.BinPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	updated, err := h.binService.Update(ctx, id, &patch)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Bin updated successfully",
		"bin":     updated,
	})
}

// DeleteBin handles DELETE /api/admin/bins/:id
func (h *BinHandlers) DeleteBin(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.binService.Delete(ctx, id); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Bin deleted successfully",
	})
}
