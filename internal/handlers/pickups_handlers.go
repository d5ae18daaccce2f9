package handlers

import (
	"net/http"
	"time"

	"hhdonations/internal/models"
	"hhdonations/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PickupHandlers handles HTTP requests for pickups
type PickupHandlers struct {
	pickupService services.PickupService
}

// NewPickupHandlers creates a new pickup handlers instance
func NewPickupHandlers(pickupService services.PickupService) *PickupHandlers {
	return &PickupHandlers{pickupService: pickupService}
}

// CreatePickup handles POST /api/admin/pickups
func (h *PickupHandlers) CreatePickup(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		BinID      string   `json:"bin_id"`
		DriverID   *string  `json:"driver_id"`
		PickupDate string   `json:"pickup_date"`
		PickupTime *string  `json:"pickup_time"`
		LoadType   *string  `json:"load_type"`
		LoadWeight *float64 `json:"load_weight"`
		Notes      *string  `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	pickup := &models.Pickup{
		PickupTime: req.PickupTime,
		LoadWeight: req.LoadWeight,
		Notes:      req.Notes,
	}

	if req.BinID != "" {
		binID, err := uuid.Parse(req.BinID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid bin ID")
		}
		pickup.BinID = binID
	}
	if req.DriverID != nil && *req.DriverID != "" {
		driverID, err := uuid.Parse(*req.DriverID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid driver ID")
		}
		pickup.DriverID = &driverID
	}
	if req.PickupDate != "" {
		pickupDate, err := time.Parse("2006-01-02", req.PickupDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid pickup date format")
		}
		pickup.PickupDate = pickupDate
	}
	if req.LoadType != nil && *req.LoadType != "" {
		loadType := models.LoadType(*req.LoadType)
		pickup.LoadType = &loadType
	}

	created, err := h.pickupService.Create(ctx, pickup)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Pickup created successfully",
		"pickup":  created,
	})
}

// ListPickups handles GET /api/admin/pickups
func (h *PickupHandlers) ListPickups(c echo.Context) error {
	ctx := c.Request().Context()

	opts := listOptions(c,
		[]string{"status", "load_type", "bin_id", "driver_id", "pickup_date"},
		[]string{"bin_number", "bin_name", "bin_address", "driver_name", "notes"})

	result, err := h.pickupService.List(ctx, opts)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"pickups":     result.Items,
		"total_count": result.TotalCount,
	})
}

// GetPickupByID handles GET /api/admin/pickups/:id
func (h *PickupHandlers) GetPickupByID(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	pickup, err := h.pickupService.GetByID(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"pickup": pickup})
}

// UpdatePickup handles PUT /api/admin/pickups/:id
func (h *PickupHandlers) UpdatePickup(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req struct {
		BinID       *string  `json:"bin_id"`
		DriverID    *string  `json:"driver_id"`
		ClearDriver bool     `json:"clear_driver"`
		PickupDate  *string  `json:"pickup_date"`
		PickupTime  *string  `json:"pickup_time"`
		LoadType    *string  `json:"load_type"`
		LoadWeight  *float64 `json:"load_weight"`
		Status      *string  `json:"status"`
		Notes       *string  `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	patch := models.PickupPatch{
		ClearDriver: req.ClearDriver,
		PickupTime:  req.PickupTime,
		LoadWeight:  req.LoadWeight,
		Notes:       req.Notes,
	}

	if req.BinID != nil && *req.BinID != "" {
		binID, err := uuid.Parse(*req.BinID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid bin ID")
		}
		patch.BinID = &binID
	}
	if req.DriverID != nil && *req.DriverID != "" {
		driverID, err := uuid.Parse(*req.DriverID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid driver ID")
		}
		patch.DriverID = &driverID
	}
	if req.PickupDate != nil && *req.PickupDate != "" {
		pickupDate, err := time.Parse("2006-01-02", *req.PickupDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid pickup date format")
		}
		patch.PickupDate = &pickupDate
	}
	if req.LoadType != nil && *req.LoadType != "" {
		loadType := models.LoadType(*req.LoadType)
		patch.LoadType = &loadType
	}
	if req.Status != nil && *req.Status != "" {
		status := models.PickupStatus(*req.Status)
		patch.Status = &status
	}

	updated, err := h.pickupService.Update(ctx, id, &patch)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Pickup updated successfully",
		"pickup":  updated,
	})
}

// CompletePickup handles POST /api/admin/pickups/:id/complete
func (h *PickupHandlers) CompletePickup(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	pickup, err := h.pickupService.Complete(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Pickup completed successfully",
		"pickup":  pickup,
	})
}

// MarkPickupIncomplete handles POST /api/admin/pickups/:id/incomplete.
// A completed pickup returns to scheduled and loses its completion
// timestamp.
func (h *PickupHandlers) MarkPickupIncomplete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	pickup, err := h.pickupService.MarkIncomplete(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Pickup marked incomplete",
		"pickup":  pickup,
	})
}

// CancelPickup handles POST /api/admin/pickups/:id/cancel
func (h *PickupHandlers) CancelPickup(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	pickup, err := h.pickupService.Cancel(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Pickup cancelled successfully",
		"pickup":  pickup,
	})
}

// DeletePickup handles DELETE /api/admin/pickups/:id
func (h *PickupHandlers) DeletePickup(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.pickupService.Delete(ctx, id); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Pickup deleted successfully",
	})
}

// GetPickupStats handles GET /api/admin/pickups/stats
func (h *PickupHandlers) GetPickupStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.pickupService.Stats(ctx)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"stats": stats})
}
