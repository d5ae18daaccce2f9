package handlers

import (
	"net/http"

	"hhdonations/internal/models"
	"hhdonations/internal/services"

	"github.com/labstack/echo/v4"
)

// DriverHandlers handles HTTP requests for drivers
type DriverHandlers struct {
	driverService services.DriverService
}

// NewDriverHandlers creates a new driver handlers instance
func NewDriverHandlers(driverService services.DriverService) *DriverHandlers {
	return &DriverHandlers{driverService: driverService}
}

// CreateDriver handles POST /api/admin/drivers
func (h *DriverHandlers) CreateDriver(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Name          string  `json:"name"`
		Email         *string `json:"email"`
		Phone         *string `json:"phone"`
		LicenseNumber *string `json:"license_number"`
		Status        string  `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	driver := &models.Driver{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
		Status:        models.DriverStatus(req.Status),
	}

	created, err := h.driverService.Create(ctx, driver)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Driver created successfully",
		"driver":  created,
	})
}

// ListDrivers handles GET /api/admin/drivers
func (h *DriverHandlers) ListDrivers(c echo.Context) error {
	ctx := c.Request().Context()

	opts := listOptions(c, []string{"status"}, []string{"name", "email", "phone"})

	result, err := h.driverService.List(ctx, opts)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"drivers":     result.Items,
		"total_count": result.TotalCount,
	})
}

// GetDriverByID handles GET /api/admin/drivers/:id
func (h *DriverHandlers) GetDriverByID(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	driver, err := h.driverService.GetByID(ctx, id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"driver": driver})
}

// UpdateDriver handles PUT /api/admin/drivers/:id
func (h *DriverHandlers) UpdateDriver(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch models.DriverPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	updated, err := h.driverService.Update(ctx, id, &patch)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Driver updated successfully",
		"driver":  updated,
	})
}

// DeleteDriver handles DELETE /api/admin/drivers/:id. A driver with
// scheduled or in-progress pickups cannot be removed.
func (h *DriverHandlers) DeleteDriver(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.driverService.Delete(ctx, id); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Driver deleted successfully",
	})
}
