package compare

import (
	"errors"

	"cmdb-sync/core/logger"
	"cmdb-sync/core/rest"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for comparison reports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the comparison routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/compare")
	group.Get("/report", h.HandleReport)
	group.Get("/devices", h.HandleDevices)
	group.Get("/sites", h.HandleSites)
}

// HandleReport returns a full comparison report.
// @Summary Run Comparison
// @Description Compares the asset registry with the monitoring platform. Concurrent requests share one run.
// @Tags compare
// @Produce json
// @Success 200 {object} compare.Report "Comparison Report"
// @Failure 502 {object} map[string]string "Monitoring platform unreachable"
// @Router /compare/report [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	report, err := h.latest(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleDevices returns the device section of a comparison report.
// @Summary Device Comparison
// @Description Returns device classification and address diagnostics.
// @Tags compare
// @Produce json
// @Param summary query boolean false "Only return counts"
// @Success 200 {object} compare.DeviceReport "Device Report"
// @Failure 502 {object} map[string]string "Monitoring platform unreachable"
// @Router /compare/devices [get]
func (h *Handler) HandleDevices(c *fiber.Ctx) error {
	report, err := h.latest(c)
	if err != nil {
		return h.fail(c, err)
	}
	if c.QueryBool("summary") {
		return c.JSON(fiber.Map{
			"run_id":             report.RunID,
			"devices":            report.Summary.Devices,
			"new":                report.Summary.NewDevices,
			"address_changed":    report.Summary.AddressChanged,
			"unchanged":          report.Summary.Unchanged,
			"multiple_addresses": report.Summary.MultipleAddresses,
			"empty_addresses":    report.Summary.EmptyAddresses,
			"invalid_addresses":  report.Summary.InvalidAddresses,
		})
	}
	return c.JSON(fiber.Map{"run_id": report.RunID, "devices": report.Devices})
}

// HandleSites returns the site section of a comparison report.
// @Summary Site Comparison
// @Description Returns site existence and geographic hierarchy classification.
// @Tags compare
// @Produce json
// @Success 200 {object} compare.SiteReport "Site Report"
// @Failure 502 {object} map[string]string "Monitoring platform unreachable"
// @Router /compare/sites [get]
func (h *Handler) HandleSites(c *fiber.Ctx) error {
	report, err := h.latest(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"run_id": report.RunID, "sites": report.Sites})
}

func (h *Handler) latest(c *fiber.Ctx) (*Report, error) {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Comparison requested", zap.String("path", c.Path()))
	return h.service.Latest(c.UserContext())
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Error("Comparison failed", zap.Error(err))

	if errors.Is(err, rest.ErrUnauthorized) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   "monitoring platform rejected the credentials",
			"details": err.Error(),
		})
	}
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
}
