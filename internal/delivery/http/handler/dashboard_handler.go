package handler

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/collisions-monitor/internal/pkg/utils"
	"github.com/collisions-monitor/internal/pkg/validator"
	"github.com/collisions-monitor/internal/usecase"
	"github.com/collisions-monitor/internal/usecase/dto"
)

// DashboardHandler обрабатывает запросы дашборда
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

// NewDashboardHandler создает новый экземпляр DashboardHandler
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// GetDashboard godoc
// @Summary Collision dashboard
// @Description Фильтрует снимок записей о ДТП и возвращает сводные показатели, точки для карты, почасовой ряд и топ причин
// @Tags Dashboard
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD), defaults to the window start"
// @Param end_date query string false "End date (YYYY-MM-DD), defaults to the window end"
// @Param county query string false "County code or 'all'" default(all)
// @Param alcohol query bool false "Only alcohol-involved collisions"
// @Param parties query string false "Comma separated: pedestrian,bicycle,motorcycle,truck"
// @Success 200 {object} utils.SuccessResponse{data=dto.DashboardResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	start := time.Now()

	req := dto.DashboardRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		County:    c.Query("county", "all"),
		Alcohol:   c.QueryBool("alcohol", false),
		Parties:   splitList(c.Query("parties")),
	}

	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.dashboardUC.Dashboard(c.UserContext(), req)
	if err != nil {
		h.logger.Warn("Dashboard request failed", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{
		Total:    resp.RecordCount,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
		Cached:   resp.Cached,
	})
}

// splitList splits a comma separated query value into trimmed lower-case items.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
