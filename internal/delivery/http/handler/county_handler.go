package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/collisions-monitor/internal/pkg/utils"
	"github.com/collisions-monitor/internal/usecase"
)

// CountyHandler отдает справочник округов и описание снимка
type CountyHandler struct {
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

func NewCountyHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) *CountyHandler {
	return &CountyHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// GetCounties godoc
// @Summary List counties
// @Description Справочник округов для селектора, отсортирован по коду
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CountiesResponse}
// @Router /api/v1/counties [get]
func (h *CountyHandler) GetCounties(c *fiber.Ctx) error {
	resp, err := h.dashboardUC.Counties(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to list counties", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{Total: len(resp.Counties)})
}

// GetSnapshot godoc
// @Summary Snapshot info
// @Description Историческое окно, число загруженных и исключённых записей
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SnapshotResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/snapshot [get]
func (h *CountyHandler) GetSnapshot(c *fiber.Ctx) error {
	resp, err := h.dashboardUC.Snapshot(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to describe snapshot", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}
