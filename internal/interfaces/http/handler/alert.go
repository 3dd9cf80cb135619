package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	appnotification "github.com/taskmaster/backend/internal/application/notification"
	"github.com/taskmaster/backend/internal/interfaces/http/response"
)

// AlertHandler 提醒记录处理器
type AlertHandler struct {
	service *appnotification.Service
}

// NewAlertHandler 创建提醒记录处理器
func NewAlertHandler(service *appnotification.Service) *AlertHandler {
	return &AlertHandler{service: service}
}

// Recent 获取最近的提醒记录
// @Summary 获取最近的提醒记录
// @Tags 提醒
// @Accept json
// @Produce json
// @Param limit query int false "返回条数，默认 20"
// @Success 200 {object} response.Response
// @Router /alerts [get]
func (h *AlertHandler) Recent(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.Error(c, http.StatusBadRequest, 100001, "limit 参数错误")
			return
		}
		limit = parsed
	}

	dtos, err := h.service.RecentAlerts(limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, 300101, "获取提醒记录失败")
		return
	}

	response.Success(c, dtos)
}
