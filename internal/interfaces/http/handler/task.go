package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apptask "github.com/taskmaster/backend/internal/application/task"
	"github.com/taskmaster/backend/internal/domain/task"
	"github.com/taskmaster/backend/internal/interfaces/http/response"
)

// TaskHandler 任务处理器
type TaskHandler struct {
	service *apptask.Service
}

// NewTaskHandler 创建任务处理器
func NewTaskHandler(service *apptask.Service) *TaskHandler {
	return &TaskHandler{service: service}
}

// RemoveTaskRequest 删除任务请求
// 删除触发时刻相同的全部任务，不按 ID 删除
type RemoveTaskRequest struct {
	DueDate string `json:"dueDate" binding:"required"`
	DueTime string `json:"dueTime" binding:"required"`
}

// validationCode 领域校验错误到响应错误码的映射
func validationCode(err error) (int, bool) {
	switch {
	case errors.Is(err, task.ErrEmptyDetail):
		return 200001, true
	case errors.Is(err, task.ErrBadDateFormat):
		return 200002, true
	case errors.Is(err, task.ErrBadTimeFormat):
		return 200003, true
	case errors.Is(err, task.ErrHourOutOfRange):
		return 200004, true
	case errors.Is(err, task.ErrMinuteOutOfRange):
		return 200005, true
	}
	return 0, false
}

// List 获取任务列表
// @Summary 获取任务列表
// @Tags 任务
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	dtos, err := h.service.ListTasks()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, 200101, "获取任务列表失败")
		return
	}

	response.Success(c, dtos)
}

// Create 创建任务
// @Summary 创建任务
// @Tags 任务
// @Accept json
// @Produce json
// @Param body body apptask.CreateTaskDTO true "任务内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req apptask.CreateTaskDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, 100001, "参数错误")
		return
	}

	dto, err := h.service.CreateTask(&req)
	if err != nil {
		if code, ok := validationCode(err); ok {
			response.ErrorWithDetail(c, http.StatusBadRequest, code, "任务校验失败", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, 200102, "创建任务失败")
		return
	}

	response.Success(c, dto)
}

// Remove 删除任务
// @Summary 删除指定触发时刻的全部任务
// @Tags 任务
// @Accept json
// @Produce json
// @Param body body RemoveTaskRequest true "触发时刻"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /tasks [delete]
func (h *TaskHandler) Remove(c *gin.Context) {
	var req RemoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, 100001, "参数错误")
		return
	}

	count, err := h.service.RemoveTask(req.DueDate, req.DueTime)
	if err != nil {
		if code, ok := validationCode(err); ok {
			response.ErrorWithDetail(c, http.StatusBadRequest, code, "时刻格式错误", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, 200103, "删除任务失败")
		return
	}

	response.Success(c, gin.H{"deleted": count})
}
