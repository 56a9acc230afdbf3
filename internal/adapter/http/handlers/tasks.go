package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID, ok := requireOwner(c, lang)
	if !ok {
		return
	}

	page, err := h.taskService.ListTasks(
		c.Request.Context(),
		ownerID,
		validation.BuildListTasksInput(c.Request.URL.Query()),
	)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.String("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskList(page))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID, ok := requireOwner(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.GetTaskByID(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondTaskError(c, err, apierrors.MsgFailGetTask, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID, ok := requireOwner(c, lang)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), ownerID, validation.BuildCreateTaskInput(req))
	if err != nil {
		respondTaskError(c, err, apierrors.MsgFailCreateTask, lang)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

// UpdateTask also serves the board's drag-and-drop moves, which send only a status.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID, ok := requireOwner(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.UpdateTask(
		c.Request.Context(),
		ownerID,
		c.Param("id"),
		validation.BuildUpdateTaskInput(req),
	)
	if err != nil {
		respondTaskError(c, err, apierrors.MsgFailUpdateTask, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID, ok := requireOwner(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		respondTaskError(c, err, apierrors.MsgFailDeleteTask, lang)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: apierrors.GetTransErrorMsg(apierrors.MsgTaskDeleted, lang)})
}

func requireOwner(c *gin.Context, lang string) (string, bool) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.AbortWithStatusJSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNotAuthorized, lang),
		)
		return "", false
	}
	return ownerID, true
}

func respondTaskError(c *gin.Context, err error, failMsgKey string, lang string) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	case errors.Is(err, domain.ErrTitleRequired):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgTitleRequired, lang),
		)
	case errors.Is(err, domain.ErrValidation):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
	default:
		zap.L().Error("task operation failed", zap.String("task_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failMsgKey, lang),
		)
	}
}
