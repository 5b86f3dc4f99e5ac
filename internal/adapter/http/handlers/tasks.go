package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

type taskUserLookup func(ctx context.Context, taskID uint64) (domain.User, error)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListProjectTasks(c *gin.Context) {
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}

	filter, err := validation.ParseTaskFilter(c.Query("status"), c.Query("assigned_to"))
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTasks)
		return
	}

	tasks, err := h.taskService.ListProjectTasks(c.Request.Context(), middleware.GetCallerID(c), projectID, filter)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTasks, zap.Uint64("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	input, err := validation.BuildCreateTaskInput(body)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), middleware.GetCallerID(c), projectID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask, zap.Uint64("project_id", projectID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "taskId", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	input, err := validation.BuildUpdateTaskInput(body)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask)
		return
	}

	update, err := h.taskService.UpdateTask(c.Request.Context(), middleware.GetCallerID(c), projectID, taskID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask, zap.Uint64("project_id", projectID), zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskPatch(update))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "taskId", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), middleware.GetCallerID(c), projectID, taskID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTask, zap.Uint64("project_id", projectID), zap.Uint64("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) GetTaskAssignee(c *gin.Context) {
	h.taskUser(c, h.taskService.GetTaskAssignee)
}

func (h *TaskHandler) GetTaskCreator(c *gin.Context) {
	h.taskUser(c, h.taskService.GetTaskCreator)
}

func (h *TaskHandler) GetTaskUpdater(c *gin.Context) {
	h.taskUser(c, h.taskService.GetTaskUpdater)
}

func (h *TaskHandler) taskUser(c *gin.Context, lookup taskUserLookup) {
	taskID, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	user, err := lookup(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetTaskUser, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}
