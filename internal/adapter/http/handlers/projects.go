package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	input, err := validation.BuildCreateProjectInput(body)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateProject)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), middleware.GetCallerID(c), input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateProject)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context(), validation.ParseProjectFilter(c.Query("title")))
	if err != nil {
		respondError(c, err, apierrors.MsgFailListProjects)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

func (h *ProjectHandler) CountProjects(c *gin.Context) {
	count, err := h.projectService.CountProjects(c.Request.Context(), validation.ParseProjectFilter(c.Query("title")))
	if err != nil {
		respondError(c, err, apierrors.MsgFailCountProjects)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetProject, zap.Uint64("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) UpdateProjects(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	input, err := validation.BuildUpdateProjectInput(body)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateProject)
		return
	}

	filter := validation.ParseProjectFilter(c.Query("title"))
	count, err := h.projectService.UpdateProjects(c.Request.Context(), middleware.GetCallerID(c), filter, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateProject)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	input, err := validation.BuildUpdateProjectInput(body)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateProject)
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), middleware.GetCallerID(c), projectID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateProject, zap.Uint64("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) ReplaceProject(c *gin.Context) {
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}
	body, ok := readBody(c)
	if !ok {
		return
	}

	input, err := validation.BuildReplaceProjectInput(body)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateProject)
		return
	}

	project, err := h.projectService.ReplaceProject(c.Request.Context(), middleware.GetCallerID(c), projectID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateProject, zap.Uint64("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, ok := pathID(c, "id", apierrors.MsgInvalidProjectID)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteProject, zap.Uint64("project_id", projectID))
		return
	}

	c.Status(http.StatusNoContent)
}
