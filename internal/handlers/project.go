package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gurveershienh/projectflow/internal/models"
	"github.com/gurveershienh/projectflow/internal/services"
	"github.com/gurveershienh/projectflow/internal/utils"
)

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type ProjectResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type DashboardResponse struct {
	Project        ProjectResponse  `json:"project"`
	TotalFeatures  int              `json:"total_features"`
	TotalTasks     int              `json:"total_tasks"`
	CompletedTasks int              `json:"completed_tasks"`
	Features       []FeatureSummary `json:"features"`
}

type FeatureSummary struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Progress       int    `json:"progress"`
	TotalTasks     int    `json:"total_tasks"`
	CompletedTasks int    `json:"completed_tasks"`
}

func projectResponse(project *models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Progress:    project.Progress(),
		CreatedAt:   project.CreatedAt.Format(timeFormat),
		UpdatedAt:   project.UpdatedAt.Format(timeFormat),
	}
}

func (h *Handler) projectService(ctx *gin.Context) (services.ProjectService, bool) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return services.ProjectService{}, false
	}

	return services.NewProjectService(h.DB, userID), true
}

func (h *Handler) CreateProject(ctx *gin.Context) {
	svc, ok := h.projectService(ctx)

	if !ok {
		return
	}

	var req CreateProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := svc.Create(services.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, projectResponse(project))
}

func (h *Handler) ListProjects(ctx *gin.Context) {
	svc, ok := h.projectService(ctx)

	if !ok {
		return
	}

	projects, err := svc.List()

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]ProjectResponse, 0, len(projects))

	for i := range projects {
		response = append(response, projectResponse(&projects[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) GetProject(ctx *gin.Context) {
	svc, ok := h.projectService(ctx)

	if !ok {
		return
	}

	projectID, err := utils.ParamID(ctx, "project_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := svc.Get(projectID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projectResponse(project))
}

func (h *Handler) UpdateProject(ctx *gin.Context) {
	svc, ok := h.projectService(ctx)

	if !ok {
		return
	}

	projectID, err := utils.ParamID(ctx, "project_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := svc.Update(projectID, services.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projectResponse(project))
}

func (h *Handler) DeleteProject(ctx *gin.Context) {
	svc, ok := h.projectService(ctx)

	if !ok {
		return
	}

	projectID, err := utils.ParamID(ctx, "project_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.Delete(projectID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetDashboard returns the project with per-feature completion rollups.
func (h *Handler) GetDashboard(ctx *gin.Context) {
	svc, ok := h.projectService(ctx)

	if !ok {
		return
	}

	projectID, err := utils.ParamID(ctx, "project_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := svc.Get(projectID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := DashboardResponse{
		Project:       projectResponse(project),
		TotalFeatures: len(project.Features),
		Features:      make([]FeatureSummary, 0, len(project.Features)),
	}

	for _, feature := range project.Features {
		summary := FeatureSummary{
			ID:         feature.ID,
			Name:       feature.Name,
			Progress:   feature.Progress(),
			TotalTasks: len(feature.Tasks),
		}

		for _, task := range feature.Tasks {
			if task.Completed {
				summary.CompletedTasks++
			}
		}

		response.TotalTasks += summary.TotalTasks
		response.CompletedTasks += summary.CompletedTasks
		response.Features = append(response.Features, summary)
	}

	ctx.JSON(http.StatusOK, response)
}
