package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gurveershienh/projectflow/internal/models"
	"github.com/gurveershienh/projectflow/internal/services"
	"github.com/gurveershienh/projectflow/internal/utils"
)

type CreateTaskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      *int   `json:"points"`
	Completed   bool   `json:"completed"`
}

type UpdateTaskRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Points      *int    `json:"points"`
	Completed   *bool   `json:"completed"`
}

type TaskResponse struct {
	ID          uint   `json:"id"`
	FeatureID   uint   `json:"feature_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Completed   bool   `json:"completed"`
	Progress    int    `json:"progress"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func taskResponse(task *models.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		FeatureID:   task.FeatureID,
		Name:        task.Name,
		Description: task.Description,
		Points:      task.Points,
		Completed:   task.Completed,
		Progress:    task.Progress(),
		CreatedAt:   task.CreatedAt.Format(timeFormat),
		UpdatedAt:   task.UpdatedAt.Format(timeFormat),
	}
}

func (h *Handler) taskService(ctx *gin.Context) (services.TaskService, bool) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return services.TaskService{}, false
	}

	return services.NewTaskService(h.DB, userID), true
}

func (h *Handler) CreateTask(ctx *gin.Context) {
	svc, ok := h.taskService(ctx)

	if !ok {
		return
	}

	featureID, err := utils.ParamID(ctx, "feature_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req CreateTaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := svc.Create(featureID, services.TaskInput{
		Name:        req.Name,
		Description: req.Description,
		Points:      req.Points,
		Completed:   req.Completed,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, taskResponse(task))
}

func (h *Handler) ListTasks(ctx *gin.Context) {
	svc, ok := h.taskService(ctx)

	if !ok {
		return
	}

	featureID, err := utils.ParamID(ctx, "feature_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tasks, err := svc.List(featureID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]TaskResponse, 0, len(tasks))

	for i := range tasks {
		response = append(response, taskResponse(&tasks[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) GetTask(ctx *gin.Context) {
	svc, ok := h.taskService(ctx)

	if !ok {
		return
	}

	taskID, err := utils.ParamID(ctx, "task_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := svc.Get(taskID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, taskResponse(task))
}

func (h *Handler) UpdateTask(ctx *gin.Context) {
	svc, ok := h.taskService(ctx)

	if !ok {
		return
	}

	taskID, err := utils.ParamID(ctx, "task_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateTaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := svc.Update(taskID, services.TaskPatch{
		Name:        req.Name,
		Description: req.Description,
		Points:      req.Points,
		Completed:   req.Completed,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, taskResponse(task))
}

func (h *Handler) DeleteTask(ctx *gin.Context) {
	svc, ok := h.taskService(ctx)

	if !ok {
		return
	}

	taskID, err := utils.ParamID(ctx, "task_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.Delete(taskID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
