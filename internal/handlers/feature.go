package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gurveershienh/projectflow/internal/models"
	"github.com/gurveershienh/projectflow/internal/services"
	"github.com/gurveershienh/projectflow/internal/utils"
)

// Feature create/update bodies carry no project_id on purpose: the parent is
// always the resolved URL path parameter.
type CreateFeatureRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateFeatureRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type FeatureResponse struct {
	ID          uint   `json:"id"`
	ProjectID   uint   `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func featureResponse(feature *models.Feature) FeatureResponse {
	return FeatureResponse{
		ID:          feature.ID,
		ProjectID:   feature.ProjectID,
		Name:        feature.Name,
		Description: feature.Description,
		Progress:    feature.Progress(),
		CreatedAt:   feature.CreatedAt.Format(timeFormat),
		UpdatedAt:   feature.UpdatedAt.Format(timeFormat),
	}
}

func (h *Handler) featureService(ctx *gin.Context) (services.FeatureService, bool) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return services.FeatureService{}, false
	}

	return services.NewFeatureService(h.DB, userID), true
}

func (h *Handler) CreateFeature(ctx *gin.Context) {
	svc, ok := h.featureService(ctx)

	if !ok {
		return
	}

	projectID, err := utils.ParamID(ctx, "project_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req CreateFeatureRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	feature, err := svc.Create(projectID, services.FeatureInput{
		Name:        req.Name,
		Description: req.Description,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, featureResponse(feature))
}

func (h *Handler) ListFeatures(ctx *gin.Context) {
	svc, ok := h.featureService(ctx)

	if !ok {
		return
	}

	projectID, err := utils.ParamID(ctx, "project_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	features, err := svc.List(projectID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]FeatureResponse, 0, len(features))

	for i := range features {
		response = append(response, featureResponse(&features[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) GetFeature(ctx *gin.Context) {
	svc, ok := h.featureService(ctx)

	if !ok {
		return
	}

	featureID, err := utils.ParamID(ctx, "feature_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feature, err := svc.Get(featureID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, featureResponse(feature))
}

func (h *Handler) UpdateFeature(ctx *gin.Context) {
	svc, ok := h.featureService(ctx)

	if !ok {
		return
	}

	featureID, err := utils.ParamID(ctx, "feature_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateFeatureRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	feature, err := svc.Update(featureID, services.FeaturePatch{
		Name:        req.Name,
		Description: req.Description,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, featureResponse(feature))
}

func (h *Handler) DeleteFeature(ctx *gin.Context) {
	svc, ok := h.featureService(ctx)

	if !ok {
		return
	}

	featureID, err := utils.ParamID(ctx, "feature_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.Delete(featureID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
