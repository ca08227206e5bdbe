package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gurveershienh/projectflow/internal/models"
	"github.com/gurveershienh/projectflow/internal/services"
	"github.com/gurveershienh/projectflow/internal/utils"
)

type CreateNoteRequest struct {
	Content string `json:"content"`
}

type UpdateNoteRequest struct {
	Content *string `json:"content"`
}

type NoteResponse struct {
	ID        uint   `json:"id"`
	TaskID    uint   `json:"task_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func noteResponse(note *models.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		TaskID:    note.TaskID,
		Content:   note.Content,
		CreatedAt: note.CreatedAt.Format(timeFormat),
	}
}

func (h *Handler) noteService(ctx *gin.Context) (services.NoteService, bool) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return services.NoteService{}, false
	}

	return services.NewNoteService(h.DB, userID), true
}

func (h *Handler) CreateNote(ctx *gin.Context) {
	svc, ok := h.noteService(ctx)

	if !ok {
		return
	}

	taskID, err := utils.ParamID(ctx, "task_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req CreateNoteRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	note, err := svc.Create(taskID, services.NoteInput{Content: req.Content})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, noteResponse(note))
}

func (h *Handler) ListNotes(ctx *gin.Context) {
	svc, ok := h.noteService(ctx)

	if !ok {
		return
	}

	taskID, err := utils.ParamID(ctx, "task_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notes, err := svc.List(taskID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]NoteResponse, 0, len(notes))

	for i := range notes {
		response = append(response, noteResponse(&notes[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) GetNote(ctx *gin.Context) {
	svc, ok := h.noteService(ctx)

	if !ok {
		return
	}

	noteID, err := utils.ParamID(ctx, "note_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := svc.Get(noteID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, noteResponse(note))
}

func (h *Handler) UpdateNote(ctx *gin.Context) {
	svc, ok := h.noteService(ctx)

	if !ok {
		return
	}

	noteID, err := utils.ParamID(ctx, "note_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateNoteRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	note, err := svc.Update(noteID, services.NotePatch{Content: req.Content})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, noteResponse(note))
}

func (h *Handler) DeleteNote(ctx *gin.Context) {
	svc, ok := h.noteService(ctx)

	if !ok {
		return
	}

	noteID, err := utils.ParamID(ctx, "note_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := svc.Delete(noteID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
