package handler

import (
	"net/http"

	"staffhub/internal/model"
	"staffhub/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkRecordHandler handles worksheet and progress endpoints
type WorkRecordHandler struct {
	records *service.WorkRecordService
}

func NewWorkRecordHandler(records *service.WorkRecordService) *WorkRecordHandler {
	return &WorkRecordHandler{records: records}
}

// Create handles POST /work-sheet and POST /progress
func (h *WorkRecordHandler) Create(c *gin.Context) {
	var req model.WorkRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("all fields are required", ""))
		return
	}

	record, err := h.records.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("work record added successfully", record))
}

// ListByEmail handles GET /work-sheets?email=
func (h *WorkRecordHandler) ListByEmail(c *gin.Context) {
	records, err := h.records.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", records))
}

// ListFiltered handles GET /progress?name&month
func (h *WorkRecordHandler) ListFiltered(c *gin.Context) {
	records, err := h.records.ListFiltered(c.Request.Context(), c.Query("name"), c.Query("month"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", records))
}

// UpdateTask handles PUT /work-sheet/:id and PUT /progress/:id
func (h *WorkRecordHandler) UpdateTask(c *gin.Context) {
	var req struct {
		Task string `json:"task" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("task is required", ""))
		return
	}

	record, err := h.records.UpdateTask(c.Request.Context(), c.Param("id"), req.Task)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("work record updated", record))
}

// Delete handles DELETE /work-sheet/:id and DELETE /progress/:id
func (h *WorkRecordHandler) Delete(c *gin.Context) {
	if err := h.records.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("work record deleted", nil))
}
