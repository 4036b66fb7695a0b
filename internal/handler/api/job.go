package api

import (
	"net/http"
	"strconv"

	reqdto "laborlink/internal/handler/dto/request"
	resdto "laborlink/internal/handler/dto/response"
	"laborlink/internal/handler/httperr"
	"laborlink/internal/handler/middleware"
	"laborlink/internal/usecase/commands"
	"laborlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobHandler struct {
	cmds commands.JobCommands
	q    queries.JobQueries
}

func NewJobHandler(cmds commands.JobCommands, q queries.JobQueries) *JobHandler {
	return &JobHandler{cmds: cmds, q: q}
}

// @Summary Create job posting
// @Description Create a new job posting; matching laborers are notified synchronously
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateJobRequest true "Create job request"
// @Success 201 {object} resdto.JobResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	employerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req, employerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create job posting failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromJobView(result.Job))
}

// @Summary Get job posting
// @Description Get a job posting by ID
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} resdto.JobResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobView(view))
}

// @Summary List open job postings
// @Description List open job postings, newest first
// @Tags jobs
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} map[string]any
// @Failure 500 {object} map[string]string
// @Router /jobs [get]
func (h *JobHandler) ListOpen(c *gin.Context) {
	limit := queries.DefaultLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	items, err := h.q.ListOpen(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": resdto.FromJobList(items)})
}
