package api

import (
	"errors"
	"net/http"

	"storecredit-engine/internal/domain/bulkevent"
	reqdto "storecredit-engine/internal/handler/dto/request"
	resdto "storecredit-engine/internal/handler/dto/response"
	"storecredit-engine/internal/usecase/commands"
	"storecredit-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BulkEventHandler struct {
	bulkCommands commands.BulkEventCommands
	bulkQueries  queries.BulkEventQueries
}

func NewBulkEventHandler(bulkCommands commands.BulkEventCommands, bulkQueries queries.BulkEventQueries) *BulkEventHandler {
	return &BulkEventHandler{
		bulkCommands: bulkCommands,
		bulkQueries:  bulkQueries,
	}
}

// @Summary List order sources
// @Description Count orders per sales channel within a date range
// @Tags store_credit_events
// @Produce json
// @Security BearerAuth
// @Param start_datetime query string true "Range start (ISO-8601)"
// @Param end_datetime query string true "Range end (ISO-8601)"
// @Success 200 {object} queries.SourcesView
// @Failure 400 {object} map[string]string
// @Router /store_credit_events/sources [get]
func (h *BulkEventHandler) Sources(c *gin.Context) {
	var req reqdto.SourcesRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "start_datetime and end_datetime are required ISO-8601 datetimes",
		})
		return
	}

	view, err := h.bulkQueries.Sources(c.Request.Context(), req.StartDatetime, req.EndDatetime)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Preview bulk credit event
// @Description Dry-run aggregation of a retroactive credit request; no side effects
// @Tags store_credit_events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkEventRequest true "Bulk credit request"
// @Success 200 {object} queries.PreviewView
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /store_credit_events/preview [post]
func (h *BulkEventHandler) Preview(c *gin.Context) {
	req, ok := h.bindBulkRequest(c)
	if !ok {
		return
	}

	view, err := h.bulkQueries.Preview(c.Request.Context(), req)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Run bulk credit event
// @Description Execute a retroactive credit request; issues real store credit
// @Tags store_credit_events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkEventRequest true "Bulk credit request"
// @Success 200 {object} resdto.RunResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /store_credit_events/run [post]
func (h *BulkEventHandler) Run(c *gin.Context) {
	req, ok := h.bindBulkRequest(c)
	if !ok {
		return
	}

	view, err := h.bulkCommands.Run(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidBulkRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid bulk event request",
			})
		case errors.Is(err, commands.ErrOrderFetchFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Order source unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobView(view))
}

// @Summary Get bulk credit job
// @Description Inspect the outcome of a past run
// @Tags store_credit_events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} queries.JobView
// @Failure 404 {object} map[string]string
// @Router /store_credit_events/jobs/{id} [get]
func (h *BulkEventHandler) GetJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid job ID",
		})
		return
	}

	view, err := h.bulkQueries.GetJob(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Job not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *BulkEventHandler) bindBulkRequest(c *gin.Context) (bulkevent.Request, bool) {
	var dto reqdto.BulkEventRequest
	if bindErr := c.ShouldBindJSON(&dto); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return bulkevent.Request{}, false
	}

	req, err := dto.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return bulkevent.Request{}, false
	}
	return req, true
}

func (h *BulkEventHandler) respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrInvalidBulkRequest):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid bulk event request",
		})
	case errors.Is(err, queries.ErrOrderFetchFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Order source unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
