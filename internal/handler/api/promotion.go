package api

import (
	"errors"
	"net/http"

	reqdto "storecredit-engine/internal/handler/dto/request"
	resdto "storecredit-engine/internal/handler/dto/response"
	"storecredit-engine/internal/usecase/commands"
	"storecredit-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PromotionHandler struct {
	promotionCommands commands.PromotionCommands
	promotionQueries  queries.PromotionQueries
}

func NewPromotionHandler(promotionCommands commands.PromotionCommands, promotionQueries queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{
		promotionCommands: promotionCommands,
		promotionQueries:  promotionQueries,
	}
}

// @Summary List promotions
// @Description List all scheduled promotion rules
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PromotionListResponse
// @Router /promotions/promotions [get]
func (h *PromotionHandler) List(c *gin.Context) {
	views, err := h.promotionQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.NewPromotionListResponse(views))
}

// @Summary Get promotion
// @Description Get one scheduled promotion rule
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 200 {object} queries.PromotionView
// @Failure 404 {object} map[string]string
// @Router /promotions/promotions/{id} [get]
func (h *PromotionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid promotion ID",
		})
		return
	}

	view, err := h.promotionQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrPromotionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Promotion not found",
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

// @Summary Create promotion
// @Description Create a scheduled promotion rule
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PromotionRequest true "Promotion definition"
// @Success 201 {object} queries.PromotionView
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /promotions/promotions [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	var req reqdto.PromotionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.promotionCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update promotion
// @Description Replace a scheduled promotion rule
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Param request body reqdto.PromotionRequest true "Promotion definition"
// @Success 200 {object} queries.PromotionView
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /promotions/promotions/{id} [put]
func (h *PromotionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid promotion ID",
		})
		return
	}

	var req reqdto.PromotionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.promotionCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete promotion
// @Description Delete a scheduled promotion rule
// @Tags promotions
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /promotions/promotions/{id} [delete]
func (h *PromotionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid promotion ID",
		})
		return
	}

	if err := h.promotionCommands.Delete(c.Request.Context(), id); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PromotionHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrPromotionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Promotion not found",
		})
	case errors.Is(err, commands.ErrInvalidPromotion):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid promotion definition",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
