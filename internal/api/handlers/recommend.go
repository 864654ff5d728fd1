package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"solar-sizing/internal/api/models"
	"solar-sizing/internal/recommend"
	"solar-sizing/internal/sizing"

	"github.com/gin-gonic/gin"
)

// recommendTimeout bounds the upstream completion call. The sizing
// figures never depend on this path; on timeout the UI just shows
// "recommendation unavailable".
const recommendTimeout = 30 * time.Second

// RecommendHandler forwards sizing snapshots to the recommendation
// collaborator. Pass-through only: the text comes back opaque.
type RecommendHandler struct {
	sizing *SizingHandler
	client recommend.Client
}

// NewRecommendHandler creates a new recommend handler
func NewRecommendHandler(client recommend.Client) *RecommendHandler {
	return &RecommendHandler{
		sizing: NewSizingHandler(),
		client: client,
	}
}

// Recommend handles POST /api/v1/recommend
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg, err := h.sizing.buildSystem(req.BatteryFile, req.PanelFile, req.System)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	snap, err := sizing.TakeSnapshot(toModelLoads(req.Loads), cfg)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	history := make([]recommend.Message, 0, len(req.History))
	for _, m := range req.History {
		history = append(history, recommend.Message{Role: m.Role, Content: m.Content})
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), recommendTimeout)
	defer cancel()

	text, err := h.client.Recommend(ctx, snap, req.Query, history)
	if err != nil {
		log.Printf("RecommendHandler: upstream call failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "RECOMMENDATION_UNAVAILABLE",
				Message: "recommendation unavailable",
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.RecommendResponse{
		Status:         "ok",
		Recommendation: text,
	})
}
