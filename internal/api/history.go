package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipesnap/backend/internal/models"
	"github.com/recipesnap/backend/internal/service"
)

// HistoryHandler serves the caller's saved recipe history
type HistoryHandler struct {
	historyService service.IHistoryService
}

// NewHistoryHandler creates a new HistoryHandler instance
func NewHistoryHandler(historyService service.IHistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

type savedRecipeResponse struct {
	models.SavedRecipe
	Tier string `json:"tier"`
}

// List returns the caller's saved recipes newest first. An optional q
// parameter reorders results by similarity to the query.
func (h *HistoryHandler) List(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var (
		recipes []models.SavedRecipe
		err     error
	)
	if q := c.Query("q"); q != "" {
		recipes, err = h.historyService.Search(c.Request.Context(), userID, q)
	} else {
		recipes, err = h.historyService.List(c.Request.Context(), userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe history"})
		return
	}

	out := make([]savedRecipeResponse, len(recipes))
	for i, r := range recipes {
		out[i] = savedRecipeResponse{SavedRecipe: r, Tier: service.MatchTier(r.MatchQuality)}
	}

	c.JSON(http.StatusOK, gin.H{"recipes": out})
}
