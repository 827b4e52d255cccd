package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipesnap/backend/internal/service"
)

// SuggestHandler handles recipe suggestion from an ingredient set
type SuggestHandler struct {
	llmService     service.LLMServiceInterface
	historyService service.IHistoryService
}

// NewSuggestHandler creates a new SuggestHandler instance
func NewSuggestHandler(llmService service.LLMServiceInterface, historyService service.IHistoryService) *SuggestHandler {
	return &SuggestHandler{
		llmService:     llmService,
		historyService: historyService,
	}
}

type suggestRequest struct {
	Identified             []string `json:"identified"`
	AddedIngredients       string   `json:"added_ingredients"`
	ExcludedIngredients    string   `json:"excluded_ingredients"`
	AdditionalInstructions string   `json:"additional_instructions"`
}

// Suggest merges the editing state into one ingredient union, asks the
// model for recipes and returns them ranked. For authenticated users every
// suggested recipe is appended to history; a failed write is reported but
// never rolls back the ones already saved.
func (h *SuggestHandler) Suggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	suggestReq, err := service.BuildSuggestRequest(
		req.Identified,
		req.AddedIngredients,
		req.ExcludedIngredients,
		req.AdditionalInstructions,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please add some ingredients to get recipe suggestions."})
		return
	}

	recipes, err := h.llmService.SuggestRecipes(c.Request.Context(), suggestReq)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "The model returned an unreadable response. Please try again."})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Recipe suggestion failed. Please try again."})
		return
	}

	resp := gin.H{
		"recipes": rankForDisplay(recipes),
		"count":   len(recipes),
	}
	if featured := service.FeaturedRecipe(recipes); featured != nil {
		resp["featured"] = RankedRecipe{Recipe: *featured, Tier: service.MatchTier(featured.MatchQuality)}
	}

	userID, hasSession := sessionUserID(c)
	switch {
	case !hasSession:
		resp["saved_count"] = 0
		resp["save_message"] = "Log in or sign up to save your recipe history."
	case len(recipes) > 0:
		saved, saveErr := h.historyService.SaveAll(c.Request.Context(), userID, sessionUserEmail(c), recipes)
		resp["saved_count"] = saved
		if saveErr != nil {
			log.Printf("[SuggestHandler] partial history save for %s: %v", userID, saveErr)
			resp["save_message"] = "Some recipes could not be saved to your history."
		}
	default:
		resp["saved_count"] = 0
	}

	c.JSON(http.StatusOK, resp)
}
