package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipesnap/backend/internal/service"
)

// PantryHandler handles the pantry draft lifecycle
type PantryHandler struct {
	pantryService service.IPantryService
}

// NewPantryHandler creates a new PantryHandler instance
func NewPantryHandler(pantryService service.IPantryService) *PantryHandler {
	return &PantryHandler{pantryService: pantryService}
}

type pantryUpdateRequest struct {
	Identified             *[]string `json:"identified"`
	AddedIngredients       *string   `json:"added_ingredients"`
	ExcludedIngredients    *string   `json:"excluded_ingredients"`
	AdditionalInstructions *string   `json:"additional_instructions"`
}

// Get returns the caller's pantry draft, creating an empty one if needed
func (h *PantryHandler) Get(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	draft, err := h.pantryService.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pantry"})
		return
	}

	c.JSON(http.StatusOK, draft)
}

// Update applies partial edits to the draft. Absent fields are untouched;
// present fields replace their value wholesale.
func (h *PantryHandler) Update(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req pantryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	draft, err := h.pantryService.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pantry"})
		return
	}

	if req.Identified != nil {
		draft.Identified = *req.Identified
	}
	if req.AddedIngredients != nil {
		draft.AddedText = *req.AddedIngredients
	}
	if req.ExcludedIngredients != nil {
		draft.ExcludedText = *req.ExcludedIngredients
	}
	if req.AdditionalInstructions != nil {
		draft.Instructions = *req.AdditionalInstructions
	}

	if err := h.pantryService.Save(c.Request.Context(), draft); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save pantry"})
		return
	}

	c.JSON(http.StatusOK, draft)
}

// RemoveIdentified drops one identified ingredient from the draft
func (h *PantryHandler) RemoveIdentified(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredient name is required"})
		return
	}

	draft, err := h.pantryService.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrDraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pantry is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pantry"})
		return
	}

	draft.RemoveIdentified(name)
	if err := h.pantryService.Save(c.Request.Context(), draft); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save pantry"})
		return
	}

	c.JSON(http.StatusOK, draft)
}

// Clear deletes the caller's pantry draft
func (h *PantryHandler) Clear(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.pantryService.Delete(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear pantry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pantry cleared"})
}
