package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/recipesnap/backend/internal/service"
)

// IdentifyHandler handles ingredient identification from a photo
type IdentifyHandler struct {
	llmService    service.LLMServiceInterface
	pantryService service.IPantryService
}

// NewIdentifyHandler creates a new IdentifyHandler instance. The pantry
// service is optional; without it results are returned but not stored.
func NewIdentifyHandler(llmService service.LLMServiceInterface, pantryService service.IPantryService) *IdentifyHandler {
	return &IdentifyHandler{
		llmService:    llmService,
		pantryService: pantryService,
	}
}

type identifyRequest struct {
	PhotoDataURI string `json:"photo_data_uri" binding:"required"`
	// PhotoURL is the stored copy of the photo, as returned by the upload
	// endpoint. When present it is kept on the pantry draft so the draft
	// records which photo the identification ran against.
	PhotoURL string `json:"photo_url"`
}

// Identify sends the photo to the model and returns the ingredients it
// recognized. An empty list is a valid outcome, reported as such. For
// authenticated users the result is applied to the pantry draft, guarded
// by a generation counter so a slow response never overwrites the result
// of a newer request.
func (h *IdentifyHandler) Identify(c *gin.Context) {
	var req identifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo_data_uri is required"})
		return
	}

	userID, hasSession := sessionUserID(c)

	var gen int64
	if hasSession && h.pantryService != nil {
		var err error
		gen, err = h.pantryService.BeginIdentification(c.Request.Context(), userID, req.PhotoURL)
		if err != nil {
			log.Printf("[IdentifyHandler] failed to start identification for %s: %v", userID, err)
			hasSession = false
		}
	}

	ingredients, err := h.llmService.IdentifyIngredients(c.Request.Context(), req.PhotoDataURI)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "The model returned an unreadable response. Please try again."})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Ingredient identification failed. Please try again."})
		return
	}

	applied := false
	if hasSession && h.pantryService != nil {
		applied, err = h.pantryService.CompleteIdentification(c.Request.Context(), userID, gen, ingredients)
		if err != nil {
			log.Printf("[IdentifyHandler] failed to apply identification for %s: %v", userID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ingredients": ingredients,
		"count":       len(ingredients),
		"applied":     applied,
	})
}

func sessionUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := val.(uuid.UUID)
	return userID, ok
}

func sessionUserEmail(c *gin.Context) string {
	if val, exists := c.Get("user_email"); exists {
		if email, ok := val.(string); ok {
			return email
		}
	}
	return ""
}
