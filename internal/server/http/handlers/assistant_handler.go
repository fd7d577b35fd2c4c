package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foodkart/foodkart/internal/server/http/dto"
)

// AssistantHandler answers storefront chat questions.
type AssistantHandler struct {
	facade AssistantFacade
}

// NewAssistantHandler constructs AssistantHandler.
func NewAssistantHandler(facade AssistantFacade) *AssistantHandler {
	return &AssistantHandler{facade: facade}
}

// Chat handles POST /api/assistant/chat.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	reply, err := h.facade.Chat(c.Request.Context(), req.Message)
	if err != nil {
		c.Status(http.StatusBadGateway)
		return
	}
	c.JSON(http.StatusOK, dto.ChatResponse{Reply: reply})
}
