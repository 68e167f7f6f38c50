package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/travel-assistant/travel-assistant-service/internal/adapter/http/response"
	"github.com/travel-assistant/travel-assistant-service/internal/domain"
	"github.com/travel-assistant/travel-assistant-service/internal/search"
)

// Assistant is the conversational entry point the chat endpoint dispatches
// to. It is satisfied by agent.Agent.
type Assistant interface {
	Chat(ctx context.Context, input string) string
}

// AssistantHandler handles HTTP requests for the travel assistant endpoints.
type AssistantHandler struct {
	searcher  *search.Searcher
	assistant Assistant
}

// NewAssistantHandler creates a handler over the given searcher and
// conversational assistant.
func NewAssistantHandler(s *search.Searcher, a Assistant) *AssistantHandler {
	return &AssistantHandler{
		searcher:  s,
		assistant: a,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search the flight catalog with structured criteria; results are sorted ascending by price
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria (all fields optional)"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/flights/search [post]
func (h *AssistantHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	results := h.searcher.Search(ToDomainCriteria(&req))

	return response.OK(c, SearchResponseDTO{
		TotalResults: len(results),
		Flights:      ToFlightDTOs(results),
	})
}

// QueryFlights handles POST /api/v1/flights/query
//
// @Summary Search for flights with free text
// @Description Extract criteria from a natural-language query, search the catalog, and return formatted results
// @Tags flights
// @Accept json
// @Produce json
// @Param request body QueryRequest true "Natural-language query"
// @Success 200 {object} QueryResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/flights/query [post]
func (h *AssistantHandler) QueryFlights(c echo.Context) error {
	var req QueryRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	return response.OK(c, QueryResponse{
		Result: h.searcher.InterpretAndSearch(req.Query),
	})
}

// Chat handles POST /api/v1/assistant/chat
//
// @Summary Converse with the travel assistant
// @Description Route a user utterance to flight search or policy answering and return the reply
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body ChatRequest true "User utterance"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/assistant/chat [post]
func (h *AssistantHandler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	reply := h.assistant.Chat(c.Request().Context(), req.Message)

	return response.OK(c, ChatResponse{Reply: reply})
}

// Health handles GET /health
// Simple health check endpoint.
func (h *AssistantHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError maps validation failures to a 400 response.
func (h *AssistantHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}
