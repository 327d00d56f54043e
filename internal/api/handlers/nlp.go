package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sgoyalsmvj/PixelTone/internal/config"
	"github.com/sgoyalsmvj/PixelTone/internal/logger"
	"github.com/sgoyalsmvj/PixelTone/internal/metrics"
	"github.com/sgoyalsmvj/PixelTone/internal/nlp"
)

// NLPHandler exposes the parsing pipeline over HTTP
type NLPHandler struct {
	cfg           *config.Config
	service       *nlp.Service
	metrics       *metrics.Client
	sentryMetrics *metrics.SentryMetrics
}

func NewNLPHandler(cfg *config.Config, service *nlp.Service, metricsClient *metrics.Client) *NLPHandler {
	return &NLPHandler{
		cfg:           cfg,
		service:       service,
		metrics:       metricsClient,
		sentryMetrics: metrics.NewSentryMetrics(),
	}
}

// ParseRequest is the body of POST /api/v1/parse. Type defaults to mixed,
// which lets the classifier pick the modality. Context optionally carries
// parameters from a previous parse to refine.
type ParseRequest struct {
	Text    string            `json:"text"`
	Type    nlp.Intent        `json:"type" binding:"omitempty,oneof=visual audio mixed"`
	Context *nlp.ParseContext `json:"context,omitempty"`
}

// ValidateRequest is the body of POST /api/v1/validate.
type ValidateRequest struct {
	Parameters nlp.ParsedParameters `json:"parameters" binding:"required"`
}

// SuggestionsRequest is the body of POST /api/v1/suggestions.
type SuggestionsRequest struct {
	Parameters nlp.ParsedParameters `json:"parameters" binding:"required"`
	Text       string               `json:"text"`
}

// NormalizeRequest is the body of POST /api/v1/normalize.
type NormalizeRequest struct {
	Parameters nlp.ParsedParameters `json:"parameters" binding:"required"`
}

// TextRequest is the body of the intent and sentiment endpoints.
type TextRequest struct {
	Text string `json:"text" binding:"required"`
}

// Parse runs the full pipeline over a creative description
func (h *NLPHandler) Parse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if len(req.Text) > h.cfg.MaxInputLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input text exceeds maximum length"})
		return
	}

	intentType := req.Type
	if intentType == "" {
		intentType = nlp.IntentMixed
	}

	start := time.Now()
	result, err := h.service.ParseCreativeInput(req.Text, intentType, req.Context)
	if err != nil {
		logger.Error("Parse failed", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	duration := time.Since(start)

	logger.LogParseRequest(c, string(intentType), result.Confidence, duration, logger.Fields{
		"text_length": len(req.Text),
		"ambiguities": len(result.Ambiguities),
	})
	h.metrics.RecordParseRequest(string(intentType), result.Confidence, len(result.Ambiguities), duration)
	h.sentryMetrics.RecordParse(c.Request.Context(), string(intentType), result.Confidence, len(result.Ambiguities), duration)

	c.JSON(http.StatusOK, result)
}

// Validate checks parsed parameters for completeness and correctness
func (h *NLPHandler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	result := h.service.ValidateParameters(req.Parameters)
	if !result.IsValid {
		for _, validationErr := range result.Errors {
			h.metrics.RecordValidationFailure(validationErr.Code)
		}
	}

	c.JSON(http.StatusOK, result)
}

// Suggestions returns structured improvement hints for parsed parameters
func (h *NLPHandler) Suggestions(c *gin.Context) {
	var req SuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	suggestions := h.service.GenerateSuggestions(req.Parameters, req.Text)
	improvements := h.service.SuggestImprovements(req.Parameters)

	c.JSON(http.StatusOK, gin.H{
		"suggestions":  suggestions,
		"improvements": improvements,
	})
}

// Normalize cleans and standardizes parsed parameters
func (h *NLPHandler) Normalize(c *gin.Context) {
	var req NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"parameters": h.service.NormalizeParameters(req.Parameters),
	})
}

// Intent classifies the target modality of a text
func (h *NLPHandler) Intent(c *gin.Context) {
	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"intent": h.service.ClassifyIntent(req.Text),
	})
}

// Sentiment scores the polarity and mood of a text
func (h *NLPHandler) Sentiment(c *gin.Context) {
	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.AnalyzeSentiment(req.Text))
}
