package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/henomis/lingoose/llm/anthropic"
	"github.com/henomis/lingoose/thread"

	"marquesa/internal/domain/models"
	"marquesa/internal/repositories"
	"marquesa/internal/utils"
)

// minReviewsForSummary gates the AI summary so it never runs on one or
// two opinions.
const minReviewsForSummary = 3

// SummaryService produces a short AI summary of a product's visible
// reviews. When no API key is configured the service is disabled and
// Summarize quietly returns nothing.
type SummaryService struct {
	ReviewRepo repositories.ReviewRepository
	RequestID  string

	ai *anthropic.Antropic
}

func NewSummaryService(repo repositories.ReviewRepository, apiKey string) *SummaryService {
	s := &SummaryService{ReviewRepo: repo}
	if strings.TrimSpace(apiKey) != "" {
		s.ai = anthropic.New().WithModel("claude-3-5-sonnet-20240620")
	}
	return s
}

func (s *SummaryService) Enabled() bool {
	return s != nil && s.ai != nil
}

// Summarize returns at most 200 characters describing the visible
// reviews of a product, or "" when disabled or under the threshold.
func (s *SummaryService) Summarize(ctx context.Context, productID int64) (string, error) {
	if !s.Enabled() {
		return "", nil
	}

	reviews, err := s.ReviewRepo.ListVisibleByProduct(productID)
	if err != nil {
		return "", err
	}
	if !summaryEligible(reviews) {
		return "", nil
	}

	var content strings.Builder
	for _, rev := range reviews {
		fmt.Fprintf(&content, "Calificación: %d Reseña: %s\n", rev.Rating, rev.Message)
	}

	t := thread.New().AddMessage(
		thread.NewUserMessage().AddContent(
			thread.NewTextContent(
				"Resume estas reseñas de clientes en español, en menos de 200 caracteres, solo el resumen:\n" + content.String(),
			),
		),
	)

	if err := s.ai.Generate(ctx, t); err != nil {
		return "", err
	}

	summary := t.LastMessage().Contents[0].AsString()
	utils.LogEvent(s.RequestID, "review", "ai_summary", fmt.Sprintf("product_id=%d", productID))
	return summary, nil
}

// summaryEligible keeps the threshold rule testable without the LLM.
func summaryEligible(reviews []models.Review) bool {
	return len(reviews) >= minReviewsForSummary
}
