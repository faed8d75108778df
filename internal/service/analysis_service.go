package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/stemsi/unigrade-backend/internal/logger"
	"github.com/stemsi/unigrade-backend/internal/model"
	"github.com/stemsi/unigrade-backend/internal/repository"
)

// Fixed analysis replies used instead of an error.
const (
	AnalysisNotConfigured = "API Key not configured."
	AnalysisUnavailable   = "AI Analysis currently unavailable."
)

// TextGenerator turns a prompt into prose.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AnalysisService asks a text generator for a Dean-level summary of pending
// marks. Failures never reach the caller, a fallback sentence is returned instead.
type AnalysisService struct {
	marks   repository.MarkStore
	gen     TextGenerator
	timeout time.Duration
	log     zerolog.Logger
}

// NewAnalysisService creates the service. A nil generator means no API key is configured.
func NewAnalysisService(marks repository.MarkStore, gen TextGenerator, timeout time.Duration, log zerolog.Logger) *AnalysisService {
	return &AnalysisService{
		marks:   marks,
		gen:     gen,
		timeout: timeout,
		log:     logger.Component(log, "analysis_service"),
	}
}

// AnalyzePending summarizes the marks currently awaiting approval.
func (s *AnalysisService) AnalyzePending(ctx context.Context) string {
	if s.gen == nil {
		return AnalysisNotConfigured
	}

	pending, err := s.marks.FilterByStatus(ctx, model.MarkStatusSubmitted)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load pending marks")
		return AnalysisUnavailable
	}
	return s.Analyze(ctx, pending)
}

// Analyze runs the generator over the given marks within the configured timeout.
func (s *AnalysisService) Analyze(ctx context.Context, marks []model.MarkRecord) string {
	if s.gen == nil {
		return AnalysisNotConfigured
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.gen.Generate(genCtx, BuildAnalysisPrompt(marks))
	if err != nil {
		s.log.Warn().Err(err).Int("marks", len(marks)).Msg("text generation failed")
		return AnalysisUnavailable
	}
	if strings.TrimSpace(text) == "" {
		s.log.Warn().Int("marks", len(marks)).Msg("text generation returned no text")
		return AnalysisUnavailable
	}
	return text
}

// SummarizeMarks flattens marks into "CODE: total (letter)" lines.
func SummarizeMarks(marks []model.MarkRecord) string {
	lines := make([]string, 0, len(marks))
	for _, m := range marks {
		lines = append(lines, fmt.Sprintf("%s: %s (%s)", m.CourseCode, formatScore(m.Total), m.GradeLetter))
	}
	return strings.Join(lines, "\n")
}

// BuildAnalysisPrompt embeds the mark summary in the Dean report instructions.
func BuildAnalysisPrompt(marks []model.MarkRecord) string {
	return `Analyze the following university examination results.
Provide a brief, professional summary for the Dean.
Highlight:
1. Overall performance trend.
2. Any courses where grades are unusually low (potential teaching issue).
3. Any outlier high performances.

Data:
` + SummarizeMarks(marks)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
