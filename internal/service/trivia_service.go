package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/pkg/logger"
	"ai-chatbot-be/internal/pkg/serverutils"
	"ai-chatbot-be/pkg/llm"
)

type ITriviaService interface {
	Generate(ctx context.Context) (*dto.TriviaResponse, error)
}

type triviaService struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewTriviaService(llmProvider llm.LLMProvider, log logger.ILogger) ITriviaService {
	return &triviaService{
		llmProvider: llmProvider,
		logger:      log,
	}
}

func fallbackTrivia() *dto.TriviaResponse {
	return &dto.TriviaResponse{
		Question: "Which element has the chemical symbol 'O'?",
		Options:  []string{"Oxygen", "Gold", "Osmium", "Oganesson"},
		Answer:   "Oxygen",
	}
}

// Generate asks the model for one fresh trivia question. The random seed in
// the prompt plus a high temperature keeps repeated calls from converging on
// the same question.
func (s *triviaService) Generate(ctx context.Context) (*dto.TriviaResponse, error) {
	seed := rand.Intn(1000000)
	prompt := fmt.Sprintf(
		"Generate a random trivia question (seed: %d). Respond ONLY with strict JSON in this exact shape, no markdown: "+
			`{"question": "...", "options": ["...", "...", "...", "..."], "answer": "..."}. `+
			"The answer must be one of the four options.",
		seed,
	)

	raw, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(1.2))
	if err != nil {
		return nil, serverutils.Internal(fmt.Sprintf("Failed to generate trivia: %v", err))
	}

	trivia, parseErr := parseTrivia(raw)
	if parseErr != nil {
		s.logger.Warn("TriviaService", "Falling back to static trivia", map[string]interface{}{
			"error": parseErr.Error(),
		})
		return fallbackTrivia(), nil
	}
	return trivia, nil
}

// parseTrivia strips markdown code fences and decodes the model output.
func parseTrivia(raw string) (*dto.TriviaResponse, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var trivia dto.TriviaResponse
	if err := json.Unmarshal([]byte(cleaned), &trivia); err != nil {
		return nil, err
	}
	if trivia.Question == "" || len(trivia.Options) != 4 || trivia.Answer == "" {
		return nil, fmt.Errorf("incomplete trivia payload")
	}
	return &trivia, nil
}
