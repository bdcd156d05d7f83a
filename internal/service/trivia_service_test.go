package service

import (
	"context"
	"errors"
	"testing"

	"ai-chatbot-be/internal/pkg/logger"
	"ai-chatbot-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	response string
	err      error

	lastPrompt  string
	lastHistory []llm.Message
	lastOptions llm.Options
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.lastHistory = history
	for _, opt := range options {
		opt(&f.lastOptions)
	}
	return f.response, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.lastPrompt = prompt
	for _, opt := range options {
		opt(&f.lastOptions)
	}
	return f.response, f.err
}

func newTriviaServiceForTest(fake *fakeLLM) ITriviaService {
	return NewTriviaService(fake, logger.NewIsolatedLogger("logs/test.log"))
}

func TestTriviaGenerate(t *testing.T) {
	t.Run("valid json response", func(t *testing.T) {
		fake := &fakeLLM{response: `{"question": "Capital of France?", "options": ["Paris", "Lyon", "Nice", "Lille"], "answer": "Paris"}`}
		svc := newTriviaServiceForTest(fake)

		res, err := svc.Generate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Capital of France?", res.Question)
		assert.Len(t, res.Options, 4)
		assert.Equal(t, "Paris", res.Answer)
		assert.InDelta(t, 1.2, fake.lastOptions.Temperature, 0.001)
	})

	t.Run("fenced json response", func(t *testing.T) {
		fake := &fakeLLM{response: "```json\n{\"question\": \"Q?\", \"options\": [\"a\", \"b\", \"c\", \"d\"], \"answer\": \"a\"}\n```"}
		svc := newTriviaServiceForTest(fake)

		res, err := svc.Generate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Q?", res.Question)
	})

	t.Run("unparseable response falls back", func(t *testing.T) {
		fake := &fakeLLM{response: "Sure! Here is a fun trivia question for you: what is..."}
		svc := newTriviaServiceForTest(fake)

		res, err := svc.Generate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Which element has the chemical symbol 'O'?", res.Question)
		assert.Equal(t, "Oxygen", res.Answer)
	})

	t.Run("incomplete payload falls back", func(t *testing.T) {
		fake := &fakeLLM{response: `{"question": "Q?", "options": ["only", "three", "options"], "answer": "only"}`}
		svc := newTriviaServiceForTest(fake)

		res, err := svc.Generate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Oxygen", res.Answer)
	})

	t.Run("transport failure", func(t *testing.T) {
		fake := &fakeLLM{err: errors.New("connection refused")}
		svc := newTriviaServiceForTest(fake)

		_, err := svc.Generate(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Failed to generate trivia")
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestParseTrivia(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"plain json", `{"question": "Q", "options": ["a","b","c","d"], "answer": "a"}`, false},
		{"fenced", "```\n{\"question\": \"Q\", \"options\": [\"a\",\"b\",\"c\",\"d\"], \"answer\": \"a\"}\n```", false},
		{"empty question", `{"question": "", "options": ["a","b","c","d"], "answer": "a"}`, true},
		{"missing answer", `{"question": "Q", "options": ["a","b","c","d"]}`, true},
		{"not json", "hello there", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTrivia(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
