// File: services/intelligence/interface.go
package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Generator produces best-effort free text for one prompt. It is
// treated as unreliable and slow: callers get either text or an error
// (timeout included) and must fall back on error.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrEmptyCompletion is returned when the backend answers with no text.
var ErrEmptyCompletion = errors.New("empty completion from generator")

// DefaultGeneratorService wraps a Gemini client with a hard timeout and
// an optional Redis response cache. One call per unknown/generic turn.
type DefaultGeneratorService struct {
	Client  *GeminiClient
	Cache   *ResponseCache
	Timeout time.Duration
	Logger  *zap.Logger
}

func NewDefaultGeneratorService(client *GeminiClient, cache *ResponseCache, timeout time.Duration, logger *zap.Logger) *DefaultGeneratorService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DefaultGeneratorService{Client: client, Cache: cache, Timeout: timeout, Logger: logger}
}

func (s *DefaultGeneratorService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx, prompt); ok {
			s.Logger.Debug("generator cache hit")
			return cached, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	text, err := s.Client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyCompletion
	}

	if s.Cache != nil {
		// Best effort; a cache failure never fails the turn.
		if err := s.Cache.Set(ctx, prompt, text); err != nil {
			s.Logger.Warn("failed to cache generated response", zap.Error(err))
		}
	}
	return text, nil
}
