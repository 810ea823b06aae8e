package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Service asks personas questions through a Generator.
type Service struct {
	gen     Generator
	profile Profile
	timeout time.Duration
	log     *zap.Logger
}

// NewService wires a Generator with the student profile. A zero timeout
// leaves the caller's context deadline in charge.
func NewService(gen Generator, profile Profile, timeout time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{gen: gen, profile: profile, timeout: timeout, log: log}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Ask sends question to the named persona and returns the raw reply.
func (s *Service) Ask(ctx context.Context, persona, question string) (string, error) {
	a, err := Lookup(persona)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(question) == "" {
		return "", errors.New("question is required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	text, err := s.gen.Generate(ctx, BuildPrompt(a, s.profile, question))
	if err != nil {
		s.log.Warn("agent request failed", zap.String("agent", string(a.Name)), zap.Error(err))
		return "", fmt.Errorf("%s: %w", a.Title, err)
	}
	s.log.Info("agent replied",
		zap.String("agent", string(a.Name)),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("bytes", len(text)),
	)
	return text, nil
}

// Motivate returns a short encouragement for the given progress percentage.
// Generation failures fall back to a fixed message and never surface.
func (s *Service) Motivate(ctx context.Context, progress int) string {
	name := s.profile.Name
	if name == "" {
		name = "there"
	}

	prompt := fmt.Sprintf(
		"Generate a short, encouraging motivational message for a student named %s who has completed %d%% of their career learning journey. "+
			"Include an emoji and keep it under 50 words. Make it personal and inspiring.",
		name, progress)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			s.log.Debug("motivation fallback", zap.Error(err))
		}
		return FallbackMotivation(name, progress)
	}
	return strings.TrimSpace(text)
}

// FallbackMotivation is the message used when the model is unavailable.
func FallbackMotivation(name string, progress int) string {
	return fmt.Sprintf("🚀 Great progress, %s! You're %d%% there - keep building your future!", name, progress)
}
