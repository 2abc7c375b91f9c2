package relay

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/quiz-relay/internal/logging"
)

// Service turns a (topic, difficulty) request into normalized questions.
// It keeps no state between calls: one Generate is exactly one upstream call.
type Service struct {
	generator Generator
	metrics   *Metrics
	logger    zerolog.Logger
}

func NewService(generator Generator, metrics *Metrics, logger zerolog.Logger) *Service {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Service{
		generator: generator,
		metrics:   metrics,
		logger:    logger.With().Str("component", "relay").Logger(),
	}
}

// Generate validates req, calls the generation API once and normalizes its reply.
// Errors are ErrMissingInput, *UpstreamError, *ParseError or ErrInvalidShape.
func (s *Service) Generate(ctx context.Context, req Request) ([]GeneratedQuestion, error) {
	if err := req.Validate(); err != nil {
		s.metrics.observeOutcome(OutcomeInvalidInput)
		return nil, err
	}

	logger := s.requestLogger(ctx).With().
		Str("generation_id", GenerationID(ctx)).
		Str("topic", req.Topic).
		Str("difficulty", req.Difficulty).
		Logger()

	started := time.Now()
	raw, err := s.generator.Generate(ctx, BuildPrompt(req.Topic, req.Difficulty))
	s.metrics.observeUpstream(s.generator.Name(), started)
	if err != nil {
		s.metrics.observeOutcome(OutcomeUpstream)
		logger.Error().Err(err).Str("provider", s.generator.Name()).Msg("generation api call failed")
		return nil, &UpstreamError{Provider: s.generator.Name(), Err: err}
	}

	outcome := ParseReply(raw)
	if !outcome.OK() {
		s.metrics.observeOutcome(OutcomeUnparseable)
		logger.Error().
			Str("raw", raw).
			AnErr("direct_err", outcome.Err.DirectErr).
			AnErr("stripped_err", outcome.Err.StrippedErr).
			Msg("failed to parse model reply")
		return nil, outcome.Err
	}

	questions, err := Normalize(outcome.Value)
	if err != nil {
		s.metrics.observeOutcome(OutcomeInvalidShape)
		logger.Error().Str("raw", raw).Str("stage", string(outcome.Stage)).Msg("model reply is not a non-empty array")
		return nil, err
	}

	s.metrics.observeOutcome(OutcomeOK)
	return questions, nil
}

type generationIDKey struct{}

// WithGenerationID tags ctx with the id used to correlate one generation's log lines.
func WithGenerationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, generationIDKey{}, id)
}

// GenerationID returns the id stored in ctx, or a fresh one.
func GenerationID(ctx context.Context) string {
	if id, ok := ctx.Value(generationIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

func (s *Service) requestLogger(ctx context.Context) zerolog.Logger {
	if l := logging.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l.With().Str("component", "relay").Logger()
	}
	return s.logger
}
