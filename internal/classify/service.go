package classify

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/linnemanlabs/go-core/log"
)

var tracer = otel.Tracer("github.com/linnemanlabs/bfhl/internal/classify")

// CompleteEvent describes one finished classification for observers.
type CompleteEvent struct {
	Success  bool
	Tokens   int
	Odd      int
	Even     int
	Letters  int
	Special  int
	Duration float64
}

// Hooks lets callers observe classifications without coupling the service to a metrics backend.
type Hooks struct {
	OnComplete func(e *CompleteEvent)
}

// Service is the business boundary for classification requests.
type Service struct {
	engine *Engine
	logger log.Logger
	hooks  Hooks
}

// NewService creates a classification service around engine.
func NewService(engine *Engine, logger log.Logger, hooks Hooks) *Service {
	if engine == nil {
		engine = NewEngine(ASCII)
	}
	if logger == nil {
		logger = log.Nop()
	}
	return &Service{
		engine: engine,
		logger: logger,
		hooks:  hooks,
	}
}

// Classify runs the engine over tokens and returns the tagged outcome.
func (s *Service) Classify(ctx context.Context, tokens []string) *Outcome {
	id := ulid.Make().String()

	ctx, span := tracer.Start(ctx, "classify.run", trace.WithAttributes(
		attribute.String("bfhl.classify.id", id),
		attribute.Int("bfhl.classify.tokens", len(tokens)),
		attribute.String("bfhl.classify.charset", s.engine.Charset().String()),
	))
	defer span.End()

	start := time.Now()
	res := s.engine.Classify(tokens)
	dur := time.Since(start)

	span.SetAttributes(
		attribute.Bool("bfhl.classify.success", res.Success),
		attribute.String("bfhl.classify.sum", res.Sum),
	)

	L := s.logger.With("classify_id", id, "tokens", len(tokens))
	if res.Success {
		L.Info(ctx, "classification complete",
			"odd", len(res.OddNumbers),
			"even", len(res.EvenNumbers),
			"alphabets", len(res.Alphabets),
			"special", len(res.SpecialCharacters),
			"duration", dur,
		)
	} else {
		span.SetStatus(codes.Error, res.Error)
		L.Warn(ctx, "classification failed", "error", res.Error, "duration", dur)
	}

	if s.hooks.OnComplete != nil {
		s.hooks.OnComplete(&CompleteEvent{
			Success:  res.Success,
			Tokens:   len(tokens),
			Odd:      len(res.OddNumbers),
			Even:     len(res.EvenNumbers),
			Letters:  len(res.Alphabets),
			Special:  len(res.SpecialCharacters),
			Duration: dur.Seconds(),
		})
	}

	return &Outcome{
		ID:       id,
		Result:   res,
		Tokens:   len(tokens),
		Duration: dur,
	}
}
