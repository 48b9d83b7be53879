package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hashpix_backend/utils"
)

// DefaultMaxInputLength caps inputs accepted by AvatarService, in runes.
const DefaultMaxInputLength = 256

// ErrInputTooLong is returned for inputs over the configured length.
var ErrInputTooLong = errors.New("input too long")

// Avatar is everything derived from one input string.
type Avatar struct {
	Input   string
	Digest  uint32
	Palette Palette
	// Grid is nil for empty input.
	Grid     *Grid
	Attempts int
	InBand   bool
}

// Placeholder reports whether there is no grid to draw.
func (a *Avatar) Placeholder() bool {
	return a.Grid == nil
}

type AvatarService struct {
	rules          GridRules
	ids            *IdentifierGenerator
	maxInputLength int
	tracer         trace.Tracer
}

type AvatarOption func(*AvatarService)

// WithGridRules overrides DefaultGridRules.
func WithGridRules(rules GridRules) AvatarOption {
	return func(s *AvatarService) { s.rules = rules }
}

func WithIdentifierGenerator(ids *IdentifierGenerator) AvatarOption {
	return func(s *AvatarService) { s.ids = ids }
}

// WithMaxInputLength sets the input cap; n <= 0 disables it.
func WithMaxInputLength(n int) AvatarOption {
	return func(s *AvatarService) { s.maxInputLength = n }
}

func NewAvatarService(opts ...AvatarOption) *AvatarService {
	s := &AvatarService{
		rules:          DefaultGridRules,
		ids:            NewIdentifierGenerator(nil),
		maxInputLength: DefaultMaxInputLength,
		tracer:         otel.Tracer("hashpix_backend/services"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate derives the avatar for input. Every call starts from the raw
// input; nothing is cached between calls.
func (s *AvatarService) Generate(ctx context.Context, input string) (*Avatar, error) {
	_, span := s.tracer.Start(ctx, "avatar.generate")
	defer span.End()

	if s.maxInputLength > 0 {
		if n := utf8.RuneCountInString(input); n > s.maxInputLength {
			err := fmt.Errorf("%w: %d characters, limit is %d", ErrInputTooLong, n, s.maxInputLength)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
	}

	digest := utils.HashString(input)
	avatar := &Avatar{
		Input:   input,
		Digest:  digest,
		Palette: DerivePalette(digest),
	}
	if input != "" {
		outcome := s.rules.Generate(digest)
		avatar.Grid = &outcome.Grid
		avatar.Attempts = outcome.Attempts
		avatar.InBand = outcome.InBand
	}

	span.SetAttributes(
		attribute.Int64("avatar.digest", int64(digest)),
		attribute.Int("avatar.hue", avatar.Palette.Primary.Hue),
		attribute.Int("avatar.attempts", avatar.Attempts),
		attribute.Bool("avatar.in_band", avatar.InBand),
		attribute.Bool("avatar.placeholder", avatar.Placeholder()),
	)
	return avatar, nil
}

// Random derives the avatar of a freshly generated identifier.
func (s *AvatarService) Random(ctx context.Context) (*Avatar, error) {
	return s.Generate(ctx, s.NewIdentifier())
}

// NewIdentifier returns a fresh random identifier.
func (s *AvatarService) NewIdentifier() string {
	return s.ids.Next()
}
