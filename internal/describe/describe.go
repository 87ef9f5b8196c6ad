// Package describe produces a short decorative sentence about a time of day.
// It never influences the clock state; every failure degrades to a static,
// language-specific fallback.
package describe

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tartampluch/analog-clock/internal/config"
	"github.com/tartampluch/analog-clock/internal/engine"
)

// ErrNoCredential is returned by generators when no API key is configured.
var ErrNoCredential = errors.New(config.ErrNoCredential)

// Generator is the capability behind the description button.
// Implementations may fail with ErrNoCredential or a network error.
type Generator interface {
	Describe(ctx context.Context, hours, minutes int, lang engine.Language) (string, error)
}

// Fallback identifies which static message replaces a failed description.
type Fallback int

const (
	FallbackNoCredential Fallback = iota
	FallbackEmpty
	FallbackFailed
)

// fallbacks is the immutable message table keyed by language.
var fallbacks = map[engine.Language]map[Fallback]string{
	engine.LanguageEN: {
		FallbackNoCredential: config.FallbackNoKeyEN,
		FallbackEmpty:        config.FallbackEmptyEN,
		FallbackFailed:       config.FallbackFailedEN,
	},
	engine.LanguageZH: {
		FallbackNoCredential: config.FallbackNoKeyZH,
		FallbackEmpty:        config.FallbackEmptyZH,
		FallbackFailed:       config.FallbackFailedZH,
	},
}

// FallbackText returns the static message for lang.
func FallbackText(lang engine.Language, kind Fallback) string {
	table, ok := fallbacks[lang]
	if !ok {
		table = fallbacks[engine.LanguageEN]
	}
	return table[kind]
}

// Service wraps a Generator with a timeout and fallback handling.
type Service struct {
	Generator Generator
	Timeout   time.Duration
}

// NewService returns a Service using the default request timeout.
func NewService(g Generator) *Service {
	return &Service{Generator: g, Timeout: config.DescribeTimeout}
}

// Describe returns a description of hours:minutes in lang.
// It never returns an error: missing credentials, network failures and
// empty replies all map to a fallback sentence.
func (s *Service) Describe(ctx context.Context, hours, minutes int, lang engine.Language) string {
	log := slog.With(
		config.LogKeyComponent, config.CompDescribe,
		config.LogKeyLang, lang.Code(),
	)

	if s == nil || s.Generator == nil {
		return FallbackText(lang, FallbackNoCredential)
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	start := time.Now()
	log.Debug(config.MsgDescribeReq, config.LogKeyTime, engine.TimeValue{Hours: hours, Minutes: minutes}.String())

	text, err := s.Generator.Describe(ctx, hours, minutes, lang)
	switch {
	case errors.Is(err, ErrNoCredential):
		log.Warn(config.MsgDescribeFail, config.LogKeyError, err)
		return FallbackText(lang, FallbackNoCredential)
	case err != nil:
		log.Error(config.MsgDescribeFail, config.LogKeyError, err)
		return FallbackText(lang, FallbackFailed)
	case text == "":
		log.Warn(config.MsgDescribeFail, config.LogKeyError, config.ErrGenEmpty)
		return FallbackText(lang, FallbackEmpty)
	}

	log.Info(config.MsgDescribeOK, config.LogKeyDuration, time.Since(start).Milliseconds())
	return text
}
