package skills

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"resume-insights/internal/extract"
	"resume-insights/internal/shared/metrics"
	"resume-insights/internal/shared/telemetry"
)

// FallbackClassifier tries Primary once under Timeout and falls back to the
// keyword scan on any failure. Only primary results are cached.
type FallbackClassifier struct {
	Primary  Classifier
	Fallback Classifier
	Timeout  time.Duration
	Cache    Cache

	group singleflight.Group
}

// NewFallbackClassifier wires a model classifier in front of the keyword scan.
func NewFallbackClassifier(primary Classifier, timeout time.Duration, cache Cache) *FallbackClassifier {
	return &FallbackClassifier{
		Primary:  primary,
		Fallback: KeywordClassifier{},
		Timeout:  timeout,
		Cache:    cache,
	}
}

func (f *FallbackClassifier) Classify(ctx context.Context, text string) (Result, error) {
	if err := checkText(text); err != nil {
		return Result{}, err
	}
	key := CacheKey(text)
	v, err, _ := f.group.Do(key, func() (interface{}, error) {
		return f.classify(ctx, key, text)
	})
	if err != nil {
		return Result{}, err
	}
	return v.(Result), nil
}

func (f *FallbackClassifier) classify(ctx context.Context, key, text string) (Result, error) {
	if f.Cache != nil {
		cached, ok, err := f.Cache.Get(ctx, key)
		if err != nil {
			telemetry.Warn("skills.cache_get_failed", map[string]any{"error": err})
		} else if ok {
			return cached, nil
		}
	}

	if f.Primary != nil {
		result, err := f.tryPrimary(ctx, text)
		if err == nil {
			if f.Cache != nil {
				if err := f.Cache.Set(ctx, key, result); err != nil {
					telemetry.Warn("skills.cache_set_failed", map[string]any{"error": err})
				}
			}
			return result, nil
		}
		if errors.Is(err, extract.ErrNoReadableText) {
			return Result{}, err
		}
		metrics.IncClassifierFallback()
		telemetry.Warn("skills.classifier_fallback", map[string]any{
			"error":      err,
			"request_id": telemetry.RequestIDFrom(ctx),
		})
	}

	fallback := f.Fallback
	if fallback == nil {
		fallback = KeywordClassifier{}
	}
	return fallback.Classify(ctx, text)
}

func (f *FallbackClassifier) tryPrimary(ctx context.Context, text string) (Result, error) {
	callCtx := ctx
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}
	return f.Primary.Classify(callCtx, text)
}
