package fetch

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNoPostingText is returned when a page yields no usable text.
var ErrNoPostingText = errors.New("no job posting text found")

// JobDescription fetches a job posting and returns its plain text, using
// platform-specific selectors and, when enabled, a headless browser fallback.
func JobDescription(ctx context.Context, urlStr string, opts *Options, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	opts = opts.withDefaults()

	platform := DetectPlatform(urlStr)
	log = log.With(zap.String("url", urlStr), zap.String("platform", string(platform)))

	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return "", err
	}
	log.Debug("fetched job posting", zap.Int("bytes", len(result.HTML)))

	content := PlatformContentSelectors(platform)
	noise := PlatformNoiseSelectors(platform)

	text, err := ExtractMainText(result.HTML, content, noise...)
	if err != nil {
		return "", fmt.Errorf("failed to extract job posting text: %w", err)
	}

	if opts.UseBrowser && ShouldUseBrowser(text) {
		log.Debug("content too short, rendering with browser", zap.Int("chars", len(text)))
		rendered, browserErr := WithBrowser(ctx, urlStr, opts.Timeout, log)
		if browserErr != nil {
			log.Warn("browser rendering failed, keeping HTTP content", zap.Error(browserErr))
		} else if renderedText, extractErr := ExtractMainText(rendered, content, noise...); extractErr == nil {
			text = renderedText
		}
	}

	if text == "" {
		return "", ErrNoPostingText
	}
	return text, nil
}
