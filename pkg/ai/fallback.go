package ai

import (
	"context"
	"fmt"
	"net"
	"strings"

	"go.uber.org/zap"
)

// FallbackService chains two providers: if the primary fails before any
// delta reached the client, the secondary gets a try. Once output has been
// streamed there is no clean way to switch, so mid-stream failures
// propagate.
type FallbackService struct {
	primary   ChatService
	secondary ChatService
	logger    *zap.Logger
}

// NewFallbackService creates a fallback chain over two providers
func NewFallbackService(primary, secondary ChatService, logger *zap.Logger) *FallbackService {
	return &FallbackService{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(net.Error); ok {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"eof",
	}

	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	quotaIndicators := []string{
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
	}

	for _, indicator := range quotaIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

func (f *FallbackService) StreamChat(ctx context.Context, req ChatRequest, emit func(delta string) error) error {
	if f.primary != nil {
		emitted := false
		err := f.primary.StreamChat(ctx, req, func(delta string) error {
			emitted = true
			return emit(delta)
		})
		if err == nil {
			return nil
		}
		if emitted {
			// The client already saw part of the reply, a retry would
			// replay from the start.
			return err
		}

		switch {
		case isConnectionError(err):
			f.logger.Warn("primary AI provider unreachable, trying fallback", zap.Error(err))
		case isQuotaError(err):
			f.logger.Warn("primary AI provider quota exhausted, trying fallback", zap.Error(err))
		default:
			f.logger.Warn("primary AI provider failed, trying fallback", zap.Error(err))
		}
	}

	if f.secondary != nil {
		return f.secondary.StreamChat(ctx, req, emit)
	}

	return fmt.Errorf("no AI provider available")
}
