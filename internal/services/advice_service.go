package services

import (
	"context"

	"laganbus/internal/assistant"
	"laganbus/internal/metrics"
	"laganbus/internal/utils"
)

// ReplyGenerator produces a text reply for a free-text travel query.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, query string) (string, error)
}

// AdviceService relays a query to the completion endpoint. It never fails:
// any error degrades to the fixed fallback reply.
type AdviceService struct {
	Advisor   ReplyGenerator
	RequestID string
}

func (s AdviceService) Advise(ctx context.Context, query string) string {
	reply, err := s.Advisor.GenerateReply(ctx, query)
	if err != nil {
		metrics.AssistantFallbacks.Inc()
		utils.LogError(s.RequestID, "assistant", "generate", err)
		return assistant.FallbackReply
	}
	utils.LogEvent(s.RequestID, "assistant", "generate", "ok")
	return reply
}
