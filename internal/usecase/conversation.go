package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/recerqa/recerqa-ai/internal/domain/errors"
)

// TextGenerator produces a reply for a prompt pair.
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

const conversationSystemPrompt = "あなたはRECERQA AIの発注アシスタントです。" +
	"ユーザーの発注や在庫、納期に関する質問に日本語で簡潔かつ丁寧に回答してください。" +
	"発注したい場合は「商品名を数量個発注」の形式で入力するよう案内してください。"

// ConversationUseCase answers messages that carry no order intent.
type ConversationUseCase struct {
	generator TextGenerator
}

// NewConversationUseCase constructs ConversationUseCase.
func NewConversationUseCase(generator TextGenerator) *ConversationUseCase {
	return &ConversationUseCase{generator: generator}
}

// Reply forwards message to the generator and returns its text unmodified.
func (u *ConversationUseCase) Reply(ctx context.Context, message string) (string, error) {
	reply, err := u.generator.Generate(ctx, conversationSystemPrompt, message)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domainErrors.ErrGenerationFailed, err)
	}
	return reply, nil
}
