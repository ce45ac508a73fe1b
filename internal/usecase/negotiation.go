package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/recerqa/recerqa-ai/internal/domain/errors"
	"github.com/recerqa/recerqa-ai/internal/domain/model"
)

const negotiationSystemPrompt = "あなたは調達担当者の交渉アシスタントです。" +
	"仕入先に送る価格および納期の交渉文を、丁寧なビジネス日本語で作成してください。" +
	"本文のみを出力し、件名や署名は含めないでください。"

// NegotiationUseCase drafts supplier negotiation messages.
type NegotiationUseCase struct {
	generator TextGenerator
}

// NewNegotiationUseCase constructs NegotiationUseCase.
func NewNegotiationUseCase(generator TextGenerator) *NegotiationUseCase {
	return &NegotiationUseCase{generator: generator}
}

// Draft returns generated negotiation text for req.
func (u *NegotiationUseCase) Draft(ctx context.Context, req model.NegotiationRequest) (string, error) {
	if err := ValidateNegotiation(req); err != nil {
		return "", err
	}

	text, err := u.generator.Generate(ctx, negotiationSystemPrompt, negotiationPrompt(req))
	if err != nil {
		return "", fmt.Errorf("%w: %w", domainErrors.ErrGenerationFailed, err)
	}
	return strings.TrimSpace(text), nil
}

func negotiationPrompt(req model.NegotiationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "商品名: %s\n", strings.TrimSpace(req.ProductName))
	fmt.Fprintf(&b, "数量: %d個\n", req.Quantity)
	if req.CurrentPrice > 0 {
		fmt.Fprintf(&b, "現在の単価: %.2f円\n", req.CurrentPrice)
	}
	fmt.Fprintf(&b, "希望単価: %.2f円\n", req.TargetPrice)
	if d := strings.TrimSpace(req.DeliveryDate); d != "" {
		fmt.Fprintf(&b, "希望納期: %s\n", d)
	}
	if n := strings.TrimSpace(req.Notes); n != "" {
		fmt.Fprintf(&b, "備考: %s\n", n)
	}
	b.WriteString("上記の条件で仕入先に送る交渉文を作成してください。")
	return b.String()
}
