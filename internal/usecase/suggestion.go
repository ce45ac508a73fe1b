package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/recerqa/recerqa-ai/internal/domain/errors"
	"github.com/recerqa/recerqa-ai/internal/domain/model"
)

const (
	suggestionSystemPrompt = "あなたは発注支援システムの商品推薦エンジンです。" +
		"与えられた商品一覧の中から、ユーザーの要望に合う商品名だけを1行に1つずつ出力してください。" +
		"一覧にない商品名や説明文は出力しないでください。"
	maxSuggestions = 5
)

// SuggestionUseCase recommends catalog products for a free-text request.
type SuggestionUseCase struct {
	catalog   *CatalogUseCase
	generator TextGenerator
}

// NewSuggestionUseCase constructs SuggestionUseCase.
func NewSuggestionUseCase(catalog *CatalogUseCase, generator TextGenerator) *SuggestionUseCase {
	return &SuggestionUseCase{catalog: catalog, generator: generator}
}

// Suggest asks the generator to pick products for query. Only names that
// exist in the catalog are returned, in the order the generator listed them.
func (u *SuggestionUseCase) Suggest(ctx context.Context, query string) ([]model.Product, error) {
	if err := ValidateMessage(query); err != nil {
		return nil, err
	}

	products, err := u.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	if len(products) == 0 {
		return nil, nil
	}

	byName := make(map[string]model.Product, len(products))
	var prompt strings.Builder
	prompt.WriteString("商品一覧:\n")
	for _, p := range products {
		if _, dup := byName[p.Name]; dup {
			continue
		}
		byName[p.Name] = p
		fmt.Fprintf(&prompt, "- %s\n", p.Name)
	}
	fmt.Fprintf(&prompt, "要望: %s", strings.TrimSpace(query))

	text, err := u.generator.Generate(ctx, suggestionSystemPrompt, prompt.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrGenerationFailed, err)
	}

	return pickSuggestions(text, byName), nil
}

func pickSuggestions(text string, catalog map[string]model.Product) []model.Product {
	var (
		result []model.Product
		seen   = make(map[string]struct{})
	)
	for _, line := range strings.Split(text, "\n") {
		name := strings.TrimSpace(line)
		product, ok := catalog[name]
		if !ok {
			name = strings.TrimSpace(strings.TrimLeft(name, "-*・•0123456789.)） "))
			if product, ok = catalog[name]; !ok {
				continue
			}
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, product)
		if len(result) == maxSuggestions {
			break
		}
	}
	return result
}
