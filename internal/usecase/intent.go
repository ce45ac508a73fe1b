package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/recerqa/recerqa-ai/internal/domain/model"
)

// IntentExtractor classifies a chat message.
type IntentExtractor interface {
	Extract(message string) model.Intent
}

// orderPhrase matches "<product>を<N>個発注" anywhere in the message. The
// product capture is greedy, so "AをBを3個発注" yields product "AをB".
var orderPhrase = regexp.MustCompile(`(.+)を(\d+)個発注`)

// RegexIntentExtractor recognises the fixed Japanese order phrase.
type RegexIntentExtractor struct {
	pattern *regexp.Regexp
}

// NewRegexIntentExtractor constructs RegexIntentExtractor.
func NewRegexIntentExtractor() *RegexIntentExtractor {
	return &RegexIntentExtractor{pattern: orderPhrase}
}

// Extract returns an order intent for the first matching phrase, or a
// conversation intent when the phrase is absent or its fields are unusable.
func (e *RegexIntentExtractor) Extract(message string) model.Intent {
	m := e.pattern.FindStringSubmatch(message)
	if m == nil {
		return model.Conversation()
	}

	product := strings.TrimSpace(m[1])
	if product == "" {
		return model.Conversation()
	}

	quantity, err := strconv.ParseInt(m[2], 10, 32)
	if err != nil || quantity <= 0 {
		return model.Conversation()
	}

	return model.Intent{
		Kind:        model.IntentOrder,
		ProductName: product,
		Quantity:    int(quantity),
	}
}
