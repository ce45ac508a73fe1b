package usecase

import (
	"context"
	"errors"
	"log/slog"

	domainErrors "github.com/recerqa/recerqa-ai/internal/domain/errors"
	"github.com/recerqa/recerqa-ai/internal/domain/model"
)

// Fixed replies of the chat pipeline.
const (
	ReplyOrderAccepted    = "発注を受け付けました。"
	ReplyProductNotFound  = "ご指定の商品は見つかりませんでした。"
	ReplyGenerationFailed = "申し訳ありません。現在応答できません。しばらくしてから再度お試しください。"
)

// OutcomeRecorder counts pipeline outcomes.
type OutcomeRecorder interface {
	ChatOutcome(outcome model.ChatOutcome)
}

// ChatUseCase turns a chat message into either an order or a conversational reply.
type ChatUseCase struct {
	intents      IntentExtractor
	catalog      *CatalogUseCase
	orders       *OrderUseCase
	conversation *ConversationUseCase
	outcomes     OutcomeRecorder
	logger       *slog.Logger
}

// NewChatUseCase constructs ChatUseCase.
func NewChatUseCase(
	intents IntentExtractor,
	catalog *CatalogUseCase,
	orders *OrderUseCase,
	conversation *ConversationUseCase,
	outcomes OutcomeRecorder,
	logger *slog.Logger,
) *ChatUseCase {
	return &ChatUseCase{
		intents:      intents,
		catalog:      catalog,
		orders:       orders,
		conversation: conversation,
		outcomes:     outcomes,
		logger:       logger,
	}
}

// Handle runs a message through intent extraction, catalog lookup and order
// creation, falling back to the text generator when no order intent is found.
func (u *ChatUseCase) Handle(ctx context.Context, customerID, message string) (*model.ChatReply, error) {
	if err := ValidateCustomerID(customerID); err != nil {
		return nil, err
	}
	if err := ValidateMessage(message); err != nil {
		return nil, err
	}

	intent := u.intents.Extract(message)
	if intent.Kind != model.IntentOrder {
		return u.converse(ctx, customerID, message)
	}

	product, err := u.catalog.Lookup(ctx, intent.ProductName)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			u.logger.Info("ordered product not found",
				slog.String("customer_id", customerID),
				slog.String("product", intent.ProductName),
			)
			return u.reply(model.ChatOutcomeProductNotFound, ReplyProductNotFound, 0), nil
		}
		u.fail(model.ChatOutcomeStoreError, customerID, err)
		return nil, err
	}

	order, err := u.orders.Place(ctx, customerID, *product, intent.Quantity)
	if err != nil {
		u.fail(model.ChatOutcomeStoreError, customerID, err)
		return nil, err
	}

	u.logger.Info("order placed from chat",
		slog.Int64("order_id", order.ID),
		slog.String("customer_id", customerID),
		slog.Int64("product_id", product.ID),
		slog.Int("quantity", intent.Quantity),
	)
	return u.reply(model.ChatOutcomeOrderPlaced, ReplyOrderAccepted, order.ID), nil
}

func (u *ChatUseCase) converse(ctx context.Context, customerID, message string) (*model.ChatReply, error) {
	text, err := u.conversation.Reply(ctx, message)
	if err != nil {
		u.fail(model.ChatOutcomeGenerationError, customerID, err)
		return nil, err
	}
	return u.reply(model.ChatOutcomeConversation, text, 0), nil
}

func (u *ChatUseCase) reply(outcome model.ChatOutcome, text string, orderID int64) *model.ChatReply {
	u.record(outcome)
	return &model.ChatReply{Outcome: outcome, Text: text, OrderID: orderID}
}

func (u *ChatUseCase) fail(outcome model.ChatOutcome, customerID string, err error) {
	u.record(outcome)
	u.logger.Error("chat pipeline failed",
		slog.String("outcome", string(outcome)),
		slog.String("customer_id", customerID),
		slog.String("error", err.Error()),
	)
}

func (u *ChatUseCase) record(outcome model.ChatOutcome) {
	if u.outcomes != nil {
		u.outcomes.ChatOutcome(outcome)
	}
}
