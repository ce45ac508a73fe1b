package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	domainErrors "github.com/recerqa/recerqa-ai/internal/domain/errors"
	"github.com/recerqa/recerqa-ai/internal/domain/model"
)

const (
	maxMessageLength    = 2000
	maxCustomerIDLength = 128
)

// ValidateCustomerID checks the opaque customer identifier supplied by the auth provider.
func ValidateCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return fmt.Errorf("%w: customer id is required", domainErrors.ErrInvalidRequest)
	}
	if len(customerID) > maxCustomerIDLength {
		return fmt.Errorf("%w: customer id is too long", domainErrors.ErrInvalidRequest)
	}
	return nil
}

// ValidateMessage checks a chat message or voice transcript.
func ValidateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: message is required", domainErrors.ErrInvalidRequest)
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return fmt.Errorf("%w: message is too long", domainErrors.ErrInvalidRequest)
	}
	return nil
}

// ValidateNegotiation checks the terms of a negotiation draft.
func ValidateNegotiation(req model.NegotiationRequest) error {
	switch {
	case strings.TrimSpace(req.ProductName) == "":
		return fmt.Errorf("%w: product name is required", domainErrors.ErrInvalidRequest)
	case req.Quantity <= 0:
		return fmt.Errorf("%w: quantity must be positive", domainErrors.ErrInvalidRequest)
	case req.TargetPrice <= 0:
		return fmt.Errorf("%w: target price must be positive", domainErrors.ErrInvalidRequest)
	case req.CurrentPrice < 0:
		return fmt.Errorf("%w: current price must not be negative", domainErrors.ErrInvalidRequest)
	}
	return nil
}
