package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	client "github.com/mamadbah2/fleetboard/pkg/clients/whatsapp"
)

// Notifier delivers a short text to the dispatch desk.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// WhatsAppNotifier sends notifications to a single WhatsApp recipient.
type WhatsAppNotifier struct {
	client    client.Client
	recipient string
	logger    *zap.Logger
}

// NewWhatsAppNotifier wires a notifier for the given recipient.
func NewWhatsAppNotifier(c client.Client, recipient string, logger *zap.Logger) *WhatsAppNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WhatsAppNotifier{client: c, recipient: recipient, logger: logger}
}

// Notify sends message and logs the WhatsApp message id.
func (n *WhatsAppNotifier) Notify(ctx context.Context, message string) error {
	resp, err := n.client.SendTextMessage(ctx, client.SendTextMessageRequest{To: n.recipient, Body: message})
	if err != nil {
		return fmt.Errorf("notify %s: %w", n.recipient, err)
	}
	if resp != nil && len(resp.Messages) > 0 {
		n.logger.Debug("notification sent", zap.String("to", n.recipient), zap.String("message_id", resp.Messages[0].ID))
	}
	return nil
}
