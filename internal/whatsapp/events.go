package whatsapp

import (
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"go.uber.org/zap"

	"github.com/popeskul/wa-broadcast/internal/models"
)

// EventHandler receives platform events translated to domain types.
type EventHandler interface {
	OnReady()
	OnQRChallenge(code string)
	OnInbound(msg models.InboundMessage)
	OnAck(ack models.Ack)
}

func (c *Client) dispatch(evt interface{}) {
	c.mu.RLock()
	handler := c.handler
	c.mu.RUnlock()

	if handler == nil {
		return
	}

	switch v := evt.(type) {
	case *events.Connected:
		handler.OnReady()

	case *events.Message:
		if v.Info.IsFromMe || v.Info.IsGroup {
			return
		}
		body := messageText(v.Message)
		if body == "" {
			return
		}
		handler.OnInbound(models.InboundMessage{
			From: senderKey(v.Info.MessageSource),
			Body: body,
		})

	case *events.Receipt:
		level, ok := ackLevel(v.Type)
		if !ok {
			return
		}
		for _, id := range v.MessageIDs {
			handler.OnAck(models.Ack{MessageID: string(id), Level: level})
		}

	case *events.LoggedOut:
		c.logger.Warn("Messaging session logged out", zap.Any("reason", v.Reason))

	case *events.Disconnected:
		c.logger.Warn("Messaging client disconnected")
	}
}

// ackLevel maps receipt types onto acknowledgment levels. Receipts the
// account sends itself are not acknowledgments of our messages.
func ackLevel(t types.ReceiptType) (models.AckLevel, bool) {
	switch t {
	case types.ReceiptTypeDelivered:
		return models.AckLevelDelivered, true
	case types.ReceiptTypeRead, types.ReceiptTypePlayed:
		return models.AckLevelRead, true
	default:
		return 0, false
	}
}

func messageText(msg *waE2E.Message) string {
	if msg == nil {
		return ""
	}
	if text := msg.GetConversation(); text != "" {
		return text
	}
	if text := msg.GetExtendedTextMessage().GetText(); text != "" {
		return text
	}
	if text := msg.GetImageMessage().GetCaption(); text != "" {
		return text
	}
	return msg.GetVideoMessage().GetCaption()
}

// senderKey returns the phone-number JID of a message sender. Chats in LID
// addressing mode carry the phone JID in SenderAlt.
func senderKey(src types.MessageSource) string {
	if src.Sender.Server == types.HiddenUserServer && !src.SenderAlt.IsEmpty() {
		return src.SenderAlt.ToNonAD().String()
	}
	return src.Sender.ToNonAD().String()
}
