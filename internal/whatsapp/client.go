// Package whatsapp adapts the whatsmeow client to the campaign's messenger
// capabilities: account resolution, media sends and an event stream.
package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	// Session store drivers; the dialect in config picks one.
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/popeskul/wa-broadcast/internal/config"
	"github.com/popeskul/wa-broadcast/internal/models"
)

var ErrNotPaired = errors.New("messaging session is not paired")

type Client struct {
	client  *whatsmeow.Client
	logger  *zap.Logger
	handler EventHandler
	uploads map[string]whatsmeow.UploadResponse
	mu      sync.RWMutex
}

// NewClient opens the session store and prepares a client for the first
// stored device, or a fresh device that must be paired by QR code.
func NewClient(ctx context.Context, cfg config.WhatsAppConfig, logger *zap.Logger) (*Client, error) {
	container, err := sqlstore.New(ctx, cfg.SessionDialect, cfg.SessionDSN, NewLogger(logger.Named("session-store"), cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load device: %w", err)
	}

	c := &Client{
		client:  whatsmeow.NewClient(device, NewLogger(logger.Named("whatsmeow"), cfg.LogLevel)),
		logger:  logger,
		uploads: make(map[string]whatsmeow.UploadResponse),
	}
	c.client.AddEventHandler(c.dispatch)

	return c, nil
}

// SetEventHandler registers the receiver of translated events.
func (c *Client) SetEventHandler(h EventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handler = h
}

// Connect opens the connection. An unpaired device emits QR challenges until
// the pairing succeeds or ctx is canceled.
func (c *Client) Connect(ctx context.Context) error {
	if c.client.Store.ID != nil {
		if err := c.client.Connect(); err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
		return nil
	}

	qrChan, err := c.client.GetQRChannel(ctx)
	if err != nil {
		return fmt.Errorf("failed to get QR channel: %w", err)
	}
	if err := c.client.Connect(); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	go c.consumeQR(qrChan)
	return nil
}

func (c *Client) consumeQR(qrChan <-chan whatsmeow.QRChannelItem) {
	for item := range qrChan {
		if item.Event == "code" {
			c.mu.RLock()
			handler := c.handler
			c.mu.RUnlock()
			if handler != nil {
				handler.OnQRChallenge(item.Code)
			}
			continue
		}
		c.logger.Info("Pairing event", zap.String("event", item.Event))
	}
}

func (c *Client) Disconnect() {
	c.client.Disconnect()
}

func (c *Client) IsConnected() bool {
	return c.client.IsConnected() && c.client.IsLoggedIn()
}

// ResolveAccount reports the platform account id registered for phone.
func (c *Client) ResolveAccount(ctx context.Context, phone string) (string, bool, error) {
	if c.client.Store.ID == nil {
		return "", false, ErrNotPaired
	}

	resp, err := c.client.IsOnWhatsApp(ctx, []string{"+" + phone})
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve account: %w", err)
	}

	for _, r := range resp {
		if r.IsIn {
			return r.JID.String(), true, nil
		}
	}

	return "", false, nil
}

// SendMedia sends caption to accountID, attaching media when it is not nil.
// Uploaded media is reused for later recipients.
func (c *Client) SendMedia(ctx context.Context, accountID string, media *models.Media, caption string) (string, error) {
	jid, err := types.ParseJID(accountID)
	if err != nil {
		return "", fmt.Errorf("failed to parse account id: %w", err)
	}

	msg := &waE2E.Message{Conversation: proto.String(caption)}
	if media != nil {
		upload, err := c.upload(ctx, media)
		if err != nil {
			return "", err
		}
		msg = mediaMessage(media, upload, caption)
	}

	resp, err := c.client.SendMessage(ctx, jid, msg)
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}

	return string(resp.ID), nil
}

func (c *Client) upload(ctx context.Context, media *models.Media) (whatsmeow.UploadResponse, error) {
	c.mu.RLock()
	cached, ok := c.uploads[media.Path]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	resp, err := c.client.Upload(ctx, media.Data, uploadType(media.Kind()))
	if err != nil {
		return whatsmeow.UploadResponse{}, fmt.Errorf("failed to upload media: %w", err)
	}

	c.mu.Lock()
	c.uploads[media.Path] = resp
	c.mu.Unlock()

	return resp, nil
}

func uploadType(kind models.MediaKind) whatsmeow.MediaType {
	switch kind {
	case models.MediaKindImage:
		return whatsmeow.MediaImage
	case models.MediaKindVideo:
		return whatsmeow.MediaVideo
	default:
		return whatsmeow.MediaDocument
	}
}

func mediaMessage(media *models.Media, up whatsmeow.UploadResponse, caption string) *waE2E.Message {
	switch media.Kind() {
	case models.MediaKindImage:
		return &waE2E.Message{ImageMessage: &waE2E.ImageMessage{
			Caption:       proto.String(caption),
			Mimetype:      proto.String(media.MimeType),
			URL:           proto.String(up.URL),
			DirectPath:    proto.String(up.DirectPath),
			MediaKey:      up.MediaKey,
			FileEncSHA256: up.FileEncSHA256,
			FileSHA256:    up.FileSHA256,
			FileLength:    proto.Uint64(up.FileLength),
		}}
	case models.MediaKindVideo:
		return &waE2E.Message{VideoMessage: &waE2E.VideoMessage{
			Caption:       proto.String(caption),
			Mimetype:      proto.String(media.MimeType),
			URL:           proto.String(up.URL),
			DirectPath:    proto.String(up.DirectPath),
			MediaKey:      up.MediaKey,
			FileEncSHA256: up.FileEncSHA256,
			FileSHA256:    up.FileSHA256,
			FileLength:    proto.Uint64(up.FileLength),
		}}
	default:
		return &waE2E.Message{DocumentMessage: &waE2E.DocumentMessage{
			Caption:       proto.String(caption),
			FileName:      proto.String(media.FileName),
			Mimetype:      proto.String(media.MimeType),
			URL:           proto.String(up.URL),
			DirectPath:    proto.String(up.DirectPath),
			MediaKey:      up.MediaKey,
			FileEncSHA256: up.FileEncSHA256,
			FileSHA256:    up.FileSHA256,
			FileLength:    proto.Uint64(up.FileLength),
		}}
	}
}
