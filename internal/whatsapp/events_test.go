package whatsapp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/protobuf/proto"

	"github.com/popeskul/wa-broadcast/internal/models"
)

type recordingHandler struct {
	ready   int
	qr      []string
	inbound []models.InboundMessage
	acks    []models.Ack
}

func (h *recordingHandler) OnReady()                            { h.ready++ }
func (h *recordingHandler) OnQRChallenge(code string)           { h.qr = append(h.qr, code) }
func (h *recordingHandler) OnInbound(msg models.InboundMessage) { h.inbound = append(h.inbound, msg) }
func (h *recordingHandler) OnAck(ack models.Ack)                { h.acks = append(h.acks, ack) }

func newTestClient(h EventHandler) *Client {
	c := &Client{logger: zap.NewNop(), uploads: map[string]whatsmeow.UploadResponse{}}
	c.SetEventHandler(h)
	return c
}

func TestAckLevel(t *testing.T) {
	tests := []struct {
		name      string
		receipt   types.ReceiptType
		wantLevel models.AckLevel
		wantOK    bool
	}{
		{name: "delivered", receipt: types.ReceiptTypeDelivered, wantLevel: models.AckLevelDelivered, wantOK: true},
		{name: "read", receipt: types.ReceiptTypeRead, wantLevel: models.AckLevelRead, wantOK: true},
		{name: "played", receipt: types.ReceiptTypePlayed, wantLevel: models.AckLevelRead, wantOK: true},
		{name: "read self", receipt: types.ReceiptTypeReadSelf, wantOK: false},
		{name: "retry", receipt: types.ReceiptTypeRetry, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := ackLevel(tt.receipt)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantLevel, level)
			}
		})
	}
}

func TestMessageText(t *testing.T) {
	tests := []struct {
		name string
		msg  *waE2E.Message
		want string
	}{
		{name: "nil", msg: nil, want: ""},
		{name: "conversation", msg: &waE2E.Message{Conversation: proto.String("hi")}, want: "hi"},
		{
			name: "extended text",
			msg:  &waE2E.Message{ExtendedTextMessage: &waE2E.ExtendedTextMessage{Text: proto.String("see link")}},
			want: "see link",
		},
		{
			name: "image caption",
			msg:  &waE2E.Message{ImageMessage: &waE2E.ImageMessage{Caption: proto.String("look")}},
			want: "look",
		},
		{name: "no text", msg: &waE2E.Message{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messageText(tt.msg))
		})
	}
}

func TestDispatch(t *testing.T) {
	sender := types.NewJID("201001234567", types.DefaultUserServer)
	h := &recordingHandler{}
	c := newTestClient(h)

	c.dispatch(&events.Connected{})
	c.dispatch(&events.Message{
		Info:    types.MessageInfo{MessageSource: types.MessageSource{Sender: sender, Chat: sender}},
		Message: &waE2E.Message{Conversation: proto.String("interested")},
	})
	c.dispatch(&events.Message{
		Info:    types.MessageInfo{MessageSource: types.MessageSource{Sender: sender, Chat: sender, IsFromMe: true}},
		Message: &waE2E.Message{Conversation: proto.String("own message")},
	})
	c.dispatch(&events.Message{
		Info:    types.MessageInfo{MessageSource: types.MessageSource{Sender: sender, IsGroup: true}},
		Message: &waE2E.Message{Conversation: proto.String("group chatter")},
	})
	c.dispatch(&events.Receipt{
		MessageIDs: []types.MessageID{"A1", "A2"},
		Type:       types.ReceiptTypeRead,
	})
	c.dispatch(&events.Receipt{
		MessageIDs: []types.MessageID{"A3"},
		Type:       types.ReceiptTypeReadSelf,
	})

	assert.Equal(t, 1, h.ready)
	assert.Equal(t, []models.InboundMessage{{From: "201001234567@s.whatsapp.net", Body: "interested"}}, h.inbound)
	assert.Equal(t, []models.Ack{
		{MessageID: "A1", Level: models.AckLevelRead},
		{MessageID: "A2", Level: models.AckLevelRead},
	}, h.acks)
}

func TestDispatch_LIDSender(t *testing.T) {
	lid := types.NewJID("123456789012345", types.HiddenUserServer)
	phone := types.NewJID("201001234567", types.DefaultUserServer)
	h := &recordingHandler{}
	c := newTestClient(h)

	c.dispatch(&events.Message{
		Info:    types.MessageInfo{MessageSource: types.MessageSource{Sender: lid, Chat: lid, SenderAlt: phone}},
		Message: &waE2E.Message{Conversation: proto.String("interested")},
	})
	c.dispatch(&events.Message{
		Info:    types.MessageInfo{MessageSource: types.MessageSource{Sender: lid, Chat: lid}},
		Message: &waE2E.Message{Conversation: proto.String("no alt")},
	})

	assert.Equal(t, []models.InboundMessage{
		{From: "201001234567@s.whatsapp.net", Body: "interested"},
		{From: "123456789012345@lid", Body: "no alt"},
	}, h.inbound)
}

func TestDispatch_NoHandler(t *testing.T) {
	c := &Client{logger: zap.NewNop()}
	assert.NotPanics(t, func() {
		c.dispatch(&events.Connected{})
	})
}

func TestMediaMessage(t *testing.T) {
	up := whatsmeow.UploadResponse{
		URL:           "https://mmg.example/u",
		DirectPath:    "/v/t62/abc",
		MediaKey:      []byte{1},
		FileEncSHA256: []byte{2},
		FileSHA256:    []byte{3},
		FileLength:    42,
	}

	image := mediaMessage(&models.Media{MimeType: "image/jpeg"}, up, "Hello Mona")
	require.NotNil(t, image.GetImageMessage())
	assert.Equal(t, "Hello Mona", image.GetImageMessage().GetCaption())
	assert.Equal(t, uint64(42), image.GetImageMessage().GetFileLength())
	assert.Equal(t, "/v/t62/abc", image.GetImageMessage().GetDirectPath())

	video := mediaMessage(&models.Media{MimeType: "video/mp4"}, up, "Hello Mona")
	require.NotNil(t, video.GetVideoMessage())
	assert.Equal(t, "video/mp4", video.GetVideoMessage().GetMimetype())

	doc := mediaMessage(&models.Media{MimeType: "application/pdf", FileName: "offer.pdf"}, up, "Hello Mona")
	require.NotNil(t, doc.GetDocumentMessage())
	assert.Equal(t, "offer.pdf", doc.GetDocumentMessage().GetFileName())
}

func TestUploadType(t *testing.T) {
	assert.Equal(t, whatsmeow.MediaImage, uploadType(models.MediaKindImage))
	assert.Equal(t, whatsmeow.MediaVideo, uploadType(models.MediaKindVideo))
	assert.Equal(t, whatsmeow.MediaDocument, uploadType(models.MediaKindDocument))
}

func TestNewLogger_Level(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewLogger(zap.New(core), "WARN")

	l.Infof("dropped %d", 1)
	l.Warnf("kept %d", 2)
	l.Sub("socket").Errorf("kept %s", "too")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "kept 2", entries[0].Message)
	assert.Equal(t, "socket", entries[1].LoggerName)
}

func TestQRPrinter(t *testing.T) {
	var buf bytes.Buffer
	QRPrinter(&buf)("2@pairing-code")
	assert.NotEmpty(t, buf.String())
}
