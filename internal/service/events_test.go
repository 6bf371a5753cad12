package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/popeskul/wa-broadcast/internal/models"
	"github.com/popeskul/wa-broadcast/internal/scheduler"
	"github.com/popeskul/wa-broadcast/internal/service"
	"github.com/popeskul/wa-broadcast/internal/service/mocks"
)

func TestEventRouter_OnReady(t *testing.T) {
	tests := []struct {
		name      string
		startErr  error
		wantError bool
	}{
		{name: "first ready starts campaign"},
		{name: "already running", startErr: scheduler.ErrSchedulerAlreadyRunning},
		{name: "already completed", startErr: scheduler.ErrSchedulerCompleted},
		{name: "unexpected error", startErr: errors.New("boom"), wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sched := mocks.NewMockSchedulerService(ctrl)
			sched.EXPECT().Start().Return(tt.startErr)

			core, logs := observer.New(zapcore.DebugLevel)
			router := service.NewEventRouter(mocks.NewMockCampaignService(ctrl), sched, nil, zap.New(core))

			router.OnReady()

			assert.Equal(t, tt.wantError, logs.FilterLevelExact(zapcore.ErrorLevel).Len() > 0)
		})
	}
}

func TestEventRouter_OnQRChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)

	var printed []string
	router := service.NewEventRouter(mocks.NewMockCampaignService(ctrl), mocks.NewMockSchedulerService(ctrl),
		func(code string) { printed = append(printed, code) }, zap.NewNop())

	router.OnQRChallenge("2@abc")
	assert.Equal(t, []string{"2@abc"}, printed)
}

func TestEventRouter_ForwardsToCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	campaign := mocks.NewMockCampaignService(ctrl)

	msg := models.InboundMessage{From: "201001234567@s.whatsapp.net", Body: "hi"}
	ack := models.Ack{MessageID: "MSG1", Level: models.AckLevelRead}

	campaign.EXPECT().HandleInbound(msg).Return(nil)
	campaign.EXPECT().HandleAck(ack).Return(errors.New("disk full"))

	core, logs := observer.New(zapcore.InfoLevel)
	router := service.NewEventRouter(campaign, mocks.NewMockSchedulerService(ctrl), nil, zap.New(core))

	router.OnInbound(msg)
	router.OnAck(ack)

	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "Failed to handle acknowledgment", errs[0].Message)
	}
}
