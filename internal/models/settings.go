package models

import "time"

// Settings controls pacing and content of a campaign run.
type Settings struct {
	CampaignEnabled      bool   `json:"campaignEnabled" mapstructure:"campaignEnabled"`
	MessagesPerHour      uint   `json:"messagesPerHour" mapstructure:"messagesPerHour"`
	DelayBetweenMessages uint   `json:"delayBetweenMessages" mapstructure:"delayBetweenMessages"`
	DelayBetweenHours    uint   `json:"delayBetweenHours" mapstructure:"delayBetweenHours"`
	MediaPath            string `json:"mediaPath" mapstructure:"mediaPath"`
}

// MessageDelay is the pause after every attempted send.
func (s Settings) MessageDelay() time.Duration {
	return time.Duration(s.DelayBetweenMessages) * time.Second
}

// WindowDelay is the pause once an hour window is exhausted.
func (s Settings) WindowDelay() time.Duration {
	return time.Duration(s.DelayBetweenHours) * time.Minute
}
