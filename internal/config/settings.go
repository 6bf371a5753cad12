package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/popeskul/wa-broadcast/internal/models"
)

// DefaultCaptionTemplate is the marketing caption; {name} is the contact name.
const DefaultCaptionTemplate = "Hello {name}, check out our new marketing offers!"

var (
	ErrInvalidConfig   = errors.New("invalid config")
	ErrInvalidSettings = errors.New("invalid settings")
	ErrInvalidContacts = errors.New("invalid contacts")
)

var requiredSettings = []string{
	"campaignEnabled",
	"messagesPerHour",
	"delayBetweenMessages",
	"delayBetweenHours",
}

// LoadSettings reads and validates the campaign settings JSON file.
// It is read once; later edits to the file do not affect a running campaign.
func LoadSettings(path string) (*models.Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	for _, key := range requiredSettings {
		if !v.IsSet(key) {
			return nil, fmt.Errorf("%w: %s is required", ErrInvalidSettings, key)
		}
	}

	// Negative numbers fail here instead of wrapping around to huge uints.
	for _, key := range requiredSettings[1:] {
		if v.GetInt64(key) < 0 {
			return nil, fmt.Errorf("%w: %s must not be negative", ErrInvalidSettings, key)
		}
	}

	var settings models.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	if err := ValidateSettings(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// ValidateSettings rejects pacing values that would make the campaign misbehave.
func ValidateSettings(s *models.Settings) error {
	if s.MessagesPerHour == 0 {
		return fmt.Errorf("%w: messagesPerHour must be greater than zero", ErrInvalidSettings)
	}

	s.MediaPath = strings.TrimSpace(s.MediaPath)
	if s.MediaPath == "" {
		return nil
	}

	info, err := os.Stat(s.MediaPath)
	if err != nil {
		return fmt.Errorf("%w: mediaPath: %v", ErrInvalidSettings, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: mediaPath %s is a directory", ErrInvalidSettings, s.MediaPath)
	}

	return nil
}

// LoadContacts reads and validates the contact list JSON array.
func LoadContacts(path string) ([]models.Contact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contacts file: %w", err)
	}

	var contacts []models.Contact
	if err := json.Unmarshal(data, &contacts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContacts, err)
	}

	if err := ValidateContacts(contacts); err != nil {
		return nil, err
	}

	return contacts, nil
}

// ValidateContacts normalizes phone numbers and rejects unusable entries.
func ValidateContacts(contacts []models.Contact) error {
	seen := make(map[string]int, len(contacts))

	for i := range contacts {
		c := &contacts[i]
		c.Phone = normalizePhone(c.Phone)
		c.Name = strings.TrimSpace(c.Name)

		if c.Phone == "" {
			return fmt.Errorf("%w: contact %d has no phone", ErrInvalidContacts, i)
		}
		if !isDigits(c.Phone) {
			return fmt.Errorf("%w: contact %d phone %q must contain digits only", ErrInvalidContacts, i, c.Phone)
		}
		if c.Name == "" {
			return fmt.Errorf("%w: contact %d has no name", ErrInvalidContacts, i)
		}
		if prev, ok := seen[c.Phone]; ok {
			return fmt.Errorf("%w: contact %d duplicates phone of contact %d", ErrInvalidContacts, i, prev)
		}
		seen[c.Phone] = i
	}

	return nil
}

// normalizePhone strips a leading plus and common separators.
func normalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "+")
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
