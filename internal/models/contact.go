// Package models defines data structures used throughout the application.
package models

// AccountServer is the messaging-platform server suffix of a personal account id.
const AccountServer = "s.whatsapp.net"

// Contact is a campaign recipient loaded from the contact list.
type Contact struct {
	Phone string `json:"phone" mapstructure:"phone"`
	Name  string `json:"name" mapstructure:"name"`
}

// AccountKey returns the sender identifier the platform uses for this contact.
func (c Contact) AccountKey() string {
	return AccountKey(c.Phone)
}

// AccountKey builds a sender identifier from a phone number.
func AccountKey(phone string) string {
	return phone + "@" + AccountServer
}
