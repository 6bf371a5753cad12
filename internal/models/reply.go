package models

// ReplyEntry collects every inbound text from one sender in arrival order.
type ReplyEntry struct {
	From    string   `json:"from"`
	Name    string   `json:"name"`
	Replies []string `json:"replies"`
}
