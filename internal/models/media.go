package models

import "strings"

// MediaKind classifies an attachment for upload.
type MediaKind string

const (
	MediaKindImage    MediaKind = "image"
	MediaKindVideo    MediaKind = "video"
	MediaKindDocument MediaKind = "document"
)

// Media is an attachment loaded from disk.
type Media struct {
	Path     string
	FileName string
	MimeType string
	Data     []byte
}

// Kind derives the attachment kind from its MIME type.
func (m *Media) Kind() MediaKind {
	switch {
	case strings.HasPrefix(m.MimeType, "image/"):
		return MediaKindImage
	case strings.HasPrefix(m.MimeType, "video/"):
		return MediaKindVideo
	default:
		return MediaKindDocument
	}
}
