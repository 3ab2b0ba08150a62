package models

import "strings"

// Media is an inbound attachment: raw bytes plus the MIME type reported by
// the chat transport.
type Media struct {
	MimeType string `json:"mimetype"`
	Data     []byte `json:"data"`
}

func (m *Media) IsImage() bool {
	return m != nil && strings.HasPrefix(m.MimeType, "image/")
}

// InboundMessage is one message delivered by the chat transport.
type InboundMessage struct {
	From  string `json:"from"`
	Name  string `json:"name"`
	Body  string `json:"body"`
	Media *Media `json:"media,omitempty"`
}
