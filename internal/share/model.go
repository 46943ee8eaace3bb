package share

import "errors"

// Channel identifies a messaging app a summary can be sent to
type Channel string

const (
	ChannelWhatsApp Channel = "WHATSAPP"
	ChannelTelegram Channel = "TELEGRAM"
)

// Common errors
var (
	ErrUnknownChannel = errors.New("unknown share channel")
)

// Sheet is the rendered view of one calculation
type Sheet struct {
	Title          string
	Lines          []Line
	OriginalTotal  float64 // sum of original amounts
	ReferenceTotal float64 // total the shares were scaled against
	Total          int64   // sum of allocated shares
}

// Line pairs a participant label with their original and allocated amounts
type Line struct {
	Name      string
	Original  float64
	Allocated int64
}

// Links holds deep links for every supported channel
type Links struct {
	WhatsApp string `json:"whatsapp"`
	Telegram string `json:"telegram"`
}
