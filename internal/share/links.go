package share

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	whatsAppBase = "https://wa.me/"
	telegramBase = "https://t.me/share/url"
)

// Link builds a deep link that opens the given channel with text prefilled
func Link(channel Channel, text string) (string, error) {
	switch Channel(strings.ToUpper(string(channel))) {
	case ChannelWhatsApp:
		return WhatsAppURL(text), nil
	case ChannelTelegram:
		return TelegramURL(text), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownChannel, channel)
	}
}

// WhatsAppURL returns a wa.me link without a recipient so the user picks the chat
func WhatsAppURL(text string) string {
	q := url.Values{}
	q.Set("text", text)
	return whatsAppBase + "?" + q.Encode()
}

// TelegramURL returns a Telegram share link carrying the message as text.
// The endpoint expects a url parameter, which is sent empty.
func TelegramURL(text string) string {
	q := url.Values{}
	q.Set("url", "")
	q.Set("text", text)
	return telegramBase + "?" + q.Encode()
}

// AllLinks returns links for every supported channel
func AllLinks(text string) Links {
	return Links{
		WhatsApp: WhatsAppURL(text),
		Telegram: TelegramURL(text),
	}
}
