package whatsapp

import "net/url"

// BuildLink returns a wa.me deep link that opens a chat with phone,
// pre-filled with message. Spaces are form-encoded as "+" and newlines
// survive the round trip. An empty phone still yields a link; pointing
// it at a real number is a configuration concern, not an error here.
func BuildLink(phone, message string) string {
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message)
}
