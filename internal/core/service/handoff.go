package service

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPhone = errors.New("invalid handoff phone number")

const waBaseURL = "https://wa.me/"

// WhatsApp builds deep links to one business number.
type WhatsApp struct {
	phone string
}

// NewWhatsApp accepts an international number with an optional leading
// plus sign and spaces, e.g. "+213 671 38 91 13".
func NewWhatsApp(phone string) (WhatsApp, error) {
	const op = "NewWhatsApp"

	digits := strings.TrimPrefix(strings.ReplaceAll(phone, " ", ""), "+")
	if len(digits) < 8 || len(digits) > 15 {
		return WhatsApp{}, fmt.Errorf("%s: %w: %q", op, ErrInvalidPhone, phone)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return WhatsApp{}, fmt.Errorf("%s: %w: %q", op, ErrInvalidPhone, phone)
		}
	}
	return WhatsApp{phone: digits}, nil
}

func (w WhatsApp) Phone() string {
	return w.phone
}

// URL returns https://wa.me/<digits>?text=<message>.
func (w WhatsApp) URL(message string) string {
	return waBaseURL + w.phone + "?text=" + EncodeURIComponent(message)
}

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s as UTF-8, leaving only
// A-Z a-z 0-9 - _ . ! ~ * ' ( ) unescaped.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
