// Package whatsapp builds click-to-chat deep links.
package whatsapp

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	DefaultHost   = "wa.me"
	DefaultNumber = "254720363215"
)

var (
	ErrInvalidNumber = errors.New("whatsapp: number must be digits only")
	ErrInvalidHost   = errors.New("whatsapp: host required")
	// ErrUnencodable is returned for text that is not valid UTF-8.
	ErrUnencodable = errors.New("whatsapp: message is not valid UTF-8")
)

// Builder produces links of the form https://<host>/<number>?text=<encoded>.
type Builder struct {
	host   string
	number string
}

func New(host, number string) (*Builder, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, ErrInvalidHost
	}
	number = strings.TrimPrefix(strings.TrimSpace(number), "+")
	if number == "" {
		return nil, ErrInvalidNumber
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, number)
		}
	}
	return &Builder{host: host, number: number}, nil
}

func (b *Builder) Number() string {
	return b.number
}

// Link returns the deep link carrying message as the pre-filled text.
func (b *Builder) Link(message string) (string, error) {
	encoded, err := EncodeComponent(message)
	if err != nil {
		return "", err
	}
	return "https://" + b.host + "/" + b.number + "?text=" + encoded, nil
}

const upperHex = "0123456789ABCDEF"

// EncodeComponent percent-encodes every UTF-8 byte of s except the URI
// component unreserved set A-Z a-z 0-9 - _ . ! ~ * ' ( ). Spaces become %20.
func EncodeComponent(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", ErrUnencodable
	}
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String(), nil
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
