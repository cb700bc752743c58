package whatsapp

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := New(DefaultHost, DefaultNumber)
	require.NoError(t, err)
	return b
}

func TestNewValidatesNumber(t *testing.T) {
	b, err := New("wa.me", "+254 ")
	require.NoError(t, err)
	assert.Equal(t, "254", b.Number())

	for _, bad := range []string{"", "+", "2547-20", "tel:254"} {
		_, err := New("wa.me", bad)
		assert.True(t, errors.Is(err, ErrInvalidNumber), "number %q", bad)
	}
	_, err = New(" ", "254")
	assert.ErrorIs(t, err, ErrInvalidHost)
}

func TestLinkShape(t *testing.T) {
	link, err := defaultBuilder(t).Link("Hello, I would like to inquire about laptops.")
	require.NoError(t, err)
	assert.Equal(t,
		"https://wa.me/254720363215?text=Hello%2C%20I%20would%20like%20to%20inquire%20about%20laptops.",
		link)
}

func TestEncodeComponent(t *testing.T) {
	cases := map[string]string{
		"":           "",
		"a b":        "a%20b",
		"x\ny":       "x%0Ay",
		"a+b&c=d?#/": "a%2Bb%26c%3Dd%3F%23%2F",
		"•":          "%E2%80%A2",
		"—":          "%E2%80%94",
		"100%":       "100%25",
	}
	unreserved := "abcXYZ09-_.!~*'()"
	cases[unreserved] = unreserved

	for in, want := range cases {
		got, err := EncodeComponent(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "EncodeComponent(%q)", in)
	}
}

func TestEncodeComponentRejectsInvalidUTF8(t *testing.T) {
	_, err := EncodeComponent("bad \xff byte")
	assert.ErrorIs(t, err, ErrUnencodable)

	_, err = defaultBuilder(t).Link("\xc3")
	assert.ErrorIs(t, err, ErrUnencodable)
}

func TestLinkRoundTripsMessage(t *testing.T) {
	b := defaultBuilder(t)
	messages := []string{
		"Hello, I'm Wanjiru. I'd like to order the following laptops:\n• HP Victus 15 x2 — KES 124,999\nSubtotal: KES 249,998\nPlease confirm availability and delivery options.",
		"plus+sign & ampersand = equals; 50% off?",
		"emoji 💻 and tabs\tand \"quotes\"",
		"   ",
	}
	for _, msg := range messages {
		link, err := b.Link(msg)
		require.NoError(t, err)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "https", u.Scheme)
		assert.Equal(t, "wa.me", u.Host)
		assert.Equal(t, "/254720363215", u.Path)
		assert.Equal(t, msg, u.Query().Get("text"))

		again, err := b.Link(msg)
		require.NoError(t, err)
		assert.Equal(t, link, again)
	}
}

func TestDistinctMessagesGiveDistinctLinks(t *testing.T) {
	b := defaultBuilder(t)
	seen := map[string]string{}
	for _, msg := range []string{"a b", "a+b", "a%20b", "a\nb", "a\tb", "ab"} {
		link, err := b.Link(msg)
		require.NoError(t, err)
		prev, dup := seen[link]
		assert.False(t, dup, "%q and %q share a link", prev, msg)
		seen[link] = msg
	}
}
