package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"Иван Петров", "Иван Петров"},
		{"&", "&amp;"},
		{"<script>alert('x')</script>", "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;"},
		{`"quoted"`, "&quot;quoted&quot;"},
		{"a & b < c > d", "a &amp; b &lt; c &gt; d"},
		{"+7 988 600 56 61", "+7 988 600 56 61"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, EscapeHTML(tc.in), "вход %q", tc.in)
	}
}

func TestEscapeHTML_SinglePass(t *testing.T) {
	// Уже экранированный текст экранируется ровно один раз.
	assert.Equal(t, "&amp;lt;", EscapeHTML("&lt;"))
	assert.Equal(t, "&amp;amp;lt;", EscapeHTML(EscapeHTML("&lt;")))
}

func TestSanitizeTerminal(t *testing.T) {
	assert.Equal(t, "red text", SanitizeTerminal("\x1b[31mred\x1b[0m text"))
	assert.Equal(t, "line one line two", SanitizeTerminal("line one\nline two"))
	assert.Equal(t, "bell", SanitizeTerminal("be\x07ll"))
	assert.Equal(t, "<b>&</b>", SanitizeTerminal("<b>&</b>"))
}
