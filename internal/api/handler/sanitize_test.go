package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	assert.Equal(t, "Acme &amp; Sons", clean("  Acme & Sons  "))
	assert.Equal(t, "&lt;script&gt;alert(&quot;x&quot;)&lt;&#x2F;script&gt;", clean(`<script>alert("x")</script>`))
	assert.Equal(t, "it&#x27;s &#96;a&#96; &#x5C;path", clean("it's `a` \\path"))
	assert.Empty(t, clean(" \t\n "))
}

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"  Jane.Doe@Example.COM ":   "jane.doe@example.com",
		"John.Smith+work@gmail.com": "johnsmith@gmail.com",
		"a.b@GoogleMail.com":        "ab@gmail.com",
		"A.B+x@outlook.com":         "a.b@outlook.com",
		"sam+news@Hotmail.co.uk":    "sam@hotmail.co.uk",
		"kim+work@live.com":         "kim@live.com",
		"lee+1@icloud.com":          "lee@icloud.com",
		"pat+1@me.com":              "pat@me.com",
		"jo-ann-promo@yahoo.com":    "jo-ann@yahoo.com",
		"jo+x@yahoo.com":            "jo+x@yahoo.com",
		"max+tag@example.com":       "max+tag@example.com",
		"not-an-email":              "not-an-email",
		"two@at@signs.com":          "two@at@signs.com",
		"@missing-local.com":        "@missing-local.com",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeEmail(in), in)
	}
}
