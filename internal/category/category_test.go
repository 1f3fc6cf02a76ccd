package category

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/clip-keeper/models"
)

func TestClassify_Type(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want models.ContentType
	}{
		{name: "https url", in: "https://example.com/path?q=1", want: models.TypeURL},
		{name: "http url upper scheme", in: "HTTP://EXAMPLE.COM", want: models.TypeURL},
		{name: "url with surrounding space", in: "  https://example.com  ", want: models.TypeURL},
		{name: "url with inner space is text", in: "https://example.com and more", want: models.TypeText},
		{name: "email", in: "user@example.com", want: models.TypeEmail},
		{name: "email without tld is text", in: "user@example", want: models.TypeText},
		{name: "html", in: "<div class=\"x\">hi</div>", want: models.TypeCode},
		{name: "json object", in: "{\n  \"a\": 1\n}", want: models.TypeCode},
		{name: "js function", in: "function foo() { return 1 }", want: models.TypeCode},
		{name: "python def", in: "def foo():\n    pass", want: models.TypeCode},
		{name: "class", in: "class Foo:", want: models.TypeCode},
		{name: "include", in: "#include <stdio.h>", want: models.TypeCode},
		{name: "import", in: "import os", want: models.TypeCode},
		{name: "sql lower case", in: "select id from users", want: models.TypeCode},
		{name: "shell variable", in: "$HOME/bin", want: models.TypeCode},
		{name: "git command", in: "git status", want: models.TypeCode},
		{name: "phone", in: "+1 (555) 123-4567", want: models.TypePhone},
		{name: "short digits are text", in: "555-1234", want: models.TypeText},
		{name: "plain text", in: "hello world", want: models.TypeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, tags, err := Classify(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.NotEmpty(t, tags)
			assert.Equal(t, string(tt.want), tags[0])
		})
	}
}

func TestClassify_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		_, _, err := Classify(in)
		assert.ErrorIs(t, err, ErrEmptyContent)
	}
}

func TestClassify_Tags(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []string
		without []string
	}{
		{
			name:    "short sensitive",
			in:      "my password is hunter2",
			want:    []string{"text", TagShort, TagSensitive},
			without: []string{TagLong, TagDate},
		},
		{
			name: "long",
			in:   strings.Repeat("a", 501),
			want: []string{"text", TagLong},
		},
		{
			name:    "exactly 500 is neither",
			in:      strings.Repeat("b", 500),
			want:    []string{"text"},
			without: []string{TagLong, TagShort},
		},
		{
			name: "date with dashes",
			in:   "meeting on 2024-01-15",
			want: []string{"text", TagShort, TagDate},
		},
		{
			name: "date with slashes and token",
			in:   "token issued 2024/01/15",
			want: []string{"text", TagShort, TagSensitive, TagDate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, tags, err := Classify(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tags)
			for _, tag := range tt.without {
				assert.NotContains(t, tags, tag)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", Preview("short"))

	exact := strings.Repeat("x", PreviewLength)
	assert.Equal(t, exact, Preview(exact))

	long := strings.Repeat("y", PreviewLength+1)
	assert.Equal(t, strings.Repeat("y", PreviewLength)+"...", Preview(long))

	// multi-byte characters are counted as characters, not bytes
	runes := strings.Repeat("ж", PreviewLength+5)
	got := Preview(runes)
	assert.Equal(t, strings.Repeat("ж", PreviewLength)+"...", got)
}

func TestAnalyze(t *testing.T) {
	res, err := Analyze("   https://go.dev   ")
	require.NoError(t, err)
	assert.Equal(t, models.TypeURL, res.Type)
	assert.Equal(t, "https://go.dev", res.Preview)
	assert.Contains(t, res.Tags, TagShort)

	_, err = Analyze(" ")
	assert.ErrorIs(t, err, ErrEmptyContent)
}
