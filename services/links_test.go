package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHashtag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Golang", "golang"},
		{"Machine Learning", "machinelearning"},
		{"C++", "c"},
		{"snake_case", "snake_case"},
		{"  padded  ", "padded"},
		{"3d-printing", ""},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHashtag(tt.in), "tag %q", tt.in)
	}
}

func TestBuildPostURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://example.com/blog/abc", BuildPostURL("https://example.com", "abc"))
	assert.Equal(t, "https://example.com/blog/abc", BuildPostURL("https://example.com/", "abc"))
	assert.Empty(t, BuildPostURL("", "abc"))
	assert.Empty(t, BuildPostURL("https://example.com", ""))
}
