package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActiveContent(t *testing.T) {
	post := &Post{
		ContentType:     ContentTypeHTML,
		ContentHTML:     "<p>html body</p>",
		ContentMarkdown: "# markdown body",
	}
	assert.Equal(t, "<p>html body</p>", post.ActiveContent())

	post.ContentType = ContentTypeMarkdown
	assert.Equal(t, "# markdown body", post.ActiveContent())
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  int
	}{
		{"empty body still reads one minute", 0, 1},
		{"short body rounds up to one", 50, 1},
		{"two hundred words is one minute", 200, 1},
		{"four hundred words is two minutes", 400, 2},
		{"thousand words is five minutes", 1000, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := &Post{
				ContentType: ContentTypeMarkdown,
				ContentMarkdown: strings.TrimSpace(
					strings.Repeat("word ", tt.words),
				),
			}
			assert.Equal(t, tt.want, post.ReadingTime())
		})
	}
}
