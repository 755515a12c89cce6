package anthropic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageResponse_Text(t *testing.T) {
	resp := &MessageResponse{Content: []ContentBlock{
		{Type: "tool_use", Text: ""},
		{Type: "text", Text: "first"},
		{Type: "text", Text: "second"},
	}}
	assert.Equal(t, "first", resp.Text())
}

func TestMessageResponse_Text_NoTextBlock(t *testing.T) {
	resp := &MessageResponse{Content: []ContentBlock{{Type: "tool_use"}}}
	assert.Equal(t, "", resp.Text())

	empty := &MessageResponse{}
	assert.Equal(t, "", empty.Text())
}

func TestNewClient(t *testing.T) {
	c := NewClient("test-key")
	assert.NotNil(t, c)
}
