package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/relaunch-ai/relaunch-cli/internal/model"
)

func TestFormatRunsList(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	runs := []model.Run{
		{
			ID:        "run-1",
			NameKey:   "vela",
			Startup:   model.Startup{Name: "Vela"},
			Status:    model.RunStatusComplete,
			Result:    &model.Document{DataConfidence: "medium"},
			CreatedAt: created,
			UpdatedAt: created.Add(3 * time.Second),
		},
		{
			ID:        "run-2",
			NameKey:   "quill",
			Startup:   model.Startup{Name: "Quill"},
			Status:    model.RunStatusFailed,
			CreatedAt: created,
			UpdatedAt: created,
		},
	}

	var sb strings.Builder
	formatRunsList(&sb, runs)
	out := sb.String()

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "Vela")
	assert.Contains(t, out, "complete")
	assert.Contains(t, out, "medium")
	assert.Contains(t, out, "3s")
	assert.Contains(t, out, "run-2")
	assert.Contains(t, out, "failed")
}
