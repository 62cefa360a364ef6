package json

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/chatroast/core"
)

func TestRender(t *testing.T) {
	rep := core.NewStatsReport()
	rep.BySender["Alice"] = 2
	rep.Summary.TotalMessages = 2
	rep.Summary.MostActiveSender = "Alice"

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, rep))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	senders, ok := decoded["message_count_by_sender"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), senders["Alice"])

	summary, ok := decoded["summary_metrics"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alice", summary["most_active_sender"])
}
