package json

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/lgulich/dotfiles/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_ProgressIsSilent(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.TaskStarted(0, 1, types.InstallTask{Topic: "a"})
	r.TaskFinished(0, 1, types.RunResult{})
	assert.Empty(t, buf.String())
}

func TestRenderer_RenderTasks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).RenderTasks("/d", types.PlatformDarwin, nil))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "/d", decoded["root"])
	assert.Equal(t, "darwin", decoded["platform"])
	assert.Equal(t, []interface{}{}, decoded["tasks"])
}

func TestRenderer_RenderErrorAndMessage(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	require.NoError(t, r.RenderError(stderrors.New("boom")))
	require.NoError(t, r.RenderMessage("hi"))

	dec := json.NewDecoder(&buf)
	var first, second map[string]string
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, "boom", first["error"])
	assert.Equal(t, "UNKNOWN", first["code"])
	assert.Equal(t, "hi", second["message"])
}

func TestRenderer_RenderErrorWithDetails(t *testing.T) {
	var buf bytes.Buffer
	err := errors.New(errors.ErrDiscovery, "dotfiles root does not exist").
		WithDetail("path", "/nope")

	require.NoError(t, New(&buf).RenderError(err))

	var decoded struct {
		Error   string                 `json:"error"`
		Code    string                 `json:"code"`
		Details map[string]interface{} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "[DISCOVERY] dotfiles root does not exist", decoded.Error)
	assert.Equal(t, "DISCOVERY", decoded.Code)
	assert.Equal(t, "/nope", decoded.Details["path"])
}
