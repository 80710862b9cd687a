package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enetx/store/internal/todos"
)

func TestReplay_PrintsEveryState(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, replay(&out, todos.DefaultScenario(), false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, `The new state is: {"todos":[{"id":0,"name":"Walk the dog","complete":false}],"goals":[]}`, lines[0])
	assert.Equal(t,
		`The new state is: {"todos":[{"id":0,"name":"Walk the dog","complete":true},{"id":2,"name":"Go to the gym","complete":true}],"goals":[{"id":1,"name":"Lose 20 pounds"}]}`,
		lines[7])
}

func TestReplay_Final(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, replay(&out, todos.DefaultScenario(), true))

	var state todos.State
	require.NoError(t, json.Unmarshal(out.Bytes(), &state))
	assert.Len(t, state.Todos, 2)
	assert.Len(t, state.Goals, 1)
}

func TestLoadActions(t *testing.T) {
	actions, err := loadActions("")
	require.NoError(t, err)
	assert.Equal(t, todos.DefaultScenario(), actions)

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("actions:\n  - type: ADD_GOAL\n    goal: {id: 3, name: Read more}\n"), 0o644))

	actions, err = loadActions(path)
	require.NoError(t, err)
	assert.Equal(t, todos.AddGoalAction(todos.Goal{ID: 3, Name: "Read more"}), actions[0])

	_, err = loadActions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
