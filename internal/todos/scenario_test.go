package todos_test

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enetx/store/internal/todos"
)

func TestLoadScenario_File(t *testing.T) {
	f, err := os.Open("testdata/scenario.yaml")
	require.NoError(t, err)
	defer f.Close()

	actions, err := todos.LoadScenario(f)
	require.NoError(t, err)

	assert.Equal(t, todos.DefaultScenario(), actions)
}

func TestLoadScenario_Replay(t *testing.T) {
	f, err := os.Open("testdata/scenario.yaml")
	require.NoError(t, err)
	defer f.Close()

	actions, err := todos.LoadScenario(f)
	require.NoError(t, err)

	s := todos.New()
	for action := range actions.Iter() {
		s.Dispatch(action)
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"todos": [
			{"id": 0, "name": "Walk the dog", "complete": true},
			{"id": 2, "name": "Go to the gym", "complete": true}
		],
		"goals": [{"id": 1, "name": "Lose 20 pounds"}]
	}`, string(data))
}

func TestLoadScenario_Empty(t *testing.T) {
	actions, err := todos.LoadScenario(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestLoadScenario_UnknownAction(t *testing.T) {
	_, err := todos.LoadScenario(strings.NewReader("actions:\n  - type: PAINT_FENCE\n"))
	require.Error(t, err)

	var unknown *todos.ErrUnknownAction
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, todos.ActionType("PAINT_FENCE"), unknown.Type)
	assert.Contains(t, err.Error(), "scenario action 0")
}

func TestLoadScenario_MissingField(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"add todo", "actions:\n  - type: ADD_TODO\n", "todo"},
		{"add goal", "actions:\n  - type: ADD_GOAL\n", "goal"},
		{"remove todo", "actions:\n  - type: REMOVE_TODO\n", "id"},
		{"toggle todo", "actions:\n  - type: TOGGLE_TODO\n", "id"},
		{"remove goal", "actions:\n  - type: REMOVE_GOAL\n", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := todos.LoadScenario(strings.NewReader(tt.doc))

			var missing *todos.ErrMissingField
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.field, missing.Field)
		})
	}
}

func TestLoadScenario_RejectsUnknownFields(t *testing.T) {
	_, err := todos.LoadScenario(strings.NewReader("actions:\n  - type: REMOVE_TODO\n    idx: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode scenario")
}

func TestLoadScenario_ZeroID(t *testing.T) {
	actions, err := todos.LoadScenario(strings.NewReader("actions:\n  - type: REMOVE_GOAL\n    id: 0\n"))
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, todos.RemoveGoalAction(0), actions[0])
}
