package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoPatch_DistinguishesAbsentNullAndValue(t *testing.T) {
	var p TodoPatch
	require.NoError(t, json.Unmarshal([]byte(`{"description":null,"completed":true}`), &p))

	assert.True(t, p.Description.Set)
	assert.Nil(t, p.Description.Value)

	assert.True(t, p.Completed.Set)
	require.NotNil(t, p.Completed.Value)
	assert.True(t, *p.Completed.Value)

	assert.False(t, p.DueDate.Set)
}

func TestTodoPatch_MarshalOmitsAbsentFields(t *testing.T) {
	p := TodoPatch{
		Status:      TodoStatusCompleted,
		Description: Null[string](),
		Completed:   Some(false),
	}

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"completed","description":null,"completed":false}`, string(out))
}

func TestBoardDetail_AlwaysCarriesTodos(t *testing.T) {
	out, err := json.Marshal(BoardDetail{Board: &Board{ID: "b1", Title: "Work", Color: DefaultBoardColor}, Todos: []*Todo{}})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "Work", m["title"])
	assert.Equal(t, []any{}, m["todos"])
	assert.Nil(t, m["description"])
}

func TestSession_FlattensUser(t *testing.T) {
	first := "Ada"
	s := Session{PublicUser: (&User{ID: "u1", Email: "a@x.com", FirstName: &first, PasswordHash: "h"}).Public(), Token: "tok"}

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1","email":"a@x.com","firstName":"Ada","lastName":null,"token":"tok"}`, string(out))
}
