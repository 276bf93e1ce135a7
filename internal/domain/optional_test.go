package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	Title    Optional[string]  `json:"title"`
	Priority Optional[int]     `json:"priority"`
	TagIDs   Optional[[]int64] `json:"tagIds"`
}

func TestOptionalPresence(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"title":null,"priority":4}`), &p))

	assert.True(t, p.Title.IsSet())
	assert.True(t, p.Title.IsNull())

	v, ok := p.Priority.Get()
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	assert.False(t, p.TagIDs.IsSet())
	assert.False(t, p.TagIDs.IsNull())
	assert.Equal(t, []int64{9}, p.TagIDs.Or([]int64{9}))
}

func TestOptionalRejectsWrongType(t *testing.T) {
	var p patch
	assert.Error(t, json.Unmarshal([]byte(`{"priority":"high"}`), &p))
}

func TestOptionalMarshal(t *testing.T) {
	out, err := json.Marshal(patch{Title: Some("A"), Priority: Null[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"A","priority":null,"tagIds":null}`, string(out))
}
