package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_UnmarshalOpaqueIDs(t *testing.T) {
	raw := `{"id": 42, "user_id": "7", "documents": [{"file_id": 9001, "file_name": "скан.pdf"}], "status": "new"}`

	var r Request
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, ID("42"), r.ID)
	assert.Equal(t, ID("7"), r.UserID)
	require.Len(t, r.Documents, 1)
	assert.Equal(t, ID("9001"), r.Documents[0].FileID)
	assert.Equal(t, "скан.pdf", r.Documents[0].FileName)
}

func TestID_UnmarshalNullAndGarbage(t *testing.T) {
	var id ID
	require.NoError(t, json.Unmarshal([]byte(`null`), &id))
	assert.Equal(t, ID(""), id)

	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &id))
}
