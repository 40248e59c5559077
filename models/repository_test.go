package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRepositoryRequest(t *testing.T) {
	req := DefaultRepositoryRequest()

	assert.Equal(t, "Projects", req.Name)
	assert.False(t, req.Private)
	assert.NoError(t, req.Validate())
}

func TestPayload_Default(t *testing.T) {
	payload, err := DefaultRepositoryRequest().Payload()

	assert.NoError(t, err)
	assert.Equal(t, `{"name": "Projects", "private": false}`, string(payload))
}

func TestPayload_Private(t *testing.T) {
	payload, err := RepositoryCreationRequest{Name: "secret", Private: true}.Payload()

	assert.NoError(t, err)
	assert.Equal(t, `{"name": "secret", "private": true}`, string(payload))
}

func TestPayload_EscapesName(t *testing.T) {
	payload, err := RepositoryCreationRequest{Name: `say "hi"`}.Payload()

	assert.NoError(t, err)
	assert.Equal(t, `{"name": "say \"hi\"", "private": false}`, string(payload))

	var decoded RepositoryCreationRequest
	assert.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, `say "hi"`, decoded.Name)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     RepositoryCreationRequest
		wantErr error
	}{
		{name: "valid", req: RepositoryCreationRequest{Name: "repo"}},
		{name: "empty", req: RepositoryCreationRequest{Name: ""}, wantErr: ErrEmptyRepositoryName},
		{name: "blank", req: RepositoryCreationRequest{Name: "   "}, wantErr: ErrEmptyRepositoryName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestOutcomeLines(t *testing.T) {
	assert.Equal(t, []string{"201", `{"id":1}`}, SuccessOutcome(201, `{"id":1}`).Lines())
	assert.Equal(t, []string{"422", `{"message":"name already exists"}`}, HTTPErrorOutcome(422, `{"message":"name already exists"}`).Lines())
	assert.Equal(t, []string{"Connection refused"}, FailureOutcome("Connection refused").Lines())
}

func TestOutcomeOK(t *testing.T) {
	assert.True(t, SuccessOutcome(201, "").OK())
	assert.False(t, HTTPErrorOutcome(401, "").OK())
	assert.False(t, FailureOutcome("boom").OK())
}
