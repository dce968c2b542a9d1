package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req:  CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "longenough"},
		},
		{
			name:    "missing name",
			req:     CreateUserRequest{Email: "ada@example.com", Password: "longenough"},
			wantErr: true,
		},
		{
			name:    "bad email",
			req:     CreateUserRequest{Name: "Ada", Email: "not-an-email", Password: "longenough"},
			wantErr: true,
		},
		{
			name:    "short password",
			req:     CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "short"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Email: "ada@example.com", Password: "pw"}
	assert.NoError(t, valid.Validate())

	missing := LoginRequest{Email: "ada@example.com"}
	assert.Error(t, missing.Validate())
}
