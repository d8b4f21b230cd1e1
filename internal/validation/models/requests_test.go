package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pramaan/pkg/apperrors"
)

func TestValidateRequest_Normalize(t *testing.T) {
	req := &ValidateRequest{AadhaarNumber: "  2405 3780 2894  "}
	req.Normalize()
	assert.Equal(t, "2405 3780 2894", req.AadhaarNumber, "interior grouping spaces must survive")
}

func TestValidateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		wantErr bool
	}{
		{"well formed", "240537802894", false},
		{"grouped", "2405 3780 2894", false},
		{"digit syntax left to engine", "abc", false},
		{"empty", "", true},
		{"oversized", strings.Repeat("1", 65), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &ValidateRequest{AadhaarNumber: tt.number}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, apperrors.CodeBadRequest, apperrors.CodeOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateRequest_Validate(t *testing.T) {
	req := &GenerateRequest{Prefix: "24053780289"}
	req.Normalize()
	assert.NoError(t, req.Validate())

	req = &GenerateRequest{}
	assert.Error(t, req.Validate())

	var nilReq *GenerateRequest
	assert.Error(t, nilReq.Validate())
}
