package validator_test

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"riverstay/shared/validator"
)

type signupPayload struct {
	Name     string `validate:"required,min=3,max=50" json:"name"`
	Email    string `validate:"required,email"        json:"email"`
	Password string `validate:"required,min=6,max=20" json:"password"`
}

type uploadPayload struct {
	Image *multipart.FileHeader `validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=1"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid body",
			body:        `{"name":"Test User","email":"test@example.com","password":"secret123"}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"name":`,
			expectError: true,
		},
		{
			name:        "missing required field",
			body:        `{"email":"test@example.com","password":"secret123"}`,
			expectError: true,
		},
		{
			name:        "invalid email",
			body:        `{"name":"Test User","email":"not-an-email","password":"secret123"}`,
			expectError: true,
		},
		{
			name:        "password too short",
			body:        `{"name":"Test User","email":"test@example.com","password":"abc"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload signupPayload
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_FileRules(t *testing.T) {
	makeHeader := func(contentType string, size int64) *multipart.FileHeader {
		header := textproto.MIMEHeader{}
		header.Set("Content-Type", contentType)

		return &multipart.FileHeader{
			Filename: "room.png",
			Header:   header,
			Size:     size,
		}
	}

	tests := []struct {
		name        string
		payload     uploadPayload
		expectError bool
	}{
		{
			name:        "no image is allowed",
			payload:     uploadPayload{},
			expectError: false,
		},
		{
			name:        "allowed mimetype within size",
			payload:     uploadPayload{Image: makeHeader("image/png", 512*1024)},
			expectError: false,
		},
		{
			name:        "disallowed mimetype",
			payload:     uploadPayload{Image: makeHeader("application/pdf", 512*1024)},
			expectError: true,
		},
		{
			name:        "file too large",
			payload:     uploadPayload{Image: makeHeader("image/png", 2*1024*1024)},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.payload)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("test@example.com", "required,email"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := validator.ValidateVar("not-an-email", "required,email"); err == nil {
		t.Error("expected error, got nil")
	}
}
