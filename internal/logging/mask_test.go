// Copyright (c) 2025 RoomieFlow
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Authorization header",
			input:    "Bearer eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.c2ln",
			expected: "Bearer ***",
		},
		{
			name:     "Lowercase bearer inside a sentence",
			input:    "sent bearer abc.def.ghi to /auth/me",
			expected: "sent bearer *** to /auth/me",
		},
		{
			name:     "Password parameter",
			input:    "password=secret123",
			expected: "password=***",
		},
		{
			name:     "Token query parameter",
			input:    "/auth/me?token=abc123xyz&x=1",
			expected: "/auth/me?token=***&x=1",
		},
		{
			name:     "JSON credentials",
			input:    `{"username":"alice","password":"Hunter22"}`,
			expected: `{"username":"alice","password":"***"}`,
		},
		{
			name:     "JSON access token",
			input:    `{"access_token": "T0k3n", "user": {"id": 1}}`,
			expected: `{"access_token": "***", "user": {"id": 1}}`,
		},
		{
			name:     "Nothing to mask",
			input:    "GET /auth/me 200",
			expected: "GET /auth/me 200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Mask(tt.input)
			if result != tt.expected {
				t.Errorf("Mask() = %v, want %v", result, tt.expected)
			}
		})
	}
}
