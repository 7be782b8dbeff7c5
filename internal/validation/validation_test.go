package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePostFields(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		content     string
		expectError bool
	}{
		{"Valid", "Hello", "World", false},
		{"Empty title", "", "World", true},
		{"Empty content", "Hello", "", true},
		{"Title too long", strings.Repeat("a", MaxTitleLen+1), "World", true},
		{"Content too long", "Hello", strings.Repeat("a", MaxContentLen+1), true},
		{"Title at limit", strings.Repeat("a", MaxTitleLen), "World", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePostFields(tt.title, tt.content)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{"Valid", "Str0ng!Passw0rd", false},
		{"Too short", "Sh0rt!", true},
		{"No uppercase", "weak!passw0rd", true},
		{"No lowercase", "WEAK!PASSW0RD", true},
		{"No digit", "Weak!Password", true},
		{"No special", "WeakPassw0rdd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		expectError bool
	}{
		{"Valid", "alice_01", false},
		{"Too short", "al", true},
		{"Too long", strings.Repeat("a", 31), true},
		{"Invalid characters", "alice!", true},
		{"Leading underscore", "_alice", true},
		{"Trailing hyphen", "alice-", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		expectError bool
	}{
		{"Valid", "alice@example.com", false},
		{"Missing at", "alice.example.com", true},
		{"Missing domain", "alice@", true},
		{"Missing TLD", "alice@example", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
