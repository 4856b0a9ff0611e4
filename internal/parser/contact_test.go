package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"simple", "Contact: john.doe@example.com", "john.doe@example.com"},
		{"plus tag and subdomain", "Reach me at A.B+tag@Sub.Domain.co anytime", "a.b+tag@sub.domain.co"},
		{"missing domain", "broken not-an-email@ here", ""},
		{"missing localpart", "broken @nodomain here", ""},
		{"no email", "nothing to see", ""},
		{"first of several", "a@x.io then b@y.io", "a@x.io"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEmail(tt.text))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"us grouped", "Call (123) 456-7890 today", "(123) 456-7890"},
		{"international", "+91-9876543210", "+91-9876543210"},
		{"bare ten digits", "number 9876543210 listed", "9876543210"},
		{"too short", "ext 12345", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPhone(tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"name on first line",
			"John Smith\njohn@example.com\n(123) 456-7890",
			"John Smith",
		},
		{
			"skips contact lines",
			"john@example.com\nlinkedin.com/in/jsmith\nJane Marie Doe",
			"Jane Marie Doe",
		},
		{
			"rejects lowercase",
			"john smith\nresume",
			"",
		},
		{
			"rejects single word",
			"Resume\nSkills",
			"",
		},
		{
			"four words",
			"Anna Maria Louisa Perez\nEngineer",
			"Anna Maria Louisa Perez",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tt.text))
		})
	}
}
