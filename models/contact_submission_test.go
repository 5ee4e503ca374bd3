package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"jane.doe+tag@example.co.uk",
		"a@b.co",
		// The pattern is deliberately loose about the domain shape.
		"a@b..com",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"a@b",
		"a@b@c.com",
		"@example.com",
		"jane@",
		"jane doe@example.com",
		"jane@exam ple.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestIsValidArea(t *testing.T) {
	for _, area := range AreaOptions {
		assert.True(t, IsValidArea(area), "expected %q to be valid", area)
	}

	assert.False(t, IsValidArea(""))
	assert.False(t, IsValidArea("Astrology"))
	assert.False(t, IsValidArea("finance & wealth creation"))
}

func TestAreaOptions(t *testing.T) {
	assert.Len(t, AreaOptions, 4)
	assert.Contains(t, AreaOptions, AreaPersonalDevelopment)
	assert.Contains(t, AreaOptions, AreaFinance)
	assert.Contains(t, AreaOptions, AreaBusiness)
	assert.Contains(t, AreaOptions, AreaNetworking)
}
