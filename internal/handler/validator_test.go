package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test boundaries
const (
	MaxNameLength = 100
	MinPopulation = 1
	MaxPopulation = 10000
)

type TestStruct struct {
	Location   string `validate:"location"`
	Name       string `validate:"required,max=100,excludesall=\x00\n\r\t"`
	Population int    `validate:"min=1,max=10000"`
}

// =============================================================================
// Validator Tests - Demonstrating 5-Case Testing Model
// =============================================================================

func TestValidator_LocationValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name     string
		location string
		wantErr  bool
	}{
		// CASE 1: Best Case
		{"valid plains", "plains", false},
		{"valid forest", "forest", false},
		{"valid mountains", "mountains", false},
		{"valid coast", "coast", false},
		{"valid river", "river", false},

		// CASE 2: Boundary - empty allowed (not required)
		{"empty location allowed", "", false},

		// CASE 3: Edge - case insensitive
		{"uppercase location", "RIVER", false},

		// CASE 4: Invalid Case
		{"invalid location", "swamp", true},
		{"typo", "forrest", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := TestStruct{
				Location:   tt.location,
				Name:       "Aldermoor",
				Population: 100,
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_NameValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name        string
		villageName string
		wantErr     bool
	}{
		// CASE 1: Best Case
		{"valid name", "Aldermoor", false},
		{"alphanumeric", "Outpost12", false},
		{"with space", "Stone Reach", false},

		// CASE 2: Boundary Case
		{"one char (just inside)", "a", false},
		{"exactly max length", strings.Repeat("a", MaxNameLength), false},
		{"over max length", strings.Repeat("a", MaxNameLength+1), true},

		// CASE 4: Invalid Case
		{"empty name", "", true},
		{"with newline", "Alder\nmoor", true},
		{"with tab", "Alder\tmoor", true},
		{"with null byte", "Alder\x00moor", true},
		{"with carriage return", "Alder\rmoor", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := TestStruct{
				Location:   "plains",
				Name:       tt.villageName,
				Population: 100,
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidator_PopulationValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name       string
		population int
		wantErr    bool
	}{
		// CASE 1: Best Case
		{"valid population", 100, false},
		{"mid range", 5000, false},

		// CASE 2: Boundary Case
		{"negative (beyond lower)", -1, true},
		{"zero (on lower boundary)", 0, true},
		{"one (at min)", MinPopulation, false},
		{"max allowed", MaxPopulation, false},
		{"over max (beyond upper)", MaxPopulation + 1, true},

		// CASE 2: Worst Case - extremes
		{"very negative", -999999, true},
		{"very large", 999999, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := TestStruct{
				Location:   "plains",
				Name:       "Aldermoor",
				Population: tt.population,
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err, "Expected validation error for population=%d", tt.population)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_MultipleFieldErrors(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("all fields invalid", func(t *testing.T) {
		input := TestStruct{
			Location:   "swamp",
			Name:       "", // Required field
			Population: 0,  // Below minimum
		}

		err := v.ValidateStruct(input)

		require.Error(t, err)
		// Should have errors for all three fields
		assert.Contains(t, err.Error(), "Location")
		assert.Contains(t, err.Error(), "Name")
		assert.Contains(t, err.Error(), "Population")
	})
}
