package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/holdqueue/core"
)

func Test_NormalizeRequesterKey(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected core.RequesterKey
		wantErr  bool
	}{
		{name: "plain address", raw: "ada@example.com", expected: "ada@example.com"},
		{name: "mixed case and whitespace", raw: "  Ada.Lovelace@Example.COM ", expected: "ada.lovelace@example.com"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "missing at sign", raw: "ada.example.com", wantErr: true},
		{name: "missing domain dot", raw: "ada@example", wantErr: true},
		{name: "inner whitespace", raw: "ada lovelace@example.com", wantErr: true},
		{name: "two at signs", raw: "ada@@example.com", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// act
			key, err := core.NormalizeRequesterKey(tc.raw)

			// assert
			if tc.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidRequesterKey)
				assert.ErrorIs(t, err, core.ErrValidation)
				assert.Empty(t, key)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, key)
		})
	}
}

func Test_ValidateNewItem(t *testing.T) {
	t.Run("trims the title", func(t *testing.T) {
		title, err := core.ValidateNewItem("  Dune ", 2)

		assert.NoError(t, err)
		assert.Equal(t, "Dune", title)
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		_, err := core.ValidateNewItem(" ", 2)

		assert.ErrorIs(t, err, core.ErrEmptyTitle)
		assert.ErrorIs(t, err, core.ErrValidation)
	})

	t.Run("rejects non-positive units", func(t *testing.T) {
		_, err := core.ValidateNewItem("Dune", 0)

		assert.ErrorIs(t, err, core.ErrInvalidUnitsTotal)
		assert.ErrorIs(t, err, core.ErrValidation)
	})
}
