package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllergenValid(t *testing.T) {
	for id := 1; id <= 13; id++ {
		assert.True(t, Allergen(id).Valid(), "id %d should be defined", id)
	}
	assert.False(t, Allergen(0).Valid())
	assert.False(t, Allergen(14).Valid())
	assert.False(t, Allergen(99).Valid())
}

func TestAllergenListRoundTrip(t *testing.T) {
	original := AllergenList{AllergenGluten, AllergenDairy, AllergenLupin}

	encoded, err := original.Value()
	require.NoError(t, err)
	assert.Equal(t, "Gluten,Dairy,Lupin", encoded)

	var decoded AllergenList
	require.NoError(t, decoded.Scan(encoded))
	assert.ElementsMatch(t, original, decoded)
}

func TestAllergenListScan(t *testing.T) {
	tests := []struct {
		name    string
		src     interface{}
		want    AllergenList
		wantErr bool
	}{
		{name: "empty string", src: "", want: nil},
		{name: "nil", src: nil, want: nil},
		{name: "bytes", src: []byte("Nuts,Fish"), want: AllergenList{AllergenNuts, AllergenFish}},
		{name: "unknown token is an error", src: "Gluten,Plutonium", wantErr: true},
		{name: "unsupported type", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got AllergenList
			err := got.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllergenListValueRejectsInvalidTag(t *testing.T) {
	_, err := AllergenList{AllergenGluten, Allergen(99)}.Value()
	assert.Error(t, err)
}

func TestParseAllergen(t *testing.T) {
	a, err := ParseAllergen("Shellfish")
	require.NoError(t, err)
	assert.Equal(t, AllergenShellfish, a)

	_, err = ParseAllergen("shellfish")
	assert.Error(t, err)
}
