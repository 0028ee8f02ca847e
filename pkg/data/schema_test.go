package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthIndex(t *testing.T) {
	tokens := []string{"Jan", "Feb", "Mar", "Apr", "May", "June", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	for want, tok := range tokens {
		got, err := MonthIndex(tok)
		require.NoError(t, err, tok)
		assert.Equal(t, want, got, tok)
	}

	for _, tok := range []string{"Jun", "jan", "JAN", "January", "", "13"} {
		_, err := MonthIndex(tok)
		assert.Error(t, err, tok)
	}
}

func TestFlagAndVisitorType(t *testing.T) {
	tests := []struct {
		token   string
		flag    int
		visitor int
	}{
		{"TRUE", 1, 0},
		{"Returning_Visitor", 0, 1},
		{"true", 0, 0},
		{"True", 0, 0},
		{"FALSE", 0, 0},
		{"1", 0, 0},
		{"returning_visitor", 0, 0},
		{"New_Visitor", 0, 0},
		{"", 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.flag, Flag(tt.token), tt.token)
		assert.Equal(t, tt.visitor, VisitorType(tt.token), tt.token)
	}
}

func TestSessionSchema(t *testing.T) {
	s := SessionSchema(false)
	assert.Len(t, s.Fields, 17)
	assert.Equal(t, ColRevenue, s.Label)
	assert.NotContains(t, s.FeatureNames(), ColRevenue)
	assert.Len(t, s.Columns(), 18)

	legacy := SessionSchema(true)
	assert.Equal(t, ColPageValues, legacy.Fields[9].Column)
	assert.Equal(t, ColSpecialDay, legacy.Fields[9].Name)
	// SpecialDay is not read but must still be present.
	assert.Len(t, legacy.Columns(), 18)
	assert.Contains(t, legacy.Columns(), ColSpecialDay)
	assert.ElementsMatch(t, s.Columns(), legacy.Columns())
}

func TestKindConvert(t *testing.T) {
	v, err := KindInt.Convert(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = KindInt.Convert("7.5")
	assert.Error(t, err)

	v, err = KindFloat.Convert("1e-3")
	require.NoError(t, err)
	assert.Equal(t, 0.001, v)

	for _, raw := range []string{"NaN", "nan", "Inf", "+Inf", "-Infinity"} {
		_, err = KindFloat.Convert(raw)
		assert.ErrorIs(t, err, ErrNotFinite, raw)
	}

	_, err = Kind("bogus").Convert("1")
	assert.Error(t, err)
}
