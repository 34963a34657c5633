package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	tests := []struct {
		name    string
		y, m, d int
		ok      bool
	}{
		{"normal day", 2024, 6, 15, true},
		{"leap day in leap year", 2024, 2, 29, true},
		{"leap day outside leap year", 2023, 2, 29, false},
		{"century non-leap", 1900, 2, 29, false},
		{"quadricentennial leap", 2000, 2, 29, true},
		{"month zero", 2024, 0, 1, false},
		{"month thirteen", 2024, 13, 1, false},
		{"day zero", 2024, 1, 0, false},
		{"day past month end", 2024, 4, 31, false},
		{"year out of range", 10000, 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDate(tt.y, tt.m, tt.d)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("20240229")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: 2, Day: 29}, d)
	assert.Equal(t, "20240229", d.String())

	// Initial dates decode to the zero value.
	for _, s := range []string{"00000000", "        "} {
		d, err := ParseDate(s)
		require.NoError(t, err)
		assert.True(t, d.IsZero())
	}
	assert.Equal(t, "00000000", Date{}.String())

	_, err = ParseDate("2024022")
	assert.Error(t, err, "short input")
	_, err = ParseDate("2024ab29")
	assert.Error(t, err, "non-digit input")
	_, err = ParseDate("20240230")
	assert.Error(t, err, "invalid calendar day")
}

func TestNewTime(t *testing.T) {
	_, err := NewTime(23, 59, 59)
	assert.NoError(t, err)
	_, err = NewTime(24, 0, 0)
	assert.Error(t, err)
	_, err = NewTime(12, 60, 0)
	assert.Error(t, err)
	_, err = NewTime(12, 0, 60)
	assert.Error(t, err)
}

func TestParseTime(t *testing.T) {
	tm, err := ParseTime("235959")
	require.NoError(t, err)
	assert.Equal(t, Time{Hour: 23, Minute: 59, Second: 59}, tm)
	assert.Equal(t, "235959", tm.String())

	for _, s := range []string{"000000", "      "} {
		tm, err := ParseTime(s)
		require.NoError(t, err)
		assert.Equal(t, Time{}, tm)
	}

	_, err = ParseTime("12345")
	assert.Error(t, err)
	_, err = ParseTime("256000")
	assert.Error(t, err)
}
