package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want Amount
	}{
		{"0", 0},
		{"1", 100},
		{"12.34", 1234},
		{"12.3", 1230},
		{".50", 50},
		{"100.", 10000},
		{"-5.25", -525},
		{"+5.25", 525},
		{" 7.10 ", 710},
	}
	for _, c := range cases {
		got, err := ParseAmount(c.in)
		assert.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseAmount_RoundsHalfUpOnThirdDecimal(t *testing.T) {
	got, err := ParseAmount("1.005")
	assert.NoError(t, err)
	assert.Equal(t, Amount(101), got)

	got, err = ParseAmount("1.004")
	assert.NoError(t, err)
	assert.Equal(t, Amount(100), got)

	got, err = ParseAmount("1.0049")
	assert.NoError(t, err)
	assert.Equal(t, Amount(100), got)
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "1,50", "12e3", "--1"} {
		_, err := ParseAmount(in)
		assert.Error(t, err, in)
	}
}

func TestAmountString(t *testing.T) {
	assert.Equal(t, "0.00", Amount(0).String())
	assert.Equal(t, "12.34", Amount(1234).String())
	assert.Equal(t, "12.05", Amount(1205).String())
	assert.Equal(t, "-5.25", Amount(-525).String())
	assert.Equal(t, "0.09", Amount(9).String())
}

func TestAmountJSON(t *testing.T) {
	data, err := json.Marshal(Amount(1234))
	assert.NoError(t, err)
	assert.Equal(t, `"12.34"`, string(data))

	var fromString Amount
	assert.NoError(t, json.Unmarshal([]byte(`"56.78"`), &fromString))
	assert.Equal(t, Amount(5678), fromString)

	var fromNumber Amount
	assert.NoError(t, json.Unmarshal([]byte(`56.78`), &fromNumber))
	assert.Equal(t, Amount(5678), fromNumber)
}

func TestAmountScan(t *testing.T) {
	var a Amount
	assert.NoError(t, a.Scan([]byte("12.34")))
	assert.Equal(t, Amount(1234), a)

	assert.NoError(t, a.Scan("0.01"))
	assert.Equal(t, Amount(1), a)

	assert.NoError(t, a.Scan(nil))
	assert.Equal(t, Amount(0), a)
}
