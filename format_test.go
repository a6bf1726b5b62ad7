package electionmaps

import "testing"

func TestFormat(t *testing.T) {
	for _, test := range []struct {
		have, want string
	}{
		{FormatPercent(Num(62.3)), "62.3%"},
		{FormatPercent(Num(41)), "41.0%"},
		{FormatPercent(Num(66.666)), "66.7%"},
		{FormatPercent(Number{}), "N/A"},
		{FormatPercent(complement(Num(62.3))), "37.7%"},
		{FormatPercent(complement(Number{})), "N/A"},
		{FormatPercentNonZero(Num(0)), "N/A"},
		{FormatPercentNonZero(Num(12.3)), "12.3%"},
		{FormatCount(Num(1234567)), "1,234,567"},
		{FormatCount(Num(999)), "999"},
		{FormatCount(Number{}), "N/A"},
	} {
		if test.have != test.want {
			t.Errorf("%s != %s", test.have, test.want)
		}
	}
}
