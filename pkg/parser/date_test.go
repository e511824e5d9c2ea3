package parser

import "testing"

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		token string
		want  string
		ok    bool
	}{
		{"20240115", "01/15/2024", true},
		{"20240115120000", "01/15/2024", true},
		{"20190131120000.000[-7:GMT]", "01/31/2019", true},
		{"20241332", "13/32/2024", true},
		{"2024011", "", false},
		{"", "", false},
		{"2024-01-15", "", false},
		{"BADDATE1", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeDate(c.token)
		if got != c.want || ok != c.ok {
			t.Errorf("NormalizeDate(%q) = (%q, %t), want (%q, %t)", c.token, got, ok, c.want, c.ok)
		}
	}
}

func TestPostedDate(t *testing.T) {
	cases := map[string]string{
		"20240115120000": "01/15/2024",
		"BADDATE1":       "BADDATE1",
		"BADDATE1234":    "BADDATE1",
		"2024-01-15":     "2024-01-",
		"0115":           "0115",
		"":               "",
	}
	for token, want := range cases {
		if got := postedDate(token); got != want {
			t.Errorf("postedDate(%q) = %q, want %q", token, got, want)
		}
	}
}
