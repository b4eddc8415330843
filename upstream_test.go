package courseplanner

import (
	"encoding/json"
	"testing"
)

func TestTermCodeUnmarshal(t *testing.T) {
	tests := map[string]TermCode{
		`4410`:   "4410",
		`"4410"`: "4410",
		`"0150"`: "0150",
		`null`:   "",
	}

	for raw, want := range tests {
		var got TermCode
		if err := json.Unmarshal([]byte(raw), &got); err != nil {
			t.Fatalf("Unmarshal(%s) returned error: %s", raw, err)
		}
		if got != want {
			t.Errorf("Unmarshal(%s) = %q, want %q", raw, got, want)
		}
	}
}

func TestTermCodeMarshal(t *testing.T) {
	tests := []struct {
		code TermCode
		want string
	}{
		{"4410", `4410`},
		{"-3", `-3`},
		{"0150", `"0150"`},
		{"+5", `"+5"`},
		{"00", `"00"`},
		{"S1", `"S1"`},
		{"", `""`},
		{"99999999999999999999", `"99999999999999999999"`},
	}

	for _, tt := range tests {
		got, err := json.Marshal(tt.code)
		if err != nil {
			t.Fatalf("Marshal(%q) returned error: %s", tt.code, err)
		}
		if string(got) != tt.want {
			t.Errorf("Marshal(%q) = %s, want %s", tt.code, got, tt.want)
		}
	}
}
