package arg

import "testing"

func TestHandleQuery(t *testing.T) {
	cases := []struct {
		name   string
		args   []string
		expect string
	}{
		{name: "no args", args: nil, expect: ""},
		{name: "single word", args: []string{"mint"}, expect: "mint"},
		{name: "quoted phrase", args: []string{"blue razz"}, expect: "blue razz"},
		{name: "split words", args: []string{"blue", "razz"}, expect: "blue razz"},
		{name: "padding", args: []string{"  mango", "ice  "}, expect: "mango ice"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HandleQuery(tc.args)
			if got != tc.expect {
				t.Fatalf("HandleQuery(%v) = %q, want %q", tc.args, got, tc.expect)
			}
		})
	}
}
