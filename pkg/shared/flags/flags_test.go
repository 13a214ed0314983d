package flags

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestHandleFormat(t *testing.T) {
	cases := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{args: nil, want: ""},
		{args: []string{"--format", "json"}, want: FormatJSON},
		{args: []string{"-f", " Markdown "}, want: FormatMarkdown},
		{args: []string{"--format", "xml"}, wantErr: true},
	}

	for _, tc := range cases {
		cmd := &cobra.Command{Use: "test"}
		AddFormat(cmd)
		if err := cmd.ParseFlags(tc.args); err != nil {
			t.Fatalf("ParseFlags(%v): %v", tc.args, err)
		}

		got, err := HandleFormat(cmd)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("expected error for %v", tc.args)
			}
			continue
		}
		if err != nil {
			t.Fatalf("HandleFormat(%v) returned error: %v", tc.args, err)
		}
		if got != tc.want {
			t.Fatalf("HandleFormat(%v) = %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestHandleCopy(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	AddCopy(cmd)
	if err := cmd.ParseFlags([]string{"-c"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	copyFlag, err := HandleCopy(cmd)
	if err != nil || !copyFlag {
		t.Fatalf("expected copy flag to be set, got %v err=%v", copyFlag, err)
	}
}
