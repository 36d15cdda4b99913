package ui

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestConsoleAppend(t *testing.T) {
	c := NewConsole()
	c.Append("Running: airmon-ng check kill", "line one\nline two")

	want := []string{"Running: airmon-ng check kill", "line one", "line two"}
	if !reflect.DeepEqual(c.Lines, want) {
		t.Errorf("Lines = %v, want %v", c.Lines, want)
	}

	c.Clear()
	if len(c.Lines) != 0 {
		t.Errorf("Clear() left %d lines", len(c.Lines))
	}
}

func TestConsoleMaxLines(t *testing.T) {
	c := &Console{MaxLines: 2}
	c.Append("a", "b", "c")

	if want := []string{"b", "c"}; !reflect.DeepEqual(c.Lines, want) {
		t.Errorf("Lines = %v, want %v", c.Lines, want)
	}
}

func TestConsoleContent(t *testing.T) {
	c := NewConsole()
	c.Append("Trying: systemctl restart NetworkManager", "ok")

	out := c.Content()
	if !strings.Contains(out, "Trying: systemctl restart NetworkManager") || !strings.Contains(out, "ok") {
		t.Errorf("Content() = %q", out)
	}
}

func TestDialogRender(t *testing.T) {
	tests := []struct {
		name   string
		dialog *Dialog
		want   []string
	}{
		{
			name:   "info",
			dialog: NewInfoDialog("Success", "Check Kill completed."),
			want:   []string{"SUCCESS", "Check Kill completed.", "enter/esc"},
		},
		{
			name:   "error with details",
			dialog: NewErrorDialog("Failed", "Could not restart.", "systemctl (exit 1)"),
			want:   []string{"FAILED", "Could not restart.", "systemctl (exit 1)"},
		},
		{
			name:   "confirm",
			dialog: NewConfirmDialog("Confirm", "Restart now?"),
			want:   []string{"CONFIRM", "Restart now?", "Yes", "No"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.dialog.Render(true)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("Render() missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestRenderWarnings(t *testing.T) {
	if got := RenderWarnings(nil, 80); got != "" {
		t.Errorf("RenderWarnings(nil) = %q, want empty", got)
	}
	out := RenderWarnings([]string{"Not running as root."}, 80)
	if !strings.Contains(out, "Not running as root.") {
		t.Errorf("banner missing warning: %q", out)
	}
}

func TestClampWidth(t *testing.T) {
	tests := map[int]int{10: MinTerminalWidth, 80: 80, 500: MaxContentWidth}
	for in, want := range tests {
		if got := ClampWidth(in); got != want {
			t.Errorf("ClampWidth(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestSafeDialogWidth(t *testing.T) {
	if got := SafeDialogWidth(200); got != DialogWidth {
		t.Errorf("SafeDialogWidth(200) = %d", got)
	}
	if got := SafeDialogWidth(50); got != 46 {
		t.Errorf("SafeDialogWidth(50) = %d, want 46", got)
	}
	if got := SafeDialogWidth(20); got != 40 {
		t.Errorf("SafeDialogWidth(20) = %d, want 40", got)
	}
}

func TestPrinter(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *Printer)
		want  []string
	}{
		{
			name:  "error dialog",
			print: func(p *Printer) { p.PrintError("Configuration", errors.New("bad config")) },
			want:  []string{"Configuration", "bad config"},
		},
		{
			name:  "plain line",
			print: func(p *Printer) { p.Println("airmon-ng not found") },
			want:  []string{"airmon-ng not found\n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewPrinter(&buf))

			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}
