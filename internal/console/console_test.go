package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

func TestConsoleOutput(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, Options{})

	c.Prompt("What is the loan amount?")
	c.Warn("Please enter a positive number.")
	c.Println(constants.Separator)

	expected := "> What is the loan amount?\n" +
		"> Please enter a positive number.\n" +
		constants.Separator + "\n"
	if out.String() != expected {
		t.Errorf("output = %q, expected %q", out.String(), expected)
	}
}

func TestConsoleColorKeepsText(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, Options{Color: true})

	c.Warn("Please enter 'y' or 'n'.")

	if !strings.HasPrefix(out.String(), constants.PromptMarker) {
		t.Errorf("output %q missing prompt marker", out.String())
	}
	if !strings.Contains(out.String(), "Please enter 'y' or 'n'.") {
		t.Errorf("output %q missing message text", out.String())
	}
}

func TestConsoleReadLine(t *testing.T) {
	c := New(strings.NewReader("100000\r\n  6 \n\n360"), io.Discard, Options{})

	expected := []string{"100000", "  6 ", "", "360"}
	for i, want := range expected {
		line, err := c.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine() #%d unexpected error: %v", i, err)
		}
		if line != want {
			t.Errorf("ReadLine() #%d = %q, expected %q", i, line, want)
		}
	}

	if _, err := c.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() at end of input error = %v, expected io.EOF", err)
	}
}

func TestConsoleClear(t *testing.T) {
	tests := []struct {
		name        string
		clearScreen bool
		expected    string
	}{
		{"Enabled", true, constants.ClearScreenSequence},
		{"Disabled", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			New(strings.NewReader(""), &out, Options{ClearScreen: tt.clearScreen}).Clear()
			if out.String() != tt.expected {
				t.Errorf("Clear() wrote %q, expected %q", out.String(), tt.expected)
			}
		})
	}
}
