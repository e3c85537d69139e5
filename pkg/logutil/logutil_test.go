package logutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	logger := GetLogger("foo ")
	t.Cleanup(func() { SetOutput(io.Discard) })

	var buf bytes.Buffer
	SetOutput(&buf)
	logger.Println("out 1")
	if got := buf.String(); !strings.HasPrefix(got, "foo ") || !strings.HasSuffix(got, "out 1\n") {
		t.Errorf("got %q, want prefix %q and suffix %q", got, "foo ", "out 1\n")
	}

	fname := filepath.Join(t.TempDir(), "log")
	if err := SetOutputFile(fname); err != nil {
		t.Fatal(err)
	}
	logger.Println("out 2")
	SetOutput(io.Discard)
	logger.Println("out 3")

	content, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if s := string(content); !strings.Contains(s, "out 2") || strings.Contains(s, "out 3") {
		t.Errorf("log file contains %q, want only out 2", s)
	}
}

func TestSetOutputFile_Error(t *testing.T) {
	err := SetOutputFile(filepath.Join(t.TempDir(), "no", "such", "dir"))
	if err == nil {
		t.Errorf("SetOutputFile returned nil error for a bad path")
	}
}

func TestSetOutputFile_Empty(t *testing.T) {
	if err := SetOutputFile(""); err != nil {
		t.Errorf("SetOutputFile(\"\") -> %v, want nil", err)
	}
}
