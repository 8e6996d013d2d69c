package jtl

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadFrom_ParsesSamples(t *testing.T) {
	// Real JTL files carry many more columns; only three matter.
	input := strings.Join([]string{
		"timeStamp,elapsed,label,responseCode,success,bytes",
		"1700000000000,120,Home,200,true,512",
		"1700000000500,340,Login,500,false,128",
	}, "\n")

	got, err := ReadFrom(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}

	want := []Sample{
		{Timestamp: 1700000000000, Elapsed: 120, Success: true},
		{Timestamp: 1700000000500, Elapsed: 340, Success: false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFrom_MissingCellsDefault(t *testing.T) {
	input := strings.Join([]string{
		"timeStamp,elapsed,success",
		",,",
	}, "\n")

	got, err := ReadFrom(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}

	want := []Sample{{Timestamp: 0, Elapsed: 0, Success: true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFrom_AbsentColumnsDefault(t *testing.T) {
	// A file with no success column at all: every sample is a success.
	input := strings.Join([]string{
		"timeStamp,elapsed",
		"1000,50",
		"2000,70",
	}, "\n")

	got, err := ReadFrom(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}

	for i, s := range got {
		if !s.Success {
			t.Errorf("sample %d: expected default success=true", i)
		}
	}
}

func TestReadFrom_MalformedElapsed(t *testing.T) {
	input := strings.Join([]string{
		"timeStamp,elapsed,success",
		"1000,100,true",
		"2000,fast,true",
	}, "\n")

	_, err := ReadFrom(strings.NewReader(input))
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected *FieldError, got %v", err)
	}
	if fieldErr.Line != 3 || fieldErr.Field != "elapsed" || fieldErr.Value != "fast" {
		t.Errorf("unexpected field error: %+v", fieldErr)
	}
}

func TestReadFrom_NegativeElapsedRejected(t *testing.T) {
	input := strings.Join([]string{
		"timeStamp,elapsed,success",
		"1000,-5,true",
	}, "\n")

	_, err := ReadFrom(strings.NewReader(input))
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected *FieldError, got %v", err)
	}
	if fieldErr.Field != "elapsed" {
		t.Errorf("expected elapsed field error, got %+v", fieldErr)
	}
}

func TestReadFrom_UnrecognizedSuccessToken(t *testing.T) {
	input := strings.Join([]string{
		"timeStamp,elapsed,success",
		"1000,100,yes",
	}, "\n")

	_, err := ReadFrom(strings.NewReader(input))
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected *FieldError, got %v", err)
	}
	if fieldErr.Field != "success" || fieldErr.Value != "yes" {
		t.Errorf("unexpected field error: %+v", fieldErr)
	}
}

func TestReadFrom_SuccessCaseInsensitive(t *testing.T) {
	input := strings.Join([]string{
		"timeStamp,elapsed,success",
		"1000,100,TRUE",
		"2000,100,False",
	}, "\n")

	got, err := ReadFrom(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if !got[0].Success || got[1].Success {
		t.Errorf("unexpected success flags: %+v", got)
	}
}

func TestReadFrom_HeaderOnly(t *testing.T) {
	got, err := ReadFrom(strings.NewReader("timeStamp,elapsed,success\n"))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected 0 samples, got %d", len(got))
	}
}

func TestReadFrom_EmptyInput(t *testing.T) {
	got, err := ReadFrom(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected 0 samples, got %d", len(got))
	}
}

func TestRead_FileNotFound(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.jtl"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected error wrapping fs.ErrNotExist, got %v", err)
	}
}

func TestRead_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jtl")
	content := "timeStamp,elapsed,success\n1000,50,true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got) != 1 || got[0].Elapsed != 50 {
		t.Errorf("unexpected samples: %+v", got)
	}
}

func TestRead_ErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jtl")
	content := "timeStamp,elapsed,success\nabc,50,true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	_, err := Read(path)
	if err == nil {
		t.Fatal("expected error for malformed file")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("expected error to name the file, got %v", err)
	}
}
