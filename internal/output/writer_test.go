package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/sanchess-go/internal/config"
	"github.com/lgbarn/sanchess-go/internal/testutil"
)

// TestPositionWriter_Interface verifies that writers implement the interface
func TestPositionWriter_Interface(t *testing.T) {
	cfg := config.NewConfig()
	var buf bytes.Buffer

	var _ PositionWriter = NewTextWriter(&buf, cfg)
	var _ PositionWriter = NewJSONWriter(&buf)
	var _ PositionWriter = NewSVGFileWriter("unused.svg", cfg)
	var _ PositionWriter = NewMultiWriter()
}

// TestTextWriter_WritePosition verifies the board is followed by the status
func TestTextWriter_WritePosition(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithGlyphs(config.Letters).Build()

	pos := testutil.PlayFromStart(t, "f3", "e5", "g4", "Qh4#")
	writer := NewTextWriter(&buf, cfg)
	if err := writer.WritePosition(&Snapshot{Position: pos}); err != nil {
		t.Fatalf("WritePosition failed: %v", err)
	}

	output := buf.String()
	testutil.AssertContains(t, output, "4 . . . . . . P q\n")
	testutil.AssertContains(t, output, "  a b c d e f g h\n")
	if !strings.HasSuffix(output, "Checkmate. Black wins.\n") {
		t.Errorf("output does not end with the result:\n%s", output)
	}
}

// TestTextWriter_NoStatusWhileOngoing verifies quiet positions print only the board
func TestTextWriter_NoStatusWhileOngoing(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithLabels(false).Build()

	writer := NewTextWriter(&buf, cfg)
	if err := writer.WritePosition(&Snapshot{Position: testutil.PlayFromStart(t, "d4")}); err != nil {
		t.Fatalf("WritePosition failed: %v", err)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 8 {
		t.Errorf("got %d lines, want 8", lines)
	}
	if err := writer.Flush(); err != nil {
		t.Errorf("Flush failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestMultiWriter(t *testing.T) {
	var text, js bytes.Buffer
	cfg := config.NewConfig()

	mw := NewMultiWriter(NewTextWriter(&text, cfg), NewJSONWriter(&js))
	p := testutil.PlayFromStart(t, "e4")
	if err := mw.WritePosition(&Snapshot{Position: p, SAN: "e4"}); err != nil {
		t.Fatalf("WritePosition failed: %v", err)
	}
	if text.Len() == 0 {
		t.Error("text writer received nothing")
	}
	if js.Len() != 0 {
		t.Error("batch JSON writer wrote before Close")
	}

	if err := mw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	var out JSONOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON after Close: %v", err)
	}
	if len(out.Positions) != 1 {
		t.Errorf("got %d positions, want 1", len(out.Positions))
	}
}

func TestNewWriters_JSONArray(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithOutput(&buf).
		WithJSONArray(true).
		Build()

	writers := NewWriters(cfg)
	pos := testutil.PlayFromStart(t)
	if err := writers.WritePosition(&Snapshot{Position: pos}); err != nil {
		t.Fatalf("WritePosition failed: %v", err)
	}
	testutil.MustPlay(t, pos, "e4")
	if err := writers.WritePosition(&Snapshot{Position: pos, SAN: "e4"}); err != nil {
		t.Fatalf("WritePosition failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("batched JSON written before Close: %s", buf.String())
	}

	if err := writers.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not a positions document: %v\n%s", err, buf.String())
	}
	if len(out.Positions) != 2 {
		t.Errorf("got %d positions, want 2", len(out.Positions))
	}
}

func TestNewWriters(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "board.svg")

	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithOutput(&buf).
		WithJSONOutput(true).
		WithSVGFile(svgPath).
		Build()

	writers := NewWriters(cfg)
	if err := writers.WritePosition(&Snapshot{Position: testutil.PlayFromStart(t)}); err != nil {
		t.Fatalf("WritePosition failed: %v", err)
	}
	if err := writers.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var jp JSONPosition
	if err := json.Unmarshal(buf.Bytes(), &jp); err != nil {
		t.Fatalf("output is not a JSON position: %v\n%s", err, buf.String())
	}
	if jp.Status != "ongoing" {
		t.Errorf("Status = %q, want ongoing", jp.Status)
	}

	data, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatalf("SVG file not written: %v", err)
	}
	testutil.AssertContains(t, string(data), "</svg>")
}
