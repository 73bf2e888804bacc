package storage

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Syrthax/gravity-sim/internal/body"
	"github.com/Syrthax/gravity-sim/internal/engine"
)

func testFrames() [][]engine.BodyView {
	frames := make([][]engine.BodyView, 3)
	for tick := range frames {
		frames[tick] = []engine.BodyView{
			{Pos: body.Vec2{X: 100 + float64(tick), Y: 200}, Mass: 500, Radius: 7.5, Active: true},
			{Pos: body.Vec2{X: 300, Y: 400}, Mass: 800, Radius: 9, Active: tick < 2},
		}
	}
	return frames
}

func TestSaveListLoad(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := s.Save(42, 0.1, 3, testFrames())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	meta, err := s.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Seed != 42 || meta.Dt != 0.1 || meta.Collisions != 3 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", meta.Ticks)
	}
	// final frame: one active body of mass 500
	if meta.ActiveBodies != 1 {
		t.Errorf("expected 1 active body, got %d", meta.ActiveBodies)
	}
	if meta.TotalMass != 500 {
		t.Errorf("expected total mass 500, got %g", meta.TotalMass)
	}
}

func TestLoadTicks(t *testing.T) {
	s := New(t.TempDir())
	runID, err := s.Save(1, 0.1, 0, testFrames())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	rows, err := s.LoadTicks(runID)
	if err != nil {
		t.Fatalf("load ticks failed: %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows (3 ticks x 2 bodies), got %d", len(rows))
	}
	if len(rows[0]) != len(TickColumns) {
		t.Errorf("expected %d columns, got %d", len(TickColumns), len(rows[0]))
	}
	// row 0: tick 0, body 0, x=100
	if rows[0][0] != 0 || rows[0][1] != 0 || rows[0][2] != 100 {
		t.Errorf("unexpected first row: %v", rows[0])
	}
	// last row: inactive body flagged 0
	last := rows[len(rows)-1]
	if last[len(last)-1] != 0 {
		t.Error("inactive body not flagged in csv")
	}
}

func TestListEmpty(t *testing.T) {
	runs, err := New(t.TempDir() + "/missing").List()
	if err != nil {
		t.Fatalf("list on missing dir failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	s := New(t.TempDir())
	runID, err := s.Save(7, 0.1, 1, testFrames())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var buf bytes.Buffer
	if err := s.ExportJSON(&buf, runID); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if data.Meta.ID != runID {
		t.Errorf("expected id %s, got %s", runID, data.Meta.ID)
	}
	if len(data.Rows) != 6 {
		t.Errorf("expected 6 rows, got %d", len(data.Rows))
	}
	if len(data.Columns) != len(TickColumns) {
		t.Errorf("column mismatch: %v", data.Columns)
	}
}

func TestExportJSONMissingRun(t *testing.T) {
	s := New(t.TempDir())
	var buf bytes.Buffer
	if err := s.ExportJSON(&buf, "gravity_0"); err == nil {
		t.Error("expected error for missing run")
	}
}
