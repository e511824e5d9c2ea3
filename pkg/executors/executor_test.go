package executors

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/ofx2qif/pkg/config"
	"github.com/yurifrl/ofx2qif/pkg/plan"
)

func writeStatements(t *testing.T, dir string, n int) *plan.Plan {
	t.Helper()
	p := &plan.Plan{IncludeMemos: true, Workers: 3}
	for i := 1; i <= n; i++ {
		var doc strings.Builder
		for j := 0; j < i; j++ {
			fmt.Fprintf(&doc, "<STMTTRN><DTPOSTED>2024010%d<TRNAMT>-%d.00<NAME>shop %d<MEMO>note</STMTTRN>\n", j+1, j+1, j)
		}
		name := filepath.Join(dir, fmt.Sprintf("s%d.qfx", i))
		if err := os.WriteFile(name, []byte(doc.String()), 0644); err != nil {
			t.Fatal(err)
		}
		p.Jobs = append(p.Jobs, plan.Job{Input: name})
	}
	return p
}

func TestApply(t *testing.T) {
	dir := t.TempDir()
	p := writeStatements(t, dir, 5)
	no := false
	p.Jobs[4].IncludeMemos = &no

	exec := New(log.Default(), config.New(""))
	changes, err := exec.Apply(context.Background(), p)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(changes) != 5 {
		t.Fatalf("expected 5 changes, got %d", len(changes))
	}
	for i, c := range changes {
		if c.Job != i+1 || c.Transactions != i+1 {
			t.Errorf("change %d: job=%d transactions=%d", i, c.Job, c.Transactions)
		}
		if _, err := os.Stat(c.Output); err != nil {
			t.Errorf("change %d: output missing: %v", i, err)
		}
	}
	if changes[3].MemoSuppressed || !changes[4].MemoSuppressed {
		t.Error("per-job include_memos not honoured")
	}

	var buf bytes.Buffer
	Render(&buf, changes)
	if !strings.Contains(buf.String(), "5 file(s), 15 transaction(s)") {
		t.Errorf("unexpected render output:\n%s", buf.String())
	}
}

func TestApplyStopsOnError(t *testing.T) {
	dir := t.TempDir()
	p := writeStatements(t, dir, 2)
	p.Jobs = append(p.Jobs, plan.Job{Input: filepath.Join(dir, "missing.qfx")})

	exec := New(log.Default(), config.New(""))
	if _, err := exec.Apply(context.Background(), p); err == nil {
		t.Error("expected error for missing input")
	}
}

func TestPlanWritesNothing(t *testing.T) {
	dir := t.TempDir()
	p := writeStatements(t, dir, 3)
	p.OutputDir = filepath.Join(dir, "out")

	exec := New(log.Default(), config.New(""))
	changes, err := exec.Plan(p)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(changes) != 3 || changes[2].Transactions != 3 {
		t.Errorf("unexpected changes %+v", changes)
	}
	if changes[0].Output != filepath.Join(dir, "out", "s1.qif") {
		t.Errorf("unexpected planned output %s", changes[0].Output)
	}
	if _, err := os.Stat(p.OutputDir); !os.IsNotExist(err) {
		t.Error("plan created output")
	}
}
