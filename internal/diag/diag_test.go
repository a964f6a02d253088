package diag_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kestrel-runtime/ecs"
	"github.com/kestrel-runtime/ecs/internal/diag"
)

type widget struct{ n int }

func TestFormatterPrintSchedulerRendersSystemsAndAccesses(t *testing.T) {
	s := ecs.NewScheduler()
	defer s.Close()

	ecs.AddResource(s, widget{})
	s.AddSystem(ecs.PhaseTick, ecs.NewSystem1[ecs.Write[widget]](
		"update_widget",
		func(ecs.Write[widget]) {},
	))

	var buf bytes.Buffer
	f := diag.NewFormatter(&buf)
	if err := f.PrintScheduler(s); err != nil {
		t.Fatalf("print scheduler: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "update_widget") {
		t.Fatalf("expected output to mention system name, got:\n%s", out)
	}
	if !strings.Contains(out, "widget") {
		t.Fatalf("expected output to mention the written resource type, got:\n%s", out)
	}
}

func TestFormatterPrintSchedulerEmptyScheduler(t *testing.T) {
	s := ecs.NewScheduler()
	defer s.Close()

	var buf bytes.Buffer
	f := diag.NewFormatter(&buf)
	if err := f.PrintScheduler(s); err != nil {
		t.Fatalf("print scheduler: %v", err)
	}
}
