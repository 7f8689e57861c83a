package nyxc

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPrintTimings(t *testing.T) {
	buf := new(bytes.Buffer)
	PrintTimings(buf, []StageTiming{
		{Stage: "lex", Elapsed: time.Millisecond},
		{Stage: "parse", Elapsed: 2 * time.Millisecond, Err: errors.New("bad")},
	})
	out := buf.String()
	for _, want := range []string{"STAGE", "lex", "1ms", "parse", "failed", "TOTAL", "3ms"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
}

func TestRunRecordsStages(t *testing.T) {
	testScope(t).Call(func(
		run Run,
	) {
		result, err := run(context.Background(), Request{
			Input: writeSource(t, "f(1)"),
			Emit:  EmitAST,
		})
		if err != nil {
			t.Fatal(err)
		}
		var names []string
		for _, stage := range result.Stages {
			names = append(names, stage.Stage)
		}
		if strings.Join(names, " ") != "load lex parse" {
			t.Fatalf("got %v", names)
		}

		result, _ = run(context.Background(), Request{
			Input: writeSource(t, "f(,)"),
			Emit:  EmitC,
		})
		last := result.Stages[len(result.Stages)-1]
		if last.Stage != "parse" || last.Err == nil {
			t.Fatalf("got %+v", last)
		}
	})
}
