package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestTimeStage(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		timeStage TimeStage,
		newSpan NewSpan,
	) {
		ctx, span := newSpan(context.Background(), "")
		timeStage(ctx, "lex")(nil)
		timeStage(ctx, "parse")(errors.New("boom"))

		out := buf.String()
		if !strings.Contains(out, "stage done") || !strings.Contains(out, "stage=lex") {
			t.Fatalf("got %s", out)
		}
		if !strings.Contains(out, "stage failed") || !strings.Contains(out, "error=boom") {
			t.Fatalf("got %s", out)
		}
		if strings.Count(out, "logs.span="+string(span)) < 3 {
			t.Fatalf("got %s", out)
		}
	})
}
