package nyxc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/reusee/nyx/debugs"
	"github.com/reusee/nyx/logs"
	"github.com/reusee/nyx/nyxlang"
	"github.com/reusee/nyx/sources"
)

type Request struct {
	// Input is a file path, an http(s) URL, or "-" for stdin.
	Input   string
	Emit    Emit
	Inspect string
	Tap     bool
}

type Result struct {
	Source *nyxlang.Source
	Output nyxlang.Output
	// Text is the rendering of the last stage run, as selected by Emit.
	Text   string
	Stages []StageTiming
}

type StageTiming struct {
	Stage   string
	Elapsed time.Duration
	Err     error
}

type Run func(ctx context.Context, req Request) (Result, error)

func (Module) Run(
	load sources.Load,
	options nyxlang.GenerateOptions,
	newSpan logs.NewSpan,
	timeStage logs.TimeStage,
	inspect debugs.Inspect,
	tap debugs.Tap,
	logger logs.Logger,
) Run {
	return func(ctx context.Context, req Request) (result Result, err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			if err != nil {
				err = logs.WrapSpan(ctx, err)
			}
		}()

		begin := func(stage string) func(error) {
			logDone := timeStage(ctx, stage)
			start := time.Now()
			return func(err error) {
				logDone(err)
				result.Stages = append(result.Stages, StageTiming{
					Stage:   stage,
					Elapsed: time.Since(start),
					Err:     err,
				})
			}
		}

		done := begin("load")
		result.Source, err = load(ctx, req.Input)
		done(err)
		if err != nil {
			return
		}

		if req.Inspect != "" || req.Tap {
			defer func() {
				globals := stageGlobals(result, err)
				if req.Inspect != "" {
					if inspectErr := inspect(ctx, req.Inspect, globals); inspectErr != nil && err == nil {
						err = inspectErr
					}
				}
				if req.Tap {
					// the stage that produced or failed last
					tap(ctx, result.Stages[len(result.Stages)-1].Stage, globals)
				}
			}()
		}

		var text strings.Builder

		// lex
		done = begin("lex")
		tokens, diags := nyxlang.Lex(result.Source)
		result.Output.Tokens = tokens
		if len(diags) > 0 {
			err = diags
		}
		done(err)
		if err != nil {
			return
		}
		if req.Emit == EmitTokens {
			DumpTokens(&text, tokens)
			result.Text = text.String()
			return
		}

		// parse
		done = begin("parse")
		result.Output.Root, err = nyxlang.Parse(tokens)
		done(err)
		if err != nil {
			return
		}
		if req.Emit == EmitAST {
			DumpAST(&text, result.Output.Root)
			result.Text = text.String()
			return
		}

		// generate
		done = begin("generate")
		result.Output.C, err = nyxlang.Generate(result.Output.Root, options)
		done(err)
		if err != nil {
			return
		}
		result.Text = result.Output.C

		logger.InfoContext(ctx, "compiled",
			"source", result.Source.Name,
			"tokens", len(tokens),
			"statements", len(result.Output.Root.Block.Stmts),
		)
		return
	}
}

func stageGlobals(result Result, err error) map[string]any {
	src := result.Source
	globals := map[string]any{
		"name":   src.Name,
		"source": src.Content,
		"tokens": result.Output.Tokens,
		"ast":    result.Output.Root,
		"c":      result.Output.C,
		"snippet": func(start int, end int) string {
			return src.Text(nyxlang.Span{Start: start, End: end})
		},
	}

	diagnostics := []any{}
	var diags nyxlang.Diagnostics
	if errors.As(err, &diags) {
		for _, diag := range diags {
			span := diag.Pos()
			diagnostics = append(diagnostics, map[string]any{
				"message": diag.Error(),
				"line":    span.Line,
				"start":   span.Start,
				"end":     span.End,
			})
		}
	}
	globals["diagnostics"] = diagnostics

	return globals
}
