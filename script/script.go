// Package script runs tengo pattern generators. A generator receives the
// pattern count in the global `count` and must define `patterns`, an array
// of maps with optional `wait`, `column` and `row` keys:
//
//	patterns := []
//	for i := 0; i < count; i++ {
//		patterns = append(patterns, {wait: 4, column: i % 8, row: i / 8})
//	}
package script

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/animake/anim"
)

var ErrNoPatterns = errors.New("script: no patterns defined")

// Run compiles and runs src with count bound to `count`.
func Run(ctx context.Context, src []byte, count int) ([]anim.Pattern, error) {
	s := tengo.NewScript(src)
	if err := s.Add("count", count); err != nil {
		return nil, fmt.Errorf("script: bind count: %w", err)
	}
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	if err := compiled.RunContext(ctx); err != nil {
		return nil, fmt.Errorf("script: run: %w", err)
	}
	if !compiled.IsDefined("patterns") {
		return nil, ErrNoPatterns
	}
	items := compiled.Get("patterns").Array()
	if len(items) == 0 {
		return nil, ErrNoPatterns
	}

	out := make([]anim.Pattern, 0, len(items))
	for i, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("script: patterns[%d] is %T, want map", i, item)
		}
		p := anim.NewPattern()
		if v, ok := fields["wait"]; ok {
			if p.Wait, err = toFloat(v); err != nil {
				return nil, fmt.Errorf("script: patterns[%d].wait: %w", i, err)
			}
		}
		if v, ok := fields["column"]; ok {
			if p.Column, err = toInt(v); err != nil {
				return nil, fmt.Errorf("script: patterns[%d].column: %w", i, err)
			}
		}
		if v, ok := fields["row"]; ok {
			if p.Row, err = toInt(v); err != nil {
				return nil, fmt.Errorf("script: patterns[%d].row: %w", i, err)
			}
		}
		out = append(out, p)
	}
	return out, nil
}

// RunFile reads a generator from path and runs it.
func RunFile(ctx context.Context, path string, count int) ([]anim.Pattern, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	return Run(ctx, src, count)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, fmt.Errorf("want number, got %T", v)
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	}
	return 0, fmt.Errorf("want number, got %T", v)
}
