// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package mathcmd

import (
	"context"
	"errors"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/matt-FFFFFF/celery/internal/command"
	"github.com/matt-FFFFFF/celery/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

var (
	// ErrExpression is returned when an expression cannot be parsed or evaluated.
	ErrExpression = errors.New("invalid expression")
	// ErrUnknownResult is returned when an expression does not produce a known value.
	ErrUnknownResult = errors.New("expression result is not known")
)

var variables = []string{"x", "y", "z"}

var functions = map[string]function.Function{
	"abs":    stdlib.AbsoluteFunc,
	"ceil":   stdlib.CeilFunc,
	"floor":  stdlib.FloorFunc,
	"format": stdlib.FormatFunc,
	"lower":  stdlib.LowerFunc,
	"max":    stdlib.MaxFunc,
	"min":    stdlib.MinFunc,
	"upper":  stdlib.UpperFunc,
}

func eval(ctx context.Context, args *command.Args) (string, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(args.String("expr")), "expr", hcl.InitialPos)
	if diags.HasErrors() {
		return "", errors.Join(ErrExpression, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: make(map[string]cty.Value, len(variables)),
		Functions: functions,
	}

	for _, name := range variables {
		evalCtx.Variables[name] = toValue(args.String(name))
	}

	ctxlog.Debug(ctx, "evaluating expression", "variables", len(expr.Variables()))

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", errors.Join(ErrExpression, diags)
	}

	return render(val)
}

// toValue treats anything that parses as a number as one and everything else as a string.
func toValue(s string) cty.Value {
	if n, err := cty.ParseNumberVal(s); err == nil {
		return n
	}

	return cty.StringVal(s)
}

func render(val cty.Value) (string, error) {
	if !val.IsWhollyKnown() {
		return "", ErrUnknownResult
	}

	if val.IsNull() {
		return "null", nil
	}

	switch val.Type() {
	case cty.String:
		return val.AsString(), nil
	case cty.Number:
		return val.AsBigFloat().Text('f', -1), nil
	}

	out, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return "", errors.Join(ErrExpression, err)
	}

	return string(out), nil
}
