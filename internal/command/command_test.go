// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoValues(names ...string) HandlerFunc {
	return func(_ context.Context, args *Args) (string, error) {
		out := make([]string, 0, len(names))
		for _, n := range names {
			out = append(out, n+"="+args.String(n))
		}

		if rest := args.Rest(); len(rest) > 0 {
			out = append(out, "rest="+strings.Join(rest, ","))
		}

		return strings.Join(out, " "), nil
	}
}

func TestBuild(t *testing.T) {
	cmd, err := New("Add", echoValues("a", "b", "base")).
		Positional("a", "b").
		Keyword("base", "10").
		Description("Adds two numbers.").
		Build()
	require.NoError(t, err)

	d := cmd.Descriptor()
	assert.Equal(t, "Add", d.Name)
	assert.Equal(t, []string{"a", "b"}, d.Positional)
	assert.Equal(t, []Keyword{{Name: "base", Default: "10"}}, d.Keywords)
	assert.Equal(t, "Adds two numbers.", d.Description)
	assert.Equal(t, []string{"a", "b", "base"}, d.Parameters())
}

func TestDescriptorIsCopied(t *testing.T) {
	cmd := New("x", echoValues()).Positional("a").MustBuild()

	d := cmd.Descriptor()
	d.Positional[0] = "changed"

	assert.Equal(t, []string{"a"}, cmd.Descriptor().Positional)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
		wantErr []error
	}{
		{
			name:    "nil handler",
			builder: New("x", nil),
			wantErr: []error{ErrNilHandler},
		},
		{
			name:    "empty name",
			builder: New("", echoValues()),
			wantErr: []error{ErrEmptyName},
		},
		{
			name:    "name with space",
			builder: New("two words", echoValues()),
			wantErr: []error{ErrInvalidName},
		},
		{
			name:    "parameter with equals",
			builder: New("x", echoValues()).Positional("a=b"),
			wantErr: []error{ErrInvalidName},
		},
		{
			name:    "duplicate between positional and keyword",
			builder: New("x", echoValues()).Positional("a").Keyword("a", "1"),
			wantErr: []error{ErrDuplicateParameter},
		},
		{
			name:    "rest clashes with parameter",
			builder: New("x", echoValues()).Positional("a").Rest("a"),
			wantErr: []error{ErrDuplicateParameter},
		},
		{
			name:    "all problems reported together",
			builder: New("-x", nil).Positional(""),
			wantErr: []error{ErrNilHandler, ErrInvalidName, ErrEmptyName},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := tt.builder.Build()
			require.Error(t, err)
			assert.Nil(t, cmd)
			assert.ErrorIs(t, err, ErrInvalidDefinition)

			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestMustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		New("", nil).MustBuild()
	})
}

func TestInvokeBinding(t *testing.T) {
	cmd := New("add", echoValues("a", "b", "base")).
		Positional("a", "b").
		Keyword("base", "10").
		MustBuild()

	tests := []struct {
		name       string
		positional []string
		named      map[string]string
		want       string
		wantErr    error
	}{
		{
			name:       "positional only uses default",
			positional: []string{"1", "2"},
			want:       "a=1 b=2 base=10",
		},
		{
			name:       "keyword filled positionally",
			positional: []string{"1", "2", "16"},
			want:       "a=1 b=2 base=16",
		},
		{
			name:       "keyword filled by name",
			positional: []string{"1", "2"},
			named:      map[string]string{"base": "2"},
			want:       "a=1 b=2 base=2",
		},
		{
			name:       "positional parameter filled by name",
			positional: []string{"1"},
			named:      map[string]string{"b": "5"},
			want:       "a=1 b=5 base=10",
		},
		{
			name:       "too many values",
			positional: []string{"1", "2", "3", "4"},
			wantErr:    ErrTooManyArguments,
		},
		{
			name:       "missing positional",
			positional: []string{"1"},
			wantErr:    ErrMissingArgument,
		},
		{
			name:       "unknown keyword",
			positional: []string{"1", "2"},
			named:      map[string]string{"nope": "x"},
			wantErr:    ErrUnexpectedKeyword,
		},
		{
			name:       "value given twice",
			positional: []string{"1", "2"},
			named:      map[string]string{"a": "3"},
			wantErr:    ErrMultipleValues,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := cmd.Invoke(context.Background(), tt.positional, tt.named)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, out)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestInvokeRest(t *testing.T) {
	cmd := New("sum", echoValues("first")).
		Positional("first").
		Rest("numbers").
		MustBuild()

	out, err := cmd.Invoke(context.Background(), []string{"1", "2", "3"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "first=1 rest=2,3", out)
}

func TestInvokeReturnsHandlerError(t *testing.T) {
	wantErr := errors.New("boom")
	cmd := New("fail", func(context.Context, *Args) (string, error) {
		return "", wantErr
	}).MustBuild()

	_, err := cmd.Invoke(context.Background(), nil, nil)
	assert.Same(t, wantErr, err)
}

func TestArgsInt(t *testing.T) {
	args := NewArgs(map[string]string{"n": "42", "bad": "x"})

	n, err := args.Int("n")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = args.Int("bad")
	require.Error(t, err)

	_, err = args.Int("missing")
	assert.ErrorIs(t, err, ErrUndeclaredParameter)

	v, ok := args.Lookup("missing")
	assert.False(t, ok)
	assert.Empty(t, v)
}
