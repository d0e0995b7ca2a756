// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/matt-FFFFFF/celery/internal/argparse"
	"github.com/matt-FFFFFF/celery/internal/command"
	"github.com/matt-FFFFFF/celery/internal/commandregistry"
	"github.com/matt-FFFFFF/celery/internal/ctxlog"
	"github.com/matt-FFFFFF/celery/internal/usage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const module = "main"

type recorder struct {
	calls      int
	positional []string
	named      map[string]string
}

func newFixture(t *testing.T, handlerErr error) (*commandregistry.Registry, *recorder) {
	t.Helper()

	rec := &recorder{}
	r, err := commandregistry.New(
		usage.RegisterHelp(module),
		func(r *commandregistry.Registry) error {
			r.Document(module, "Test program.")
			r.MustRegister(module, command.New("Record", func(_ context.Context, args *command.Args) (string, error) {
				rec.calls++
				rec.positional = append([]string{args.String("a")}, args.Rest()...)
				rec.named = map[string]string{"kw": args.String("kw")}

				return "recorded " + args.String("a") + " kw=" + args.String("kw"), handlerErr
			}).
				Positional("a").
				Keyword("kw", "default").
				Rest("more").
				Description("Records its arguments.").
				MustBuild())
			r.MustRegister(module, command.New("quiet", func(context.Context, *command.Args) (string, error) {
				rec.calls++
				return "", nil
			}).MustBuild())

			return nil
		},
	)
	require.NoError(t, err)

	return r, rec
}

func TestDispatchNoCommandShowsFullHelp(t *testing.T) {
	r, rec := newFixture(t, nil)
	buf := &bytes.Buffer{}

	for _, argv := range [][]string{{"prog"}, {}} {
		buf.Reset()
		err := New(r, module, WithWriter(buf)).Dispatch(context.Background(), argv)
		require.NoError(t, err)

		want := (&usage.Help{Program: "prog", Module: module, Registry: r}).Render()
		if len(argv) == 0 {
			want = (&usage.Help{Module: module, Registry: r}).Render()
		}

		assert.Equal(t, want, buf.String())
		assert.Contains(t, buf.String(), "Available commands:")
	}

	assert.Zero(t, rec.calls, "no command may be invoked")
}

func TestDispatchUnknownCommandShowsTargetedHelp(t *testing.T) {
	r, rec := newFixture(t, nil)
	buf := &bytes.Buffer{}

	err := New(r, module, WithWriter(buf)).Dispatch(context.Background(), []string{"prog", "Missing", "x"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "missing")
	assert.Contains(t, buf.String(), "not found")
	assert.True(t, strings.HasPrefix(buf.String(), "Usage: prog [command]\n"))
	assert.Zero(t, rec.calls)
}

func TestDispatchInvokesCommand(t *testing.T) {
	r, rec := newFixture(t, nil)
	buf := &bytes.Buffer{}

	err := New(r, module, WithWriter(buf)).Dispatch(context.Background(),
		[]string{"prog", "RECORD", "--kw", "3", "lala"})
	require.NoError(t, err)

	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, []string{"lala"}, rec.positional)
	assert.Equal(t, map[string]string{"kw": "3"}, rec.named)
	assert.Equal(t, "recorded lala kw=3\n", buf.String(), "output printed once with a newline")
}

func TestDispatchEmptyOutputPrintsNothing(t *testing.T) {
	r, rec := newFixture(t, nil)
	buf := &bytes.Buffer{}

	err := New(r, module, WithWriter(buf)).Dispatch(context.Background(), []string{"prog", "quiet"})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.calls)
	assert.Empty(t, buf.String())
}

func TestDispatchCommandErrorShowsHelpAndReturnsSameError(t *testing.T) {
	wantErr := errors.New("command failed")
	r, rec := newFixture(t, wantErr)
	buf := &bytes.Buffer{}

	err := New(r, module, WithWriter(buf)).Dispatch(context.Background(), []string{"prog", "record", "x"})
	require.Error(t, err)
	assert.Same(t, wantErr, err, "the command's error must be returned unchanged")
	assert.Equal(t, 1, rec.calls)

	full := (&usage.Help{Program: "prog", Module: module, Registry: r}).Render()
	assert.Equal(t, full, buf.String(), "full help is printed instead of the output")
}

func TestDispatchArityErrorShowsHelp(t *testing.T) {
	r, rec := newFixture(t, nil)
	buf := &bytes.Buffer{}

	err := New(r, module, WithWriter(buf)).Dispatch(context.Background(), []string{"prog", "record"})
	require.ErrorIs(t, err, command.ErrMissingArgument)
	assert.Zero(t, rec.calls)
	assert.Contains(t, buf.String(), "Available commands:")

	buf.Reset()
	err = New(r, module, WithWriter(buf)).Dispatch(context.Background(), []string{"prog", "quiet", "x"})
	require.ErrorIs(t, err, command.ErrTooManyArguments)
	assert.Contains(t, buf.String(), "Available commands:")
}

func TestDispatchInvalidArgumentFormat(t *testing.T) {
	r, rec := newFixture(t, nil)
	buf := &bytes.Buffer{}

	err := New(r, module, WithWriter(buf)).Dispatch(context.Background(), []string{"prog", "record", "a=b=c"})
	require.ErrorIs(t, err, argparse.ErrInvalidFormat)
	assert.Zero(t, rec.calls)
	assert.Empty(t, buf.String(), "tokenizer errors do not print help")
}

func TestDispatchPanicShowsHelpAndRepanics(t *testing.T) {
	r, err := commandregistry.New(func(r *commandregistry.Registry) error {
		_, err := r.Register(module, command.New("explode", func(context.Context, *command.Args) (string, error) {
			panic("kaboom")
		}).MustBuild())

		return err
	})
	require.NoError(t, err)

	buf := &bytes.Buffer{}

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = New(r, module, WithWriter(buf)).Dispatch(context.Background(), []string{"prog", "explode"})
	})
	assert.Contains(t, buf.String(), "  * explode\n")
}

func TestDispatchHelpCommand(t *testing.T) {
	r, _ := newFixture(t, nil)
	buf := &bytes.Buffer{}

	err := New(r, module, WithWriter(buf)).Dispatch(context.Background(), []string{"prog", "help", "record"})
	require.NoError(t, err)
	assert.Equal(t, "Usage: prog record <a> [kw=default]\n  - Records its arguments.\n", buf.String())

	buf.Reset()
	err = New(r, module, WithWriter(buf)).Dispatch(context.Background(), []string{"prog", "help"})
	require.NoError(t, err)

	full := (&usage.Help{Program: "prog", Module: module, Registry: r}).Render()
	assert.Equal(t, full, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestDispatchWriteError(t *testing.T) {
	r, _ := newFixture(t, nil)

	err := New(r, module, WithWriter(failingWriter{})).Dispatch(context.Background(), []string{"prog"})
	assert.ErrorIs(t, err, ErrWriteOutput)
}

func TestDispatchInvocationID(t *testing.T) {
	var ids []string

	r, err := commandregistry.New(func(r *commandregistry.Registry) error {
		r.MustRegister(module, command.New("id", func(ctx context.Context, _ *command.Args) (string, error) {
			id, ok := InvocationID(ctx)
			require.True(t, ok)

			ids = append(ids, id)

			return id, nil
		}).MustBuild())

		return nil
	})
	require.NoError(t, err)

	logs := &bytes.Buffer{}
	ctx := ctxlog.New(context.Background(), slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	out := &bytes.Buffer{}
	d := New(r, module, WithWriter(out))

	require.NoError(t, d.Dispatch(ctx, []string{"prog", "id"}))
	require.NoError(t, d.Dispatch(ctx, []string{"prog", "id"}))

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1], "every dispatch gets its own id")

	for _, id := range ids {
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Contains(t, out.String(), id+"\n")
		assert.Contains(t, logs.String(), "invocation="+id)
	}

	_, ok := InvocationID(context.Background())
	assert.False(t, ok)
}
