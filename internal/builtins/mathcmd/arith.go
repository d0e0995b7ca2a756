// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package mathcmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/matt-FFFFFF/celery/internal/command"
)

// ErrInvalidNumber is returned when an argument is not an integer.
var ErrInvalidNumber = errors.New("invalid number")

func parseInt(name, s string, base int) (int64, error) {
	i, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q in base %d", ErrInvalidNumber, name, s, base)
	}

	return i, nil
}

func add(_ context.Context, args *command.Args) (string, error) {
	base, err := args.Int("base")
	if err != nil {
		return "", err
	}

	if base < 2 || base > 36 {
		return "", fmt.Errorf("%w: base must be between 2 and 36, got %d", ErrInvalidNumber, base)
	}

	a, err := parseInt("a", args.String("a"), base)
	if err != nil {
		return "", err
	}

	b, err := parseInt("b", args.String("b"), base)
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(a+b, base), nil
}

func xor(_ context.Context, args *command.Args) (string, error) {
	a, err := parseInt("a", args.String("a"), 10)
	if err != nil {
		return "", err
	}

	b, err := parseInt("b", args.String("b"), 10)
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(a^b, 10), nil
}

func sum(_ context.Context, args *command.Args) (string, error) {
	var total int64

	for i, s := range args.Rest() {
		n, err := parseInt(fmt.Sprintf("numbers[%d]", i), s, 10)
		if err != nil {
			return "", err
		}

		total += n
	}

	return strconv.FormatInt(total, 10), nil
}
