package gateway_test

import (
	"io"

	"golang.org/x/exp/slog"
)

func slogDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
