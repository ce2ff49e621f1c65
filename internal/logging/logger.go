// Package logging wires the job board's log pipeline: JSON records on
// stdout for every level, with ERROR and above also batched into the
// system_logs table once the database connection exists.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the stdout JSON logger. After the database connects,
// main swaps in a MultiHandler that adds the Postgres batch handler.
func Setup() {
	slog.SetDefault(slog.New(StdoutHandler()))
}

// StdoutHandler is the base JSON handler, shared by Setup and the
// post-connect fan-out so both stages log identically.
func StdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}
