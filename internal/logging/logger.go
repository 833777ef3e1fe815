package logging

import (
	"log/slog"
	"os"
)

// Setup points the default slog logger at stdout as JSON. Both the API
// server and gainablectl call this first; main later swaps in a MultiHandler
// once the database connection for the Postgres handler exists.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
