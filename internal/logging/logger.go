package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON stdout logger as the process default. main swaps in
// the database fan-out once a connection exists, so anything logged before
// that point goes to stdout only.
func Setup() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}
