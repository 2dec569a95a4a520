package log

import (
	"context"
	"errors"
	"log/slog"
	"os"
)

func Example_basic() {
	logger := Make(os.Stdout)
	logger.Info("interpreter started", slog.Int("workers", 4))
}

func Example_configuration() {
	logger := Make(os.Stdout,
		WithLevel(LevelDebug),
		WithTimeLayout("RFC3339Nano"),
		WithCaller(true))

	logger.Debug("line error", slog.Any("error", errors.New("division by zero")))
}

func Example_levels() {
	logger := Make(os.Stdout, WithLevel(LevelWarn))

	logger.Debug("dispatching line to evaluator")
	logger.Info("line evaluated")
	logger.Warn("slow worker", slog.String("kind", "reduce"))
	logger.Error("line error", slog.String("error", "division by zero"))
}

func Example_textFormat() {
	logger := Make(os.Stdout, WithFormat(FormatText))
	logger.Info("line evaluated", slog.String("stmt", "out"))
}

func Example_withAttributes() {
	// Create a logger with persistent attributes that tag every line in a run.
	logger := Make(os.Stdout)
	logger = logger.With(slog.Int("line", 7))

	logger.Info("evaluating statement")
	logger.Debug("dispatch detail", slog.String("kind", "map"))
}

func Example_withContext() {
	type runIDKey struct{}

	// Create a context carrying a run identifier for a source file.
	ctx := context.WithValue(context.Background(), runIDKey{}, "run-789")

	logger := Make(os.Stdout)

	// Use context-aware logging methods.
	logger.InfoContext(ctx, "source run started")
	logger.DebugContext(ctx, "line error", slog.String("kind", "type"))
}
