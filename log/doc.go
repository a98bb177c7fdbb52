// Package log provides a simplified logging interface based on [log/slog],
// configured with functional options applied at logger creation time.
//
// Diagnostics go to stderr by default so the profile report owns stdout.
//
//	log.Config(log.WithLevel(log.LevelDebug), log.WithPretty(true))
//	log.Info("input parsed", slog.Int("pairs", n))
package log
