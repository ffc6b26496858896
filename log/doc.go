// Package log provides structured logging handler construction for use with
// [log/slog], rendered through charm's logger.
//
// It supports multiple output formats ([FormatText], [FormatLogfmt], and
// [FormatJSON]) and severity levels ([LevelError], [LevelWarn], [LevelInfo],
// and [LevelDebug]). Use [NewHandler] to create a handler directly, or use
// [Config] with CLI flag integration via [github.com/spf13/pflag] and shell
// completion support via [github.com/spf13/cobra].
//
// Typical usage creates a [Config], registers flags, then installs the
// handler at startup so library warnings, such as the duplicate-parameter
// warning the CABO parser emits, land in the tool's log stream:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.Install(os.Stderr)
//
// A [Feed] fans out log lines to subscribers, which is how warnings are
// surfaced inside a Bubble Tea TUI without corrupting its alternate screen:
//
//	feed := log.NewFeed()
//	slog.SetDefault(slog.New(log.NewHandler(feed, log.LevelWarn, log.FormatText)))
//
//	tail := feed.Tail()
//	go func() {
//	    for line := range tail.C() {
//	        // Deliver line to the TUI.
//	    }
//	}()
//
// Combine it with [io.MultiWriter] to keep a copy on disk:
//
//	feed := log.NewFeed()
//	w := io.MultiWriter(logFile, feed)
//	handler := log.NewHandler(w, log.LevelInfo, log.FormatJSON)
package log
