// Package profile adds runtime profiling capabilities to CLI applications.
//
// It supports CPU, heap, allocs, goroutine, block, and mutex profiles through
// command-line flags. Use [Config.RegisterFlags] to add CLI flags and
// [Config.RegisterCompletions] to wire up shell completions.
//
// Typical usage creates a [Config], registers flags, then brackets the work
// with a [Profiler]:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.Flags())
//	cfg.RegisterCompletions(rootCmd)
//
//	prof := cfg.NewProfiler()
//
//	err := prof.Start()
//	// ... parse and render ...
//	stopErr := prof.Stop()
//
// Start and Stop are no-ops unless a profile was requested, so the bracket
// can stay in place unconditionally. Users enable profiling via flags like
// --cpu-profile=cpu.prof.
package profile
