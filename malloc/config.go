package malloc

import s "github.com/prataprc/gosettings"

// Config carries options for the ambient layers built around Allocator --
// the CLI in cmd/poolinfo and the concurrency wrapper in package
// concurrent. Init itself takes no Config: the heap size, class limit and
// header length are compile-time constants, not runtime knobs.
type Config = s.Settings

// DefaultConfig returns the baseline settings consumed by this
// repository's ambient layers: info-level logging to stdout. "log.file"
// is set to the empty string, which package log takes to mean stdout;
// log.SetLogger indexes both keys unconditionally, so both must be
// present.
func DefaultConfig() Config {
	return s.Settings{
		"log.level": "info",
		"log.file":  "",
	}
}
