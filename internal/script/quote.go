package script

import "github.com/alessio/shellescape"

// Quote returns s as a single POSIX shell word. Strings made only of
// [A-Za-z0-9_@%+=:,./-] are returned unchanged, everything else is single quoted.
func Quote(s string) string {
	return shellescape.Quote(s)
}
