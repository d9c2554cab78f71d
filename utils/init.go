package utils

import (
	"fmt"
	"os"
	"strings"
)

type options struct {
	noColorize bool
	verbose    bool
}

var opts = options{
	// Honor the NO_COLOR convention.
	noColorize: os.Getenv("NO_COLOR") != "",
}

// Opts exposes the package-wide option set.
func Opts() *options {
	return &opts
}

func (o *options) Verbose() bool {
	return o.verbose
}

func (o *options) SetVerbose(on bool) {
	o.verbose = on
}

func (o *options) Colorize() bool {
	return !o.noColorize
}

func (o *options) SetColorize(on bool) {
	o.noColorize = !on
}

// CanColorize wraps a color Sprint function such that it degrades to plain
// formatting when colorization is disabled.
func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}
