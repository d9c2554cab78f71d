package lattice

import (
	"errors"

	"github.com/fatih/color"

	"github.com/fixpoint-dk/absint/utils"
)

var colorize = struct {
	Lattice func(...interface{}) string
	Element func(...interface{}) string
	Const   func(...interface{}) string
	Key     func(...interface{}) string
}{
	Lattice: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
	Element: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Const: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiWhite).SprintFunc())(is...)
	},
	Key: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
}

var (
	errUnsupportedOperation = errors.New("UnsupportedOperationError")
	errInternal             = errors.New("internal error")
)
