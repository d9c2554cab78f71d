package indenter

import (
	"fmt"
	"strings"
)

// Indenter builds multi-line renderings of nested structures, indenting one
// level per Nest call. Typical usage:
//
//	Indenter().Start("[").NestStringsSep(",", lines...).End("]")
type indenter struct {
	buffer string
	level  int
}

func Indenter() *indenter {
	return &indenter{}
}

func (i *indenter) indent() string {
	return strings.Repeat("  ", i.level)
}

func (i *indenter) Start(str string) *indenter {
	i.buffer = str
	return i
}

type stringableString string

func (s stringableString) String() string {
	return string(s)
}

func (i *indenter) NestStrings(strs ...string) *indenter {
	return i.NestStringsSep("", strs...)
}

func (i *indenter) NestStringsSep(sep string, strs ...string) *indenter {
	stringers := make([]fmt.Stringer, len(strs))
	for j, v := range strs {
		stringers[j] = stringableString(v)
	}
	return i.NestSep(sep, stringers...)
}

func (i *indenter) Nest(strs ...fmt.Stringer) *indenter {
	return i.NestSep("", strs...)
}

func (i *indenter) NestSep(sep string, strs ...fmt.Stringer) *indenter {
	if len(strs) == 1 {
		i.buffer += strs[0].String()
		return i
	}

	i.level++
	for j, str := range strs {
		i.buffer += "\n" + i.indent() + str.String()
		if j < len(strs)-1 {
			i.buffer += sep
		}
	}
	i.level--
	i.buffer += "\n"
	return i
}

func (i *indenter) NestThunked(strs ...func() string) *indenter {
	return i.NestThunkedSep("", strs...)
}

func (i *indenter) NestThunkedSep(sep string, strs ...func() string) *indenter {
	thunked := make([]fmt.Stringer, len(strs))
	for j, f := range strs {
		thunked[j] = stringableString(f())
	}
	return i.NestSep(sep, thunked...)
}

func (i *indenter) End(str string) string {
	var res string
	if len(i.buffer) > 0 && i.buffer[len(i.buffer)-1] == '\n' {
		res = i.buffer + i.indent() + str
	} else {
		res = i.buffer + str
	}
	i.buffer = ""
	return res
}
