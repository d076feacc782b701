package interpreter

import "lox/interpreter-go/pkg/runtime"

// returnSignal threads a non-local return through statement execution as
// an error value. It unwinds through blocks and loops and is absorbed at
// the nearest call boundary; it must never escape to the host.
type returnSignal struct {
	value runtime.Value
}

func (returnSignal) Error() string {
	return "return"
}
