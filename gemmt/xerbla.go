package gemmt

import (
	"fmt"
	"os"
)

// Xerbla is the diagnostic handler invoked when a call carries an
// invalid BLAS parameter. It receives the routine name and the 1-based
// position of the first offending parameter; the call then returns
// without touching C.
type Xerbla func(srname string, info int)

// defaultXerbla writes the reference-BLAS diagnostic line to stderr.
func defaultXerbla(srname string, info int) {
	fmt.Fprintf(os.Stderr, " ** On entry to %s parameter number %d had an illegal value\n", srname, info)
}

// PanicOnError is an Xerbla for callers who prefer the gonum
// convention of treating invalid arguments as programmer errors.
func PanicOnError(srname string, info int) {
	panic(fmt.Sprintf("relapack: %s: parameter number %d had an illegal value", srname, info))
}
