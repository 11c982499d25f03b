package dense

// Panic messages for programmer errors, following the gonum BLAS
// convention of short fixed strings.
const (
	badTranspose = "dense: illegal transpose flag"
	badIncrement = "dense: increment must be positive"
	badType      = "dense: unsupported element type"

	shortA = "dense: insufficient length of a"
	shortB = "dense: insufficient length of b"
	shortC = "dense: insufficient length of c"
	shortX = "dense: insufficient length of x"
	shortY = "dense: insufficient length of y"
)
