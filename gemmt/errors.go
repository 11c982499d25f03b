package gemmt

// Panic messages for slice-length programmer errors, gonum-style.
const (
	shortA = "relapack: insufficient length of a"
	shortB = "relapack: insufficient length of b"
	shortC = "relapack: insufficient length of c"
)
