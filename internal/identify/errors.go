package identify

// ReadError reports that the disc could not be opened or its TOC could not
// be read. No identifiers are printed when it is returned.
type ReadError struct {
	Device string
	Err    error
}

func (e *ReadError) Error() string {
	return "libdiscid: " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
