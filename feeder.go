package xmlpick

import "io"

// feeder turns a byte source into a bounded sequence of chunk reads
// for the tokenizer: each refill pulls at most chunkSize bytes from
// the source, and no further chunks are pulled once the dispatcher's
// continue flag is cleared. It implements io.ByteReader so the
// decoder consumes it without adding its own read-ahead buffer,
// which keeps the line counter honest.
type feeder struct {
	src    io.Reader
	owner  *Reader
	buf    []byte
	pos    int
	n      int
	line   int
	srcErr error
}

func newFeeder(src io.Reader, chunkSize int, owner *Reader) *feeder {
	return &feeder{
		src:   src,
		owner: owner,
		buf:   make([]byte, chunkSize),
		line:  1,
	}
}

func (f *feeder) ReadByte() (byte, error) {
	if f.pos >= f.n {
		if err := f.fill(); err != nil {
			return 0, err
		}
	}
	b := f.buf[f.pos]
	f.pos++
	if b == '\n' {
		f.line++
	}
	return b, nil
}

func (f *feeder) Read(p []byte) (int, error) {
	if f.pos >= f.n {
		if err := f.fill(); err != nil {
			return 0, err
		}
	}
	n := copy(p, f.buf[f.pos:f.n])
	for _, b := range p[:n] {
		if b == '\n' {
			f.line++
		}
	}
	f.pos += n
	return n, nil
}

func (f *feeder) fill() error {
	if f.srcErr != nil {
		return f.srcErr
	}
	if !f.owner.keepGoing {
		// Stopped early: the stream may have more data, but we are
		// done with it. Not an error.
		f.srcErr = io.EOF
		return f.srcErr
	}
	for {
		n, err := f.src.Read(f.buf)
		if n > 0 {
			f.pos, f.n = 0, n
			if err != nil {
				f.srcErr = err
			}
			return nil
		}
		if err != nil {
			f.srcErr = err
			return err
		}
	}
}

// Line reports the 1-based line number of the byte about to be read.
func (f *feeder) Line() int {
	return f.line
}

// Err reports the terminal source error, if any.
func (f *feeder) Err() error {
	return f.srcErr
}
