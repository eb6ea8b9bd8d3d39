package services

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// SpoolBuffer accumulates an upload in memory and moves it to a temporary
// file once it grows past threshold. Close must be called on every path; it
// removes the temporary file.
type SpoolBuffer struct {
	fs        afero.Fs
	dir       string
	threshold int64

	mem  bytes.Buffer
	file afero.File
	size int64
}

func NewSpoolBuffer(fs afero.Fs, dir string, threshold int64) *SpoolBuffer {
	return &SpoolBuffer{
		fs:        fs,
		dir:       dir,
		threshold: threshold,
	}
}

func (b *SpoolBuffer) Write(p []byte) (int, error) {
	if b.file == nil && int64(b.mem.Len())+int64(len(p)) > b.threshold {
		if err := b.spill(); err != nil {
			return 0, err
		}
	}

	var (
		n   int
		err error
	)
	if b.file != nil {
		n, err = b.file.Write(p)
	} else {
		n, err = b.mem.Write(p)
	}
	b.size += int64(n)
	return n, err
}

func (b *SpoolBuffer) spill() error {
	f, err := afero.TempFile(b.fs, b.dir, "upload-*.part")
	if err != nil {
		return fmt.Errorf("create spool file: %w", err)
	}
	b.file = f

	if _, err := f.Write(b.mem.Bytes()); err != nil {
		return fmt.Errorf("spill to %s: %w", f.Name(), err)
	}
	b.mem = bytes.Buffer{}
	return nil
}

func (b *SpoolBuffer) Size() int64 {
	return b.size
}

func (b *SpoolBuffer) Spilled() bool {
	return b.file != nil
}

// Reader rewinds the buffer and returns a reader over everything written.
func (b *SpoolBuffer) Reader() (io.ReadSeeker, error) {
	if b.file == nil {
		return bytes.NewReader(b.mem.Bytes()), nil
	}
	if _, err := b.file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return b.file, nil
}

func (b *SpoolBuffer) Close() error {
	b.mem = bytes.Buffer{}
	if b.file == nil {
		return nil
	}

	name := b.file.Name()
	closeErr := b.file.Close()
	b.file = nil
	if err := b.fs.Remove(name); err != nil {
		return err
	}
	return closeErr
}
