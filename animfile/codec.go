package animfile

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/milk9111/animake/anim"
)

// Catalog files use the byte order of the machine that wrote them.
var byteOrder = binary.NativeEndian

// Layout, in order:
//
//	int32 textureNameLength, textureName bytes
//	int32 clipCount
//	  int32 nameLength, name bytes
//	  float32 offsetX, offsetY, width, height
//	  int8 loop
//	  int32 patternCount
//	    float32 wait, int32 column, int32 row
//	int32 textPathLength, textPath bytes

// Encode writes cat in the .anim layout. Real values are narrowed to float32.
func Encode(w io.Writer, cat *anim.Catalog) error {
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("animfile: encode: %w", err)
	}
	bw := newWriter(w)
	bw.writeString(cat.TextureFile)
	bw.writeInt32(len(cat.Clips))
	for i, clip := range cat.Clips {
		bw.writeString(cat.Names[i])
		bw.writeFloat32(clip.OffsetX)
		bw.writeFloat32(clip.OffsetY)
		bw.writeFloat32(clip.Width)
		bw.writeFloat32(clip.Height)
		var loop int8
		if clip.Loop {
			loop = 1
		}
		bw.write(loop)
		bw.writeInt32(len(clip.Patterns))
		for _, p := range clip.Patterns {
			bw.writeFloat32(p.Wait)
			bw.writeInt32(p.Column)
			bw.writeInt32(p.Row)
		}
	}
	bw.writeString(cat.TextPath)
	if bw.err != nil {
		return fmt.Errorf("animfile: encode: %w", bw.err)
	}
	return nil
}

// Decode reads a catalog in the .anim layout. A short read at any field
// fails with ErrTruncated and no partial catalog is returned.
func Decode(r io.Reader) (*anim.Catalog, error) {
	br := newReader(r)
	cat := &anim.Catalog{}

	cat.TextureFile = br.readString("texture name")
	clipCount := br.readCount("clip count")
	for i := 0; i < clipCount && br.err == nil; i++ {
		name := br.readString("clip name")
		clip := anim.Clip{
			OffsetX: br.readFloat32("offset x"),
			OffsetY: br.readFloat32("offset y"),
			Width:   br.readFloat32("width"),
			Height:  br.readFloat32("height"),
		}
		var loop int8
		br.read("loop flag", &loop)
		clip.Loop = loop != 0

		patternCount := br.readCount("pattern count")
		clip.Patterns = make([]anim.Pattern, 0, min(patternCount, anim.DefaultPatternCount))
		for j := 0; j < patternCount && br.err == nil; j++ {
			p := anim.Pattern{Wait: br.readFloat32("pattern wait")}
			p.Column = int(br.readInt32("pattern column"))
			p.Row = int(br.readInt32("pattern row"))
			clip.Patterns = append(clip.Patterns, p)
		}
		cat.Append(name, clip)
	}
	cat.TextPath = br.readString("text path")

	if br.err != nil {
		return nil, br.err
	}
	return cat, nil
}

// EncodeFile encodes cat and writes it to path. The payload is built in
// memory first so a failed encode never leaves a partial file.
func EncodeFile(path string, cat *anim.Catalog) error {
	var buf bytes.Buffer
	if err := Encode(&buf, cat); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStreamOpen, path, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("animfile: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("animfile: close %s: %w", path, err)
	}
	return nil
}

// DecodeFile opens path and decodes the catalog it holds.
func DecodeFile(path string) (*anim.Catalog, error) {
	f, err := openRegular(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cat, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("animfile: decode %s: %w", path, err)
	}
	return cat, nil
}

// openRegular opens path for reading and rejects directories, which
// os.Open happily returns on most platforms.
func openRegular(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStreamOpen, path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrStreamOpen, path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrStreamOpen, path)
	}
	return f, nil
}

// writer remembers the first error so Encode reads as a flat field list.
type writer struct {
	w   io.Writer
	err error
}

func newWriter(w io.Writer) *writer {
	return &writer{w: w}
}

func (w *writer) write(v any) {
	if w.err != nil {
		return
	}
	w.err = binary.Write(w.w, byteOrder, v)
}

func (w *writer) writeInt32(v int) {
	w.write(int32(v))
}

func (w *writer) writeFloat32(v float64) {
	w.write(float32(v))
}

func (w *writer) writeString(s string) {
	w.writeInt32(len(s))
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// reader mirrors writer: after the first failure every read is a no-op that
// returns the zero value.
type reader struct {
	r   io.Reader
	err error
}

func newReader(r io.Reader) *reader {
	return &reader{r: r}
}

func (r *reader) fail(field string, err error) {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		r.err = fmt.Errorf("%w: %s", ErrTruncated, field)
		return
	}
	r.err = fmt.Errorf("animfile: read %s: %w", field, err)
}

func (r *reader) read(field string, v any) {
	if r.err != nil {
		return
	}
	if err := binary.Read(r.r, byteOrder, v); err != nil {
		r.fail(field, err)
	}
}

func (r *reader) readInt32(field string) int32 {
	var v int32
	r.read(field, &v)
	return v
}

func (r *reader) readFloat32(field string) float64 {
	var v float32
	r.read(field, &v)
	return float64(v)
}

// readCount reads a length or count prefix and rejects negative values.
func (r *reader) readCount(field string) int {
	n := r.readInt32(field)
	if r.err == nil && n < 0 {
		r.err = fmt.Errorf("%w: negative %s %d", ErrMalformed, field, n)
		return 0
	}
	return int(n)
}

// readString copies at most the prefixed length, growing the buffer as bytes
// arrive so a corrupt prefix cannot force a huge allocation.
func (r *reader) readString(field string) string {
	n := r.readCount(field + " length")
	if r.err != nil || n == 0 {
		return ""
	}
	var sb strings.Builder
	copied, err := io.CopyN(&sb, r.r, int64(n))
	if err != nil {
		r.fail(field, err)
		return ""
	}
	if copied != int64(n) {
		r.fail(field, io.ErrUnexpectedEOF)
		return ""
	}
	return sb.String()
}
