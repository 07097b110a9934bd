package animfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/animake/anim"
)

func walkCatalog() *anim.Catalog {
	return &anim.Catalog{
		TextureFile: "hero.png",
		Names:       []string{"Walk"},
		Clips: []anim.Clip{{
			Width: 32, Height: 32, Loop: true,
			Patterns: []anim.Pattern{{Wait: 5, Column: 0, Row: 0}, {Wait: 5, Column: 1, Row: 0}},
		}},
		TextPath: "hero.txt",
	}
}

func narrow(v float64) float64 {
	return float64(float32(v))
}

// assertCatalogsMatch compares with float32 tolerance on real fields and
// exact equality everywhere else.
func assertCatalogsMatch(t *testing.T, want, got *anim.Catalog) {
	t.Helper()
	if got.TextureFile != want.TextureFile || got.TextPath != want.TextPath {
		t.Fatalf("paths differ: want %q/%q, got %q/%q", want.TextureFile, want.TextPath, got.TextureFile, got.TextPath)
	}
	if len(got.Clips) != len(want.Clips) || len(got.Names) != len(want.Names) {
		t.Fatalf("counts differ: want %d clips, got %d", len(want.Clips), len(got.Clips))
	}
	for i := range want.Clips {
		w, g := want.Clips[i], got.Clips[i]
		if got.Names[i] != want.Names[i] {
			t.Fatalf("clip %d: name want %q, got %q", i, want.Names[i], got.Names[i])
		}
		if g.OffsetX != narrow(w.OffsetX) || g.OffsetY != narrow(w.OffsetY) ||
			g.Width != narrow(w.Width) || g.Height != narrow(w.Height) || g.Loop != w.Loop {
			t.Fatalf("clip %d: geometry want %+v, got %+v", i, w, g)
		}
		if len(g.Patterns) != len(w.Patterns) {
			t.Fatalf("clip %d: want %d patterns, got %d", i, len(w.Patterns), len(g.Patterns))
		}
		for j := range w.Patterns {
			wp := w.Patterns[j]
			wp.Wait = narrow(wp.Wait)
			if g.Patterns[j] != wp {
				t.Fatalf("clip %d pattern %d: want %+v, got %+v", i, j, wp, g.Patterns[j])
			}
		}
	}
}

func TestEncodeLayout(t *testing.T) {
	var want bytes.Buffer
	put := func(v any) {
		if err := binary.Write(&want, binary.NativeEndian, v); err != nil {
			t.Fatalf("build expected: %v", err)
		}
	}
	put(int32(8))
	want.WriteString("hero.png")
	put(int32(1))
	put(int32(4))
	want.WriteString("Walk")
	put([]float32{0, 0, 32, 32})
	put(int8(1))
	put(int32(2))
	put(float32(5))
	put([]int32{0, 0})
	put(float32(5))
	put([]int32{1, 0})
	put(int32(8))
	want.WriteString("hero.txt")

	var got bytes.Buffer
	if err := Encode(&got, walkCatalog()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(got.Bytes(), want.Bytes()) {
		t.Fatalf("layout mismatch\nwant % x\ngot  % x", want.Bytes(), got.Bytes())
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		cat  *anim.Catalog
	}{
		{"walk", walkCatalog()},
		{
			"lossy_reals",
			&anim.Catalog{
				TextureFile: "sheets/enemy.png",
				Names:       []string{"Idle", "Run", "Idle"},
				Clips: []anim.Clip{
					{OffsetX: 0.1, OffsetY: 1.0 / 3.0, Width: 12.7, Height: 99.99, Patterns: []anim.Pattern{{Wait: 0.3, Column: 3, Row: 1024}}},
					anim.NewClip(),
					{Loop: true, Patterns: []anim.Pattern{}},
				},
			},
		},
		{"default", anim.NewCatalog("NewAnimation1")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, c.cat); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			assertCatalogsMatch(t, c.cat, got)
		})
	}
}

func TestDecodeTruncatedAtEveryPrefix(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, walkCatalog()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	full := buf.Bytes()
	for n := 0; n < len(full); n++ {
		cat, err := Decode(bytes.NewReader(full[:n]))
		if !errors.Is(err, ErrTruncated) {
			t.Fatalf("prefix %d: expected ErrTruncated, got %v", n, err)
		}
		if cat != nil {
			t.Fatalf("prefix %d: partial catalog returned", n)
		}
	}
}

func TestDecodeNegativePrefix(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.NativeEndian, int32(0))
	binary.Write(&buf, binary.NativeEndian, int32(-3))
	if _, err := Decode(&buf); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestDecodeHugeLengthIsTruncated(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.NativeEndian, int32(1<<30))
	buf.WriteString("short")
	if _, err := Decode(&buf); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestEncodeRejectsInvalidCatalog(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, &anim.Catalog{}); !errors.Is(err, anim.ErrEmpty) {
		t.Fatalf("expected anim.ErrEmpty, got %v", err)
	}
}

func TestFileOpenFailures(t *testing.T) {
	dir := t.TempDir()

	t.Run("decode_missing", func(t *testing.T) {
		_, err := DecodeFile(filepath.Join(dir, "missing.anim"))
		if !errors.Is(err, ErrStreamOpen) {
			t.Fatalf("expected ErrStreamOpen, got %v", err)
		}
	})
	t.Run("decode_directory", func(t *testing.T) {
		_, err := DecodeFile(dir)
		if !errors.Is(err, ErrStreamOpen) {
			t.Fatalf("expected ErrStreamOpen, got %v", err)
		}
	})
	t.Run("encode_into_missing_dir", func(t *testing.T) {
		err := EncodeFile(filepath.Join(dir, "nope", "x.anim"), walkCatalog())
		if !errors.Is(err, ErrStreamOpen) {
			t.Fatalf("expected ErrStreamOpen, got %v", err)
		}
	})
	t.Run("decode_truncated_file_is_not_open_error", func(t *testing.T) {
		p := filepath.Join(dir, "short.anim")
		if err := os.WriteFile(p, []byte{1, 0}, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		_, err := DecodeFile(p)
		if !errors.Is(err, ErrTruncated) || errors.Is(err, ErrStreamOpen) {
			t.Fatalf("expected only ErrTruncated, got %v", err)
		}
	})
}

func TestFileRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "walk.anim")
	if err := EncodeFile(p, walkCatalog()); err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}
	got, err := DecodeFile(p)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	assertCatalogsMatch(t, walkCatalog(), got)
}
