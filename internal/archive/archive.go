// Package archive stores the leaf set of a quadtree cut in a compact .qtz file
//
// Layout: the 4 byte magic "QTZ1" followed by a zstd stream holding, big endian,
// width u16, height u16, depth u8, leaf count u32 and per leaf left, top, right,
// bottom as float32, R, G, B and depth as u8. Region edges of a tree no deeper
// than 8 over an image no wider than 65535 are dyadic and fit float32 exactly.
package archive

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/ecopia-map/quadtree_compressor/internal/data"
	"github.com/ecopia-map/quadtree_compressor/internal/geometry"
	"github.com/ecopia-map/quadtree_compressor/internal/quadtree"
)

var Magic = [4]byte{'Q', 'T', 'Z', '1'}

var (
	ErrInvalidMagic = errors.New("archive: invalid magic")
	ErrTruncated    = errors.New("archive: truncated payload")
)

type Archive struct {
	Width  int
	Height int
	Depth  int
	Leaves []quadtree.Leaf
}

type header struct {
	Width  uint16
	Height uint16
	Depth  uint8
	Count  uint32
}

type leafRecord struct {
	Left, Top, Right, Bottom float32
	R, G, B                  uint8
	Depth                    uint8
}

// Encode writes the leaves of a tree cut at depth over a width x height image
func Encode(w io.Writer, width int, height int, depth int, leaves []quadtree.Leaf) error {
	if width < 0 || width > math.MaxUint16 || height < 0 || height > math.MaxUint16 {
		return fmt.Errorf("archive: image size %dx%d out of range", width, height)
	}
	if depth < 0 || depth > math.MaxUint8 {
		return fmt.Errorf("archive: depth %d out of range", depth)
	}

	raw := new(bytes.Buffer)
	h := header{
		Width:  uint16(width),
		Height: uint16(height),
		Depth:  uint8(depth),
		Count:  uint32(len(leaves)),
	}
	if err := binary.Write(raw, binary.BigEndian, h); err != nil {
		return err
	}
	for _, leaf := range leaves {
		r, g, b, _ := leaf.Color.RGBA()
		rec := leafRecord{
			Left:   float32(leaf.Region.Left),
			Top:    float32(leaf.Region.Top),
			Right:  float32(leaf.Region.Right),
			Bottom: float32(leaf.Region.Bottom),
			R:      r,
			G:      g,
			B:      b,
			Depth:  uint8(leaf.Depth),
		}
		if err := binary.Write(raw, binary.BigEndian, rec); err != nil {
			return err
		}
	}

	if _, err := w.Write(Magic[:]); err != nil {
		return err
	}
	return encodeZstd(w, raw)
}

// Decode reads an archive written by Encode
func Decode(r io.Reader) (*Archive, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, ErrInvalidMagic
	}
	if magic != Magic {
		return nil, ErrInvalidMagic
	}

	plain, err := decodeZstd(r)
	if err != nil {
		return nil, err
	}
	payload := bytes.NewReader(plain)

	var h header
	if err := binary.Read(payload, binary.BigEndian, &h); err != nil {
		return nil, truncated(err)
	}

	// every record takes 20 bytes, refuse counts the payload cannot hold
	if int64(h.Count)*int64(binary.Size(leafRecord{})) > int64(payload.Len()) {
		return nil, ErrTruncated
	}

	a := &Archive{
		Width:  int(h.Width),
		Height: int(h.Height),
		Depth:  int(h.Depth),
		Leaves: make([]quadtree.Leaf, 0, h.Count),
	}
	for i := uint32(0); i < h.Count; i++ {
		var rec leafRecord
		if err := binary.Read(payload, binary.BigEndian, &rec); err != nil {
			return nil, truncated(err)
		}
		a.Leaves = append(a.Leaves, quadtree.Leaf{
			Region: geometry.NewRegion(float64(rec.Left), float64(rec.Top), float64(rec.Right), float64(rec.Bottom)),
			Color:  data.Color{R: int(rec.R), G: int(rec.G), B: int(rec.B)},
			Depth:  int(rec.Depth),
		})
	}

	return a, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

func encodeZstd(w io.Writer, raw *bytes.Buffer) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return err
	}
	if _, err := enc.Write(raw.Bytes()); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func decodeZstd(r io.Reader) ([]byte, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	plain, err := io.ReadAll(dec)
	if err != nil {
		return nil, truncated(err)
	}
	return plain, nil
}
