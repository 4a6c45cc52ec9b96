package tabio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/on-the-ground/tabulated_go/functions"
)

// WriteBinary writes f in the binary layout.
func WriteBinary(w io.Writer, f functions.TabulatedFunction) error {
	points := f.Points()
	if len(points) > math.MaxInt32 {
		return fmt.Errorf("cannot encode %d points in an int32 count", len(points))
	}

	bw := bufio.NewWriter(w)
	var buf [16]byte
	binary.BigEndian.PutUint32(buf[:4], uint32(int32(len(points))))
	if _, err := bw.Write(buf[:4]); err != nil {
		return err
	}
	for _, p := range points {
		binary.BigEndian.PutUint64(buf[0:8], math.Float64bits(p.X))
		binary.BigEndian.PutUint64(buf[8:16], math.Float64bits(p.Y))
		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadBinary decodes one function in the binary layout from r.
// Bytes after the last point are left unread.
func ReadBinary(r io.Reader) (*functions.ArrayTabulatedFunction, error) {
	var buf [16]byte
	if _, err := io.ReadFull(r, buf[:4]); err != nil {
		return nil, malformed(fmt.Errorf("reading point count: %w", err))
	}
	count := int32(binary.BigEndian.Uint32(buf[:4]))
	if count < 0 {
		return nil, malformed(fmt.Errorf("negative point count %d", count))
	}

	points := make([]functions.Point, 0, min(int(count), maxPrealloc))
	for i := 0; i < int(count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, malformed(fmt.Errorf("reading point %d of %d: %w", i, count, err))
		}
		points = append(points, functions.Point{
			X: math.Float64frombits(binary.BigEndian.Uint64(buf[0:8])),
			Y: math.Float64frombits(binary.BigEndian.Uint64(buf[8:16])),
		})
	}
	return build(points)
}
