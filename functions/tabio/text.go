package tabio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/on-the-ground/tabulated_go/functions"
)

// WriteText writes f in the text layout: the count on the first line and one
// "x y" pair per following line.
func WriteText(w io.Writer, f functions.TabulatedFunction) error {
	points := f.Points()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(points)); err != nil {
		return err
	}
	for _, p := range points {
		line := strconv.FormatFloat(p.X, 'g', -1, 64) + " " + strconv.FormatFloat(p.Y, 'g', -1, 64) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadText decodes one function in the text layout from r.
// Line breaks carry no meaning; tokens only need to be whitespace separated.
func ReadText(r io.Reader) (*functions.ArrayTabulatedFunction, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (float64, error) {
		if !sc.Scan() {
			err := sc.Err()
			if err == nil {
				err = io.ErrUnexpectedEOF
			}
			return 0, fmt.Errorf("reading %s: %w", what, err)
		}
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", what, err)
		}
		return v, nil
	}

	c, err := next("point count")
	if err != nil {
		return nil, malformed(err)
	}
	if c != math.Trunc(c) || c < 0 || c > math.MaxInt32 {
		return nil, malformed(fmt.Errorf("point count %v is not a non-negative int32", c))
	}
	count := int(c)

	points := make([]functions.Point, 0, min(count, maxPrealloc))
	for i := 0; i < count; i++ {
		x, err := next(fmt.Sprintf("x of point %d", i))
		if err != nil {
			return nil, malformed(err)
		}
		y, err := next(fmt.Sprintf("y of point %d", i))
		if err != nil {
			return nil, malformed(err)
		}
		points = append(points, functions.Point{X: x, Y: y})
	}
	return build(points)
}
