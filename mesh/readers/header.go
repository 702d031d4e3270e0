package readers

import (
	"strconv"
	"strings"

	"github.com/notargets/gomsh/mesh"
)

// header is a parsed "KIND=rest" line
type header struct {
	kind string
	rest string
	line string
	eq   bool // line contained '='
}

// parseHeader classifies a line, comments are not headers
func parseHeader(line string) (h header, ok bool) {
	if strings.HasPrefix(line, "#") {
		return
	}
	left, rest, eq := strings.Cut(line, "=")
	h = header{
		kind: strings.ToUpper(left),
		rest: rest,
		line: line,
		eq:   eq,
	}
	return h, true
}

// fields splits the header remainder about ';'
func (h header) fields() []string {
	return strings.Split(h.rest, ";")
}

// count reads the declared row count from the first field of the remainder
func (h header) count() (n int, err error) {
	return parseCount(h.kind, h.line, h.fields()[0])
}

// maxSegmentElems caps the entries (rows, or values for real arrays) a
// single segment may declare
const maxSegmentElems = 1 << 28

func parseCount(kind, line, s string) (n int, err error) {
	if n, err = strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return 0, formatErr(kind, line, err)
	}
	if n < 0 {
		return 0, formatErrf(kind, line, "negative count %d", n)
	}
	if n > maxSegmentElems {
		return 0, formatErrf(kind, line, "count %d exceeds limit %d", n, maxSegmentElems)
	}
	return
}

// segmentLoader decodes the segment opened by h, pulling any data lines
// from src and storing what it owns on msh.
type segmentLoader func(msh *mesh.Msh, src *lineSource, h header) error

var segmentLoaders = map[string]segmentLoader{
	"MSHID": loadMshID,
	"NDIMS": loadNDims,
	"RADII": loadRadii,
	"POINT": loadPoint,
	"POWER": func(msh *mesh.Msh, src *lineSource, h header) (err error) {
		msh.Power, err = decodeArray(src, h)
		return
	},
	"VALUE": func(msh *mesh.Msh, src *lineSource, h header) (err error) {
		msh.Value, err = decodeArray(src, h)
		return
	},
	"SLOPE": func(msh *mesh.Msh, src *lineSource, h header) (err error) {
		msh.Slope, err = decodeArray(src, h)
		return
	},
	"EDGE2": func(msh *mesh.Msh, src *lineSource, h header) (err error) {
		msh.Edge2, err = decodeCells[mesh.Edge2](src, h)
		return
	},
	"TRIA3": func(msh *mesh.Msh, src *lineSource, h header) (err error) {
		msh.Tria3, err = decodeCells[mesh.Tria3](src, h)
		return
	},
	"QUAD4": func(msh *mesh.Msh, src *lineSource, h header) (err error) {
		msh.Quad4, err = decodeCells[mesh.Quad4](src, h)
		return
	},
	"TRIA4": func(msh *mesh.Msh, src *lineSource, h header) (err error) {
		msh.Tria4, err = decodeCells[mesh.Tria4](src, h)
		return
	},
	"HEXA8": func(msh *mesh.Msh, src *lineSource, h header) (err error) {
		msh.Hexa8, err = decodeCells[mesh.Hexa8](src, h)
		return
	},
	"PYRA5": func(msh *mesh.Msh, src *lineSource, h header) (err error) {
		msh.Pyra5, err = decodeCells[mesh.Pyra5](src, h)
		return
	},
	"WEDG6": func(msh *mesh.Msh, src *lineSource, h header) (err error) {
		msh.Wedg6, err = decodeCells[mesh.Wedg6](src, h)
		return
	},
	"BOUND": func(msh *mesh.Msh, src *lineSource, h header) (err error) {
		msh.Bound, err = decodeBound(src, h)
		return
	},
	"COORD": loadCoord,
}

func loadMshID(msh *mesh.Msh, _ *lineSource, h header) error {
	if data := h.fields(); len(data) > 1 {
		msh.MshID = strings.ToLower(strings.TrimSpace(data[1]))
	}
	return nil
}

func loadNDims(msh *mesh.Msh, _ *lineSource, h header) (err error) {
	var nd int
	if nd, err = strconv.Atoi(strings.TrimSpace(h.rest)); err != nil {
		return formatErr(h.kind, h.line, err)
	}
	msh.NDims = nd
	return
}

func loadRadii(msh *mesh.Msh, _ *lineSource, h header) (err error) {
	var (
		rtag = h.fields()
		vals = make([]float64, len(rtag))
	)
	if len(rtag) != 1 && len(rtag) != 3 {
		return formatErrf(h.kind, h.line, "expected 1 or 3 values, got %d", len(rtag))
	}
	for i, s := range rtag {
		if vals[i], err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return formatErr(h.kind, h.line, err)
		}
	}
	if len(vals) == 1 {
		msh.Radii = []float64{vals[0], vals[0], vals[0]}
	} else {
		msh.Radii = vals
	}
	return
}
