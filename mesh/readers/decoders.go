package readers

import (
	"strconv"
	"strings"

	"github.com/notargets/gomsh/mesh"
)

// splitRow splits a data line about ';' and checks the field count
func splitRow(kind, line string, want int) (fields []string, err error) {
	fields = strings.Split(line, ";")
	if len(fields) != want {
		err = formatErrf(kind, line, "expected %d fields, got %d", want, len(fields))
	}
	return
}

func parseInts(kind, line string, fields []string, out []int) (err error) {
	for i, s := range fields {
		if out[i], err = strconv.Atoi(strings.TrimSpace(s)); err != nil {
			return formatErr(kind, line, err)
		}
	}
	return
}

func parseFloats(kind, line string, fields []string, out []float64) (err error) {
	for i, s := range fields {
		if out[i], err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return formatErr(kind, line, err)
		}
	}
	return
}

func loadPoint(msh *mesh.Msh, src *lineSource, h header) (err error) {
	switch msh.NDims {
	case 2:
		msh.Vert2, err = decodeVert2(src, h)
	case 3:
		msh.Vert3, err = decodeVert3(src, h)
	default:
		err = formatErrf(h.kind, h.line, "unsupported NDIMS %d", msh.NDims)
	}
	return
}

func decodeVert2(src *lineSource, h header) (verts []mesh.Vert2, err error) {
	var (
		n      int
		tag    [1]int
		fields []string
	)
	if n, err = h.count(); err != nil {
		return
	}
	verts = make([]mesh.Vert2, n)
	for i := range verts {
		line, ok := src.next()
		if !ok {
			src.truncated(h.kind, i, n)
			return
		}
		if fields, err = splitRow(h.kind, line, 3); err != nil {
			return
		}
		if err = parseFloats(h.kind, line, fields[:2], verts[i].Coord[:]); err != nil {
			return
		}
		if err = parseInts(h.kind, line, fields[2:], tag[:]); err != nil {
			return
		}
		verts[i].IDtag = tag[0]
	}
	return
}

func decodeVert3(src *lineSource, h header) (verts []mesh.Vert3, err error) {
	var (
		n      int
		tag    [1]int
		fields []string
	)
	if n, err = h.count(); err != nil {
		return
	}
	verts = make([]mesh.Vert3, n)
	for i := range verts {
		line, ok := src.next()
		if !ok {
			src.truncated(h.kind, i, n)
			return
		}
		if fields, err = splitRow(h.kind, line, 4); err != nil {
			return
		}
		if err = parseFloats(h.kind, line, fields[:3], verts[i].Coord[:]); err != nil {
			return
		}
		if err = parseInts(h.kind, line, fields[3:], tag[:]); err != nil {
			return
		}
		verts[i].IDtag = tag[0]
	}
	return
}

// cell is satisfied by pointers to the fixed arity cell types
type cell[T any] interface {
	*T
	Nodes() []int
	SetIDtag(int)
}

// decodeCells reads one cell topology, rows carry arity node indices and
// an ID tag.
func decodeCells[T any, P cell[T]](src *lineSource, h header) (cells []T, err error) {
	var (
		n      int
		zero   T
		arity  = len(P(&zero).Nodes())
		tag    [1]int
		fields []string
	)
	if n, err = h.count(); err != nil {
		return
	}
	cells = make([]T, n)
	for i := range cells {
		line, ok := src.next()
		if !ok {
			src.truncated(h.kind, i, n)
			return
		}
		if fields, err = splitRow(h.kind, line, arity+1); err != nil {
			return
		}
		c := P(&cells[i])
		if err = parseInts(h.kind, line, fields[:arity], c.Nodes()); err != nil {
			return
		}
		if err = parseInts(h.kind, line, fields[arity:], tag[:]); err != nil {
			return
		}
		c.SetIDtag(tag[0])
	}
	return
}

func decodeBound(src *lineSource, h header) (bnds []mesh.Bound, err error) {
	var (
		n      int
		vals   [3]int
		fields []string
	)
	if n, err = h.count(); err != nil {
		return
	}
	bnds = make([]mesh.Bound, n)
	for i := range bnds {
		line, ok := src.next()
		if !ok {
			src.truncated(h.kind, i, n)
			return
		}
		if fields, err = splitRow(h.kind, line, 3); err != nil {
			return
		}
		if err = parseInts(h.kind, line, fields, vals[:]); err != nil {
			return
		}
		bnds[i] = mesh.Bound{IDtag: vals[0], Index: vals[1], Cells: mesh.CellKind(vals[2])}
	}
	return
}

// decodeArray reads a rows x cols block of reals. A row may carry fewer
// than cols values, the missing trailing columns stay zero.
func decodeArray(src *lineSource, h header) (A *mesh.Array, err error) {
	var (
		vtag       = h.fields()
		nrow, ncol int
	)
	if len(vtag) < 2 {
		return nil, formatErrf(h.kind, h.line, "expected rows;cols")
	}
	if nrow, err = parseCount(h.kind, h.line, vtag[0]); err != nil {
		return
	}
	if ncol, err = parseCount(h.kind, h.line, vtag[1]); err != nil {
		return
	}
	if ncol != 0 && nrow > maxSegmentElems/ncol {
		return nil, formatErrf(h.kind, h.line, "%d x %d values exceed limit %d", nrow, ncol, maxSegmentElems)
	}
	A = mesh.NewArray(nrow, ncol)
	for i := 0; i < nrow; i++ {
		line, ok := src.next()
		if !ok {
			src.truncated(h.kind, i, nrow)
			return
		}
		fields := strings.Split(line, ";")
		if len(fields) > ncol {
			return nil, formatErrf(h.kind, line, "expected at most %d fields, got %d", ncol, len(fields))
		}
		if err = parseFloats(h.kind, line, fields, A.Data[i*ncol:(i+1)*ncol]); err != nil {
			return
		}
	}
	return
}

func loadCoord(msh *mesh.Msh, src *lineSource, h header) (err error) {
	var (
		ctag = h.fields()
		idim int
		n    int
	)
	if len(ctag) < 2 {
		return formatErrf(h.kind, h.line, "expected dim;count")
	}
	if idim, err = strconv.Atoi(strings.TrimSpace(ctag[0])); err != nil {
		return formatErr(h.kind, h.line, err)
	}
	if idim < 1 || idim > 3 {
		return formatErrf(h.kind, h.line, "axis index %d not in 1..3", idim)
	}
	if n, err = parseCount(h.kind, h.line, ctag[1]); err != nil {
		return
	}
	msh.NDims = max(msh.NDims, idim)

	axis := make([]float64, n)
	switch idim {
	case 1:
		msh.XGrid = axis
	case 2:
		msh.YGrid = axis
	case 3:
		msh.ZGrid = axis
	}
	for i := range axis {
		line, ok := src.next()
		if !ok {
			src.truncated(h.kind, i, n)
			return
		}
		if axis[i], err = strconv.ParseFloat(strings.TrimSpace(line), 64); err != nil {
			return formatErr(h.kind, line, err)
		}
	}
	return
}
