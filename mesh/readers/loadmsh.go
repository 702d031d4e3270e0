package readers

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/notargets/gomsh/mesh"
)

type loader struct {
	log *slog.Logger
}

type Option func(*loader)

// WithLogger sets the logger used for load diagnostics, the default
// discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(l *loader) {
		if log != nil {
			l.log = log
		}
	}
}

func newLoader(opts []Option) *loader {
	l := &loader{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ReadMsh reads a JIGSAW MSH file into a new mesh
func ReadMsh(filename string, opts ...Option) (*mesh.Msh, error) {
	msh := mesh.NewMsh()
	if err := LoadMsh(filename, msh, opts...); err != nil {
		return nil, err
	}
	return msh, nil
}

// LoadMsh reads a JIGSAW MSH file into msh. Only the segments present in
// the file are written. On error msh is left partially filled and must not
// be used.
func LoadMsh(filename string, msh *mesh.Msh, opts ...Option) error {
	if filename == "" {
		return fmt.Errorf("%w: empty file name", ErrInvalidArgument)
	}
	if msh == nil {
		return fmt.Errorf("%w: nil mesh", ErrInvalidArgument)
	}
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	defer file.Close()

	if err = Load(file, msh, opts...); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

// Load decodes MSH text from r into msh. Grid fields are reshaped against
// the axes once the input is consumed.
func Load(r io.Reader, msh *mesh.Msh, opts ...Option) (err error) {
	if msh == nil {
		return fmt.Errorf("%w: nil mesh", ErrInvalidArgument)
	}
	var (
		l   = newLoader(opts)
		src = newLineSource(r, l.log)
	)
	for {
		line, ok := src.next()
		if !ok {
			break
		}
		if err = l.dispatch(msh, src, line); err != nil {
			return
		}
	}
	if src.err != nil {
		return fmt.Errorf("error reading msh: %w", src.err)
	}

	if msh.IsGrid() {
		if msh.Value, err = reshapeGrid(msh, msh.Value, "VALUE", l.log); err != nil {
			return
		}
		if msh.Slope, err = reshapeGrid(msh, msh.Slope, "SLOPE", l.log); err != nil {
			return
		}
	}
	l.log.Info("loaded msh",
		"mshID", msh.MshID,
		"ndims", msh.NDims,
		"vertices", msh.NumVertices(),
		"lines", src.num)
	return
}

func (l *loader) dispatch(msh *mesh.Msh, src *lineSource, line string) error {
	h, ok := parseHeader(line)
	if !ok {
		return nil
	}
	load, known := segmentLoaders[h.kind]
	if !known {
		l.log.Debug("skipping unknown keyword", "kind", h.kind, "line", src.num)
		return nil
	}
	if !h.eq {
		return formatErrf(h.kind, line, "missing '='")
	}
	return load(msh, src, h)
}
