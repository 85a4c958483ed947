package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

// maxLineSize bounds a single OBJ line. Longer lines fail the read.
const maxLineSize = 64 << 20

// OBJLoader loads the subset of Wavefront OBJ made of "v" and "f" lines.
// Faces are triangles or quads; the first face line decides which, and
// quads are split into (0,1,2) and (0,2,3). Face lines of the other size
// are reported as ErrFaceArity and their geometry is dropped, so files
// mixing triangles and quads lose faces. Texture and normal references
// after a slash are ignored, as is every other line type and anything
// after a '#'.
type OBJLoader struct {
	// ReverseWinding swaps the second and third index of every triangle.
	// Faces are kept as written by default, which treats clockwise faces
	// (seen from outside) as front facing. Standard exports wind
	// counter-clockwise and need ReverseWinding set.
	ReverseWinding bool

	// Strict turns parse warnings into a load failure.
	Strict bool

	Logger *zap.Logger
}

// NewOBJLoader creates an OBJ loader with default options.
func NewOBJLoader() *OBJLoader {
	return &OBJLoader{Logger: zap.NewNop()}
}

// LoadOBJ loads an OBJ file with default options.
func LoadOBJ(path string) (*Mesh, error) {
	return NewOBJLoader().Load(path)
}

// Load opens and parses an OBJ file.
func (l *OBJLoader) Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrFileOpen, path, err)
	}
	defer f.Close()

	return l.Parse(f, filepath.Base(path))
}

// Parse reads OBJ data in two passes: the first counts vertices and faces so
// the buffers are allocated once, the second fills them.
func (l *OBJLoader) Parse(r io.ReadSeeker, name string) (*Mesh, error) {
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}

	counts, err := countOBJ(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind %s: %w", name, err)
	}

	perFace := 3
	if counts.arity == 4 {
		perFace = 6
	}

	mesh := NewMesh(name)
	mesh.Vertices = make([]math3d.Vec3, 0, counts.vertices)
	mesh.Indices = make([]int, 0, counts.faces*perFace)

	var warnings error
	warn := func(line int, text string, err error) {
		warnings = multierr.Append(warnings, &ParseError{Line: line, Text: text, Err: err})
	}

	scanner := newLineScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		fields := objFields(text)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, ok := parseVertex(fields[1:])
			if !ok {
				warn(lineNo, text, ErrMalformedVertex)
			}
			// A bad vertex keeps its slot so later face indices still line up.
			mesh.Vertices = append(mesh.Vertices, v)

		case "f":
			groups := fields[1:]
			if len(groups) != counts.arity {
				warn(lineNo, text, ErrFaceArity)
				continue
			}

			var idx [4]int
			var faceErr error
			for i, g := range groups {
				idx[i], faceErr = resolveIndex(g, len(mesh.Vertices), counts.vertices)
				if faceErr != nil {
					break
				}
			}
			if faceErr != nil {
				warn(lineNo, text, faceErr)
				continue
			}

			l.emit(mesh, idx[0], idx[1], idx[2])
			if counts.arity == 4 {
				l.emit(mesh, idx[0], idx[2], idx[3])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	mesh.CalculateBounds()

	if warnings != nil {
		if l.Strict {
			return nil, fmt.Errorf("parse %s: %w", name, warnings)
		}
		mesh.Warnings = multierr.Errors(warnings)
		log.Warn("mesh loaded with warnings",
			zap.String("mesh", name),
			zap.Int("warnings", len(mesh.Warnings)),
			zap.Error(warnings),
		)
	}

	log.Debug("mesh loaded",
		zap.String("mesh", name),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("arity", counts.arity),
	)

	return mesh, nil
}

func (l *OBJLoader) emit(mesh *Mesh, a, b, c int) {
	if l.ReverseWinding {
		b, c = c, b
	}
	mesh.Indices = append(mesh.Indices, a, b, c)
}

type objCounts struct {
	vertices int
	faces    int
	arity    int // 3 or 4; taken from the first usable face line
}

func countOBJ(r io.Reader) (objCounts, error) {
	c := objCounts{arity: 3}
	arityKnown := false

	scanner := newLineScanner(r)
	for scanner.Scan() {
		fields := objFields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			c.vertices++
		case "f":
			c.faces++
			if n := len(fields) - 1; !arityKnown && (n == 3 || n == 4) {
				c.arity = n
				arityKnown = true
			}
		}
	}
	return c, scanner.Err()
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return s
}

// objFields splits a line into fields, dropping any trailing comment.
func objFields(line string) []string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.Fields(line)
}

// parseVertex reads up to three coordinates. Missing or unparsable
// components are left at zero and reported through ok.
func parseVertex(fields []string) (v math3d.Vec3, ok bool) {
	ok = len(fields) >= 3
	var xyz [3]float64
	for i := 0; i < 3 && i < len(fields); i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			ok = false
			continue
		}
		xyz[i] = f
	}
	return math3d.V3(xyz[0], xyz[1], xyz[2]), ok
}

// resolveIndex converts one face reference ("7", "7/1", "7//3", "-1") to a
// 0-based vertex index. Positive indices may refer to any vertex in the
// file; negative ones count back from the vertices read so far.
func resolveIndex(group string, seen, total int) (int, error) {
	ref, _, _ := strings.Cut(group, "/")
	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, ErrMalformedFace
	}

	var idx int
	switch {
	case n > 0:
		idx = n - 1
		if idx >= total {
			return 0, ErrIndexRange
		}
	case n < 0:
		idx = seen + n
		if idx < 0 {
			return 0, ErrIndexRange
		}
	default:
		return 0, ErrIndexRange
	}
	return idx, nil
}
