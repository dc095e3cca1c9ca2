package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Faultbox/mundimonium/pkg/isometric"
	"github.com/Faultbox/mundimonium/pkg/tessellation"
	"github.com/Faultbox/mundimonium/pkg/units"
)

func run(ctx context.Context, w io.Writer, m *mesh, command string, args []string) error {
	switch command {
	case "info":
		return cmdInfo(w, m)
	case "distance", "dist":
		return cmdDistance(ctx, w, m, args)
	case "path":
		return cmdPath(w, m, args)
	case "check":
		return cmdCheck(w, m)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

func cmdInfo(w io.Writer, m *mesh) error {
	s := m.tess.Stats()
	fmt.Fprintf(w, "Surface:  %T\n", m.tess.Surface())
	fmt.Fprintf(w, "Vertices: %d\n", s.Vertices)
	fmt.Fprintf(w, "Faces:    %d\n", s.Faces)
	fmt.Fprintf(w, "Edges:    %d (%d on the border)\n", s.Edges, s.BorderEdges)
	fmt.Fprintf(w, "Side:     %.4f %s (min %.4f, max %.4f)\n", s.MeanSide, m.unit, s.MinSide, s.MaxSide)
	if m.heightmap != nil {
		lo, hi := m.heightmap.Range()
		fmt.Fprintf(w, "Terrain:  %.4f to %.4f %s\n", lo, hi, m.unit)
	}
	return nil
}

// samplePoints returns the center and an off-center point of f.
func samplePoints(f *tessellation.Face) ([]*isometric.Point, error) {
	h := f.Altitude()
	off, err := isometric.NewPoint(f, isometric.B(0.6*h), isometric.S(0.3*h))
	if err != nil {
		return nil, err
	}
	return []*isometric.Point{f.Center(), off}, nil
}

func cmdDistance(ctx context.Context, w io.Writer, m *mesh, args []string) error {
	fs := flag.NewFlagSet("distance", flag.ContinueOnError)
	fs.SetOutput(w)
	in := fs.String("in", "", "Report distances in this unit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("usage: meshtool distance [-in unit] <face> [face]")
	}

	out := m.unit
	if *in != "" {
		u, err := units.Parse(*in)
		if err != nil {
			return err
		}
		out = u
	}

	fid, err := parseFace(fs.Arg(0))
	if err != nil {
		return err
	}

	var (
		pairs  []tessellation.PointPair
		labels []string
	)
	err = m.tess.Read(func() error {
		f, err := m.tess.Face(fid)
		if err != nil {
			return err
		}
		gid := tessellation.NoFace
		if fs.NArg() > 1 {
			if gid, err = parseFace(fs.Arg(1)); err != nil {
				return err
			}
		} else {
			for _, n := range f.Neighbors() {
				if n != tessellation.NoFace {
					gid = n
					break
				}
			}
		}
		g, err := m.tess.Face(gid)
		if err != nil {
			return err
		}

		fp, err := samplePoints(f)
		if err != nil {
			return err
		}
		gp, err := samplePoints(g)
		if err != nil {
			return err
		}
		pairs = append(pairs, tessellation.PointPair{A: fp[0], B: fp[1]})
		labels = append(labels, fmt.Sprintf("%v %v -> %v %v", f, fp[0], f, fp[1]))
		for _, a := range fp {
			for _, b := range gp {
				pairs = append(pairs, tessellation.PointPair{A: a, B: b})
				labels = append(labels, fmt.Sprintf("%v %v -> %v %v", f, a, g, b))
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	distances, err := m.tess.Distances(ctx, pairs, m.query.Workers)
	if err != nil {
		return err
	}
	for i, d := range distances {
		fmt.Fprintf(w, "%s: %.4f %s\n", labels[i], m.unit.ConvertTo(out, d), out)
	}

	if m.heightmap != nil {
		return m.tess.Read(func() error {
			for _, pair := range pairs[:1] {
				for _, p := range []*isometric.Point{pair.A, pair.B} {
					e, err := m.heightmap.SampleFace(p)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "elevation at %v: %.4f %s\n", p, m.unit.ConvertTo(out, e), out)
				}
			}
			return nil
		})
	}
	return nil
}

func cmdPath(w io.Writer, m *mesh, args []string) error {
	fs := flag.NewFlagSet("path", flag.ContinueOnError)
	fs.SetOutput(w)
	flat := fs.Bool("flat", false, "Ignore slope")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return errors.New("usage: meshtool path [-flat] <from> <to>")
	}

	from, err := parseFace(fs.Arg(0))
	if err != nil {
		return err
	}
	to, err := parseFace(fs.Arg(1))
	if err != nil {
		return err
	}

	cost := tessellation.SlopeWeighted(m.query.SlopeWeight, m.tess.Surface())
	if *flat {
		cost = tessellation.CentroidDistance
	}
	path, total, err := m.tess.FacePath(from, to, cost)
	if err != nil {
		return err
	}

	ids := make([]string, len(path))
	for i, id := range path {
		ids[i] = strconv.Itoa(int(id))
	}
	fmt.Fprintf(w, "Path:  %s\n", strings.Join(ids, " -> "))
	fmt.Fprintf(w, "Faces: %d\n", len(path))
	fmt.Fprintf(w, "Cost:  %.4f\n", total)
	return nil
}

func cmdCheck(w io.Writer, m *mesh) error {
	err := m.tess.Check()
	if err == nil {
		fmt.Fprintln(w, "OK")
		return nil
	}

	violations := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		violations = joined.Unwrap()
	}
	for _, v := range violations {
		fmt.Fprintln(w, v)
	}
	return fmt.Errorf("%d violations", len(violations))
}

func parseFace(s string) (tessellation.FaceID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return tessellation.NoFace, fmt.Errorf("invalid face %q", s)
	}
	return tessellation.FaceID(n), nil
}
