// Command export writes the test case definitions, together with the pixels
// both line algorithms produce for them, to testdata/testcases.json.
// Run from the pixline module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pixline"
	"seehuhn.de/go/pixline/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	r := pixline.NewRasterizer(rect.Rect{})
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc := toJSON(category, tc)
			for _, alg := range []pixline.Algorithm{pixline.DDA, pixline.Bresenham} {
				r.Reset(rect.Rect{})
				r.Algorithm = alg
				pix, err := rasterize(tc, r)
				if err != nil {
					panic(err)
				}
				jtc.Pixels[alg.String()] = pix
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string              `json:"name"`
	Width     int                 `json:"width"`
	Height    int                 `json:"height"`
	Op        string              `json:"op"`
	Start     []int               `json:"start,omitempty"`
	End       []int               `json:"end,omitempty"`
	Path      []jsonSegment       `json:"path,omitempty"`
	CTM       []float64           `json:"ctm,omitempty"`
	Dash      []float64           `json:"dash,omitempty"`
	DashPhase float64             `json:"dash_phase,omitempty"`
	Pixels    map[string][][2]int `json:"pixels"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Pixels: map[string][][2]int{},
	}
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		jtc.CTM = tc.CTM[:]
	}

	switch op := tc.Op.(type) {
	case testcases.Segment:
		jtc.Op = "segment"
		jtc.Start = []int{op.Start.X, op.Start.Y}
		jtc.End = []int{op.End.X, op.End.Y}
	case testcases.Stroke:
		jtc.Op = "stroke"
		jtc.Path = pathToJSON(op.Path)
		jtc.Dash = op.Dash
		jtc.DashPhase = op.DashPhase
	}
	return jtc
}

// rasterize returns the set pixels of a test case in row-major order.
func rasterize(tc testcases.TestCase, r *pixline.Rasterizer) ([][2]int, error) {
	buf := pixline.NewBuffer(tc.Width, tc.Height)
	if err := pixline.RenderCase(tc, r, buf, pixline.White); err != nil {
		return nil, err
	}
	pix := [][2]int{}
	for y := range buf.Height {
		for x := range buf.Width {
			if buf.At(x, y) != pixline.Black {
				pix = append(pix, [2]int{x, y})
			}
		}
	}
	return pix, nil
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
