// bezsel - a Bézier curve selection engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command export writes every test case as a curve buffer file, so that
// the curves can be loaded into an editor or passed to the bezsel
// command.  Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	bezsel "github.com/GNOME/gimp-sub073"
	"github.com/GNOME/gimp-sub073/curvebuf"
	"github.com/GNOME/gimp-sub073/testcases"
)

const curveDir = "testdata/curves"

func main() {
	if err := os.MkdirAll(curveDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(name, tc); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func export(name string, tc testcases.TestCase) (err error) {
	f, err := os.Create(filepath.Join(curveDir, name+".curve"))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	// Curve buffers store integer coordinates; rounding may move the
	// curve by up to half a pixel.
	return curvebuf.Encode(f, curvebuf.FromPath(name, bezsel.FromTestCase(tc)))
}
