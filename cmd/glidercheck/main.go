/*
Copyright © 2026 the glidercheck authors.
This file is part of glidercheck.

glidercheck is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

glidercheck is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with glidercheck.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command glidercheck is a command-line interface for checking glider
// NetCDF files against the IOOS Glider DAC and NCEI conventions.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/glidercheck/glidercheckutil"
)

func main() {
	if err := glidercheckutil.Root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
