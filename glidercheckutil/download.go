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

package glidercheckutil

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spatialmodel/glidercheck/cloud"
	"golang.org/x/net/context/ctxhttp"
)

// maybeDownload checks if the input is an existing file locally.
// If not, it checks if the file is a URL or a blob location.
// If it is, it downloads the file and returns the path to the downloaded
// file together with a function that removes it. Other paths are
// returned unchanged.
func maybeDownload(ctx context.Context, loc string) (string, func(), error) {
	noop := func() {}

	// Check if local file exists. If it does, return the given path.
	if _, err := os.Stat(loc); err == nil {
		return loc, noop, nil
	}

	switch {
	case strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://"):
		return download(loc, func(w io.Writer) error { return downloadHTTP(ctx, w, loc) })
	case cloud.IsBlob(loc):
		return download(loc, func(w io.Writer) error { return cloud.CopyBlob(ctx, w, loc) })
	}
	return loc, noop, nil
}

// download writes the file at loc into a temporary directory using get.
func download(loc string, get func(io.Writer) error) (string, func(), error) {
	dir, err := ioutil.TempDir("", "glidercheck")
	if err != nil {
		return "", nil, fmt.Errorf("glidercheck: failed creating temporary download directory: %v", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	name := "download.nc"
	if u, err := url.Parse(loc); err == nil {
		if base := path.Base(u.Path); base != "." && base != "/" {
			name = base
		}
	}
	fname := filepath.Join(dir, name)
	w, err := os.Create(fname)
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("glidercheck: failed creating file for download: %v", err)
	}
	if err := get(w); err != nil {
		w.Close()
		cleanup()
		return "", nil, fmt.Errorf("glidercheck: downloading %s: %v", loc, err)
	}
	if err := w.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("glidercheck: downloading %s: %v", loc, err)
	}
	return fname, cleanup, nil
}

// downloadHTTP copies the file at the given URL to w.
func downloadHTTP(ctx context.Context, w io.Writer, loc string) error {
	resp, err := ctxhttp.Get(ctx, http.DefaultClient, loc)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s", resp.Status)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}
