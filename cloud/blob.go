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

package cloud

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
)

// IsBlob returns whether the given location represents a blob
// (i.e., if it starts with `gs://`, 's3://', or 'file://').
func IsBlob(loc string) bool {
	return strings.HasPrefix(loc, "gs://") || strings.HasPrefix(loc, "s3://") || strings.HasPrefix(loc, "file://")
}

// splitBlob splits a blob location into the bucket it lives in and
// its key within that bucket. Local files use their directory as the bucket.
func splitBlob(loc string) (bucket, key string, err error) {
	u, err := url.Parse(loc)
	if err != nil {
		return "", "", err
	}
	if u.Scheme == "file" {
		dir, base := path.Split(u.Host + u.Path)
		return "file://" + dir, base, nil
	}
	bucket = u.Scheme + "://" + u.Host
	if u.RawQuery != "" {
		bucket += "?" + u.RawQuery
	}
	return bucket, strings.TrimPrefix(u.Path, "/"), nil
}

// ReadBlob reads the blob at the given location.
func ReadBlob(ctx context.Context, loc string) ([]byte, error) {
	var b bytes.Buffer
	if err := CopyBlob(ctx, &b, loc); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// CopyBlob copies the blob at the given location to w.
func CopyBlob(ctx context.Context, w io.Writer, loc string) error {
	bucketName, key, err := splitBlob(loc)
	if err != nil {
		return fmt.Errorf("cloud: parsing blob location %s: %v", loc, err)
	}
	bucket, err := OpenBucket(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("cloud: opening bucket for %s: %v", loc, err)
	}
	r, err := bucket.NewReader(ctx, key)
	if err != nil {
		return fmt.Errorf("cloud: reading blob key %s: %v", key, err)
	}
	defer r.Close()
	if _, err = io.Copy(w, r); err != nil {
		return fmt.Errorf("cloud: reading blob key %s: %v", key, err)
	}
	return nil
}
