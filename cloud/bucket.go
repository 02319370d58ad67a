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

// Package cloud provides access to files held in blob storage buckets.
package cloud

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/google/go-cloud/blob"
	"github.com/google/go-cloud/blob/fileblob"
	"github.com/google/go-cloud/blob/gcsblob"
	"github.com/google/go-cloud/blob/s3blob"
	"github.com/google/go-cloud/gcp"
)

// OpenBucket opens the blob storage bucket holding glider files or
// vocabulary tables. bucketName has the form 'provider://name': "file" for
// a directory on the local filesystem, "gs" for Google Cloud Storage and
// "s3" for AWS S3. An S3 region may be given as a query parameter, e.g.
// 's3://glider-tables?region=us-west-2'; otherwise $AWS_REGION is used.
func OpenBucket(ctx context.Context, bucketName string) (*blob.Bucket, error) {
	u, err := url.Parse(bucketName)
	if err != nil {
		return nil, fmt.Errorf("cloud: parsing bucket %s: %v", bucketName, err)
	}
	switch u.Scheme {
	case "file":
		return fileblob.NewBucket(u.Host + u.Path)
	case "gs":
		return gsBucket(ctx, u.Hostname())
	case "s3":
		return s3Bucket(ctx, u.Hostname(), u.Query().Get("region"))
	}
	return nil, fmt.Errorf("cloud: invalid storage provider %q in %s", u.Scheme, bucketName)
}

// gsBucket opens a Google Cloud Storage bucket using the application
// default credentials.
func gsBucket(ctx context.Context, name string) (*blob.Bucket, error) {
	creds, err := gcp.DefaultCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("cloud: finding gcp credentials: %v", err)
	}
	c, err := gcp.NewHTTPClient(gcp.DefaultTransport(), gcp.CredentialsTokenSource(creds))
	if err != nil {
		return nil, err
	}
	return gcsblob.OpenBucket(ctx, name, c)
}

// defaultRegion is used when neither the bucket location nor the
// environment names an S3 region.
const defaultRegion = "us-east-1"

// s3Bucket opens an S3 bucket with credentials from AWS_ACCESS_KEY_ID
// and AWS_SECRET_ACCESS_KEY.
func s3Bucket(ctx context.Context, name, region string) (*blob.Bucket, error) {
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = defaultRegion
	}
	s, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewEnvCredentials(),
	})
	if err != nil {
		return nil, fmt.Errorf("cloud: creating aws session: %v", err)
	}
	return s3blob.OpenBucket(ctx, s, name)
}
