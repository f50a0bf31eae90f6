// Copyright 2025 the feedkit authors.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions
// are met:
//
// 1. Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//
// 2. Redistributions in binary form must reproduce the above copyright
// notice, this list of conditions and the following disclaimer in the
// documentation and/or other materials provided with the distribution.
//
// 3. Neither the name of the copyright holder nor the names of its
// contributors may be used to endorse or promote products derived
// from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND
// CONTRIBUTORS "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES,
// INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES OF
// MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
// DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR
// CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING,
// BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
// SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY,
// WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
// NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH
// DAMAGE.

package s3

import (
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"

	"github.com/hybrid-search/feedkit"
)

// RawSource is a feedkit.RawSource reading objects from an S3 bucket.
// Objects are listed once when the RawSource is created and handed out
// in the order S3 listed them (lexical by key).
type RawSource struct {
	bucket string
	prefix string
	region string

	s3      *s3.S3
	sess    *session.Session
	objects []*s3.Object
	objIdx  int
}

// NewRawSource returns a RawSource reading every object in the bucket
// that matches the prefix. Credentials come from the usual AWS SDK
// chain (environment, shared config, instance role).
func NewRawSource(region, bucket, prefix string) (*RawSource, error) {
	rs := &RawSource{
		region: region,
		bucket: bucket,
		prefix: prefix,
	}
	var err error
	rs.sess, err = session.NewSession(&aws.Config{
		Region: aws.String(rs.region)},
	)
	if err != nil {
		return nil, errors.Wrap(err, "getting aws session")
	}
	rs.s3 = s3.New(rs.sess)
	resp, err := rs.s3.ListObjects(&s3.ListObjectsInput{Bucket: aws.String(rs.bucket), Prefix: aws.String(rs.prefix)})
	if err != nil {
		return nil, errors.Wrap(err, "listing objects")
	}
	rs.objects = resp.Contents
	return rs, nil
}

// NextReader implements feedkit.RawSource. The reader's Name is the
// object key.
func (rs *RawSource) NextReader() (feedkit.NamedReadCloser, error) {
	if rs.objIdx >= len(rs.objects) {
		return nil, io.EOF
	}
	obj := rs.objects[rs.objIdx]
	rs.objIdx++

	result, err := rs.s3.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(rs.bucket),
		Key:    aws.String(*obj.Key),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %v", *obj.Key)
	}
	return &objReader{name: *obj.Key, body: result.Body}, nil
}

type objReader struct {
	name string
	body io.ReadCloser
}

func (o *objReader) Read(buf []byte) (n int, err error) {
	return o.body.Read(buf)
}

func (o *objReader) Close() error {
	return o.body.Close()
}

func (o *objReader) Name() string {
	return o.name
}
