package storage

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct {
	input   *s3.PutObjectInput
	expires time.Duration
	err     error
}

func (f *fakePresigner) PresignPutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.input = in
	opts := &s3.PresignOptions{}
	for _, fn := range optFns {
		fn(opts)
	}
	f.expires = opts.Expires
	if f.err != nil {
		return nil, f.err
	}
	return &v4.PresignedHTTPRequest{URL: "https://bucket.s3/" + aws.ToString(in.Key), Method: http.MethodPut}, nil
}

type fakeDeleter struct {
	keys []string
	err  error
}

func (f *fakeDeleter) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.keys = append(f.keys, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, f.err
}

func TestPhotoStore_PresignUpload(t *testing.T) {
	p := &fakePresigner{}
	store := NewPhotoStore(p, &fakeDeleter{}, "photos", 0, nil)

	url, ttl, err := store.PresignUpload(context.Background(), "user-1/photos/abc", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.s3/user-1/photos/abc", url)
	assert.Equal(t, defaultUploadTTL, ttl)
	assert.Equal(t, defaultUploadTTL, p.expires)
	assert.Equal(t, "photos", aws.ToString(p.input.Bucket))
	assert.Equal(t, "image/png", aws.ToString(p.input.ContentType))
}

func TestPhotoStore_PresignUploadError(t *testing.T) {
	store := NewPhotoStore(&fakePresigner{err: errors.New("no creds")}, &fakeDeleter{}, "photos", time.Minute, nil)

	_, _, err := store.PresignUpload(context.Background(), "k", "")
	assert.True(t, appErrors.IsInternal(err))
}

func TestPhotoStore_Delete(t *testing.T) {
	d := &fakeDeleter{}
	store := NewPhotoStore(&fakePresigner{}, d, "photos", time.Minute, nil)

	require.NoError(t, store.Delete(context.Background(), "user-1/photos/abc"))
	assert.Equal(t, []string{"user-1/photos/abc"}, d.keys)

	d.err = errors.New("denied")
	assert.Error(t, store.Delete(context.Background(), "x"))
}
