package feed

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	bucket, key string
	body        string
	err         error
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket, f.key = *in.Bucket, *in.Key
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func TestOpen_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crashes.csv")
	require.NoError(t, os.WriteFile(path, []byte("header\n"), 0o600))
	src := NewSource(nil)

	plain, err := src.Open(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "header\n", readAll(t, plain))

	prefixed, err := src.Open(context.Background(), "file://"+path)
	require.NoError(t, err)
	assert.Equal(t, "header\n", readAll(t, prefixed))
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := NewSource(nil).Open(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_S3(t *testing.T) {
	objects := &fakeObjects{body: "a,b\n"}
	src := NewSource(objects)

	rc, err := src.Open(context.Background(), "s3://feeds/nz/crashes.csv")

	require.NoError(t, err)
	assert.Equal(t, "a,b\n", readAll(t, rc))
	assert.Equal(t, "feeds", objects.bucket)
	assert.Equal(t, "nz/crashes.csv", objects.key)
}

func TestOpen_S3Errors(t *testing.T) {
	_, err := NewSource(nil).Open(context.Background(), "s3://feeds/crashes.csv")
	assert.ErrorIs(t, err, ErrS3Disabled)

	_, err = NewSource(&fakeObjects{}).Open(context.Background(), "s3://feeds")
	assert.ErrorContains(t, err, "bucket and key are required")

	denied := errors.New("access denied")
	_, err = NewSource(&fakeObjects{err: denied}).Open(context.Background(), "s3://feeds/crashes.csv")
	assert.ErrorIs(t, err, denied)
}
