package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insights/internal/shared/storage/object"
)

type fakeS3 struct {
	objects map[string]string
	puts    []*s3.PutObjectInput
	putErr  error
}

func newFakeS3() *fakeS3 { return &fakeS3{objects: map[string]string{}} }

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.puts = append(f.puts, in)
	f.objects[aws.ToString(in.Key)] = string(body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func upload(body string) object.Upload {
	return object.Upload{
		UserID:      "user-1",
		ResumeID:    "resume-1",
		FileName:    "cv.docx",
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Body:        strings.NewReader(body),
	}
}

func TestNewWithClientRequiresBucket(t *testing.T) {
	_, err := NewWithClient(newFakeS3(), " ", "", "")
	assert.Error(t, err)
}

func TestSaveAppliesPrefixAndEncryption(t *testing.T) {
	fake := newFakeS3()
	store, err := NewWithClient(fake, "bucket", "/resumes/", "kms-key")
	require.NoError(t, err)

	key, size, err := store.Save(context.Background(), upload("docx-bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("docx-bytes")), size)
	assert.False(t, strings.HasPrefix(key, "resumes/"), "storage key excludes the bucket prefix")

	require.Len(t, fake.puts, 1)
	put := fake.puts[0]
	assert.Equal(t, "resumes/"+key, aws.ToString(put.Key))
	assert.Equal(t, "bucket", aws.ToString(put.Bucket))
	assert.Equal(t, s3types.ServerSideEncryptionAwsKms, put.ServerSideEncryption)
	assert.Equal(t, "kms-key", aws.ToString(put.SSEKMSKeyId))
	assert.Equal(t, upload("").ContentType, aws.ToString(put.ContentType))
	assert.Equal(t, "resume-1", put.Metadata["resume-id"])
}

func TestSaveDefaultsToAES256(t *testing.T) {
	fake := newFakeS3()
	store, err := NewWithClient(fake, "bucket", "", "")
	require.NoError(t, err)

	up := upload("x")
	up.ContentType = ""
	key, _, err := store.Save(context.Background(), up)
	require.NoError(t, err)

	put := fake.puts[0]
	assert.Equal(t, key, aws.ToString(put.Key))
	assert.Equal(t, s3types.ServerSideEncryptionAes256, put.ServerSideEncryption)
	assert.Equal(t, "application/octet-stream", aws.ToString(put.ContentType))
}

func TestSaveWrapsClientError(t *testing.T) {
	fake := newFakeS3()
	fake.putErr = errors.New("boom")
	store, err := NewWithClient(fake, "bucket", "", "")
	require.NoError(t, err)

	_, _, err = store.Save(context.Background(), upload("x"))
	assert.ErrorContains(t, err, "boom")
}

func TestOpenAndDelete(t *testing.T) {
	fake := newFakeS3()
	store, err := NewWithClient(fake, "bucket", "root", "")
	require.NoError(t, err)
	ctx := context.Background()

	key, _, err := store.Save(ctx, upload("hello"))
	require.NoError(t, err)

	rc, err := store.Open(ctx, key)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Open(ctx, key)
	assert.ErrorIs(t, err, object.ErrNotFound)
}
