package providers

import (
	"context"
	"errors"
	"io"
	"mindcare/internal/models"
	"mindcare/internal/structures"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	puts    []*s3.PutObjectInput
	body    []byte
	deletes []string
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, in)
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deletes = append(f.deletes, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

type fakePresigner struct {
	expires time.Duration
}

func (f *fakePresigner) PresignGetObject(_ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	var opts s3.PresignOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	f.expires = opts.Expires
	return &v4.PresignedHTTPRequest{URL: "https://" + *in.Bucket + ".s3.local/" + *in.Key + "?sig=1"}, nil
}

func TestS3MediaStore_Upload(t *testing.T) {
	client := &fakeS3{}
	store := &S3MediaStore{client: client, bucket: "meds", presigner: &fakePresigner{}}

	err := store.Upload(context.Background(), "u1/m1.png", "image/png", []byte("png-bytes"))

	require.NoError(t, err)
	require.Len(t, client.puts, 1)
	assert.Equal(t, "meds", *client.puts[0].Bucket)
	assert.Equal(t, "u1/m1.png", *client.puts[0].Key)
	assert.Equal(t, "image/png", *client.puts[0].ContentType)
	assert.Equal(t, int64(9), *client.puts[0].ContentLength)
	assert.Equal(t, []byte("png-bytes"), client.body)
}

func TestS3MediaStore_PresignGet(t *testing.T) {
	presigner := &fakePresigner{}
	store := &S3MediaStore{client: &fakeS3{}, presigner: presigner, bucket: "meds", presignTTL: 15 * time.Minute}

	url, err := store.PresignGet(context.Background(), "u1/m1.png")

	require.NoError(t, err)
	assert.Equal(t, "https://meds.s3.local/u1/m1.png?sig=1", url)
	assert.Equal(t, 15*time.Minute, presigner.expires)
}

func TestS3MediaStore_WrapsFailures(t *testing.T) {
	store := &S3MediaStore{client: &fakeS3{err: errors.New("access denied")}, presigner: &fakePresigner{}, bucket: "meds"}

	err := store.Upload(context.Background(), "k", "image/png", nil)
	var ce *models.CollaboratorError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "media", ce.Collaborator)

	assert.Error(t, store.Delete(context.Background(), "k"))
}

func TestNewMediaProvider_Disabled(t *testing.T) {
	store, err := NewMediaProvider(&structures.Config{}, &cacheTestLogger{})
	require.NoError(t, err)

	assert.ErrorIs(t, store.Upload(context.Background(), "k", "image/png", nil), models.ErrCollaboratorDisabled)
	_, err = store.PresignGet(context.Background(), "k")
	assert.ErrorIs(t, err, models.ErrCollaboratorDisabled)
}
