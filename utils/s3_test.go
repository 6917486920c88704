package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".jpg", extensionFor("image/jpg"))
	assert.Equal(t, ".webp", extensionFor("image/webp"))
}

func TestUploadBase64Image_RejectsMalformedURI(t *testing.T) {
	u := &ImageUploader{}

	_, err := u.UploadBase64Image(context.Background(), "not a data uri", "user-1")
	assert.Error(t, err)

	_, err = u.UploadBase64Image(context.Background(), "plain,payload", "user-1")
	assert.Error(t, err)
}
