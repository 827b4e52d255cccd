package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipesnap/backend/internal/service"
)

func TestEncodeDecodeDataURI(t *testing.T) {
	uri := service.EncodeDataURI([]byte("photo bytes"), "image/jpeg")
	assert.Equal(t, "data:image/jpeg;base64,cGhvdG8gYnl0ZXM=", uri)

	data, contentType, err := service.DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, []byte("photo bytes"), data)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestDecodeDataURIPlainPayload(t *testing.T) {
	data, contentType, err := service.DecodeDataURI("data:text/plain,hello")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
	assert.Equal(t, "text/plain", contentType)
}

func TestDecodeDataURIRejectsGarbage(t *testing.T) {
	_, _, err := service.DecodeDataURI("https://example.com/photo.jpg")
	assert.Error(t, err)

	_, _, err = service.DecodeDataURI("data:image/jpeg;base64")
	assert.Error(t, err)

	_, _, err = service.DecodeDataURI("data:image/jpeg;base64,!!!")
	assert.Error(t, err)
}
