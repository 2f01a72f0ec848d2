package encrypter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-uploader/pkg/encrypter"
)

func TestBcryptHasher(t *testing.T) {
	h := encrypter.NewBcrypt(4) // min cost keeps the test fast

	t.Run("Hash And Verify", func(t *testing.T) {
		hash, err := h.Hash("s3cret")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret", hash)
		assert.True(t, h.Verify("s3cret", hash))
		assert.False(t, h.Verify("wrong", hash))
	})

	t.Run("Empty Password", func(t *testing.T) {
		_, err := h.Hash("")
		assert.Error(t, err)
	})

	t.Run("IsHash", func(t *testing.T) {
		hash, err := h.Hash("s3cret")
		require.NoError(t, err)
		assert.True(t, h.IsHash(hash))
		assert.False(t, h.IsHash("s3cret"))
		assert.False(t, h.IsHash(""))
	})
}
