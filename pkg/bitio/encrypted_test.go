package bitio

import (
	"encoding/hex"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisyn/bitio/internal/core/infrastructure/crypto/encryption"
)

func randomPayload(t *testing.T, r io.Reader, n int) []byte {
	t.Helper()
	data := make([]byte, n)
	_, err := io.ReadFull(r, data)
	require.NoError(t, err)
	return data
}

// TestEncrypted 测试加密信封
func TestEncrypted(t *testing.T) {
	random := seededReader(42)
	cipher := encryption.NewBoxService()
	recipientPublic, recipientPrivate, err := cipher.GenerateKey(random)
	require.NoError(t, err)

	message := randomPayload(t, random, 100)
	s := New(WithRandom(random))
	require.NoError(t, s.AppendEncrypted(message, recipientPublic, nil))
	// 长度(16) + 公钥(32) + nonce(24) + 密文(100+16)
	assert.Equal(t, (2+32+24+116)*8, s.Len())

	got, err := s.GetEncrypted(recipientPrivate)
	require.NoError(t, err)
	assert.Equal(t, message, got)
	assert.Equal(t, 0, s.Remaining())

	t.Run("错误的私钥", func(t *testing.T) {
		_, wrongPrivate, err := cipher.GenerateKey(random)
		require.NoError(t, err)
		require.NoError(t, s.SetPointer(0))

		_, err = s.GetEncrypted(wrongPrivate)
		assert.ErrorIs(t, err, ErrInvalidKey)
		assert.Equal(t, 0, s.Pointer())
	})
}

// TestEncryptedWithSenderKey 测试指定发送方私钥
func TestEncryptedWithSenderKey(t *testing.T) {
	random := seededReader(7)
	cipher := encryption.NewBoxService()
	recipientPublic, recipientPrivate, err := cipher.GenerateKey(random)
	require.NoError(t, err)
	senderPublic, senderPrivate, err := cipher.GenerateKey(random)
	require.NoError(t, err)

	s := New(WithRandom(random))
	require.NoError(t, s.InsertBits("101"))
	require.NoError(t, s.InsertEncrypted([]byte("DigiByte"), recipientPublic, senderPrivate, KeepPointer()))
	assert.Equal(t, 3, s.Pointer())

	// 24字节密文的长度字段只占1字节
	b, err := s.GetRun(8)
	require.NoError(t, err)
	embedded, err := s.GetBuffer(32)
	require.NoError(t, err)
	assert.Equal(t, senderPublic[:], embedded, "信封携带发送方公钥")
	assert.Equal(t, "00011000", b.String())

	require.NoError(t, s.SetPointer(3))
	got, err := s.GetEncrypted(recipientPrivate)
	require.NoError(t, err)
	assert.Equal(t, []byte("DigiByte"), got)
}

// TestParseKey 测试十六进制密钥解析
func TestParseKey(t *testing.T) {
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i)
	}
	key, err := ParseKey(hex.EncodeToString(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, key[:])

	_, err = ParseKey("abcd")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = ParseKey("zz")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// TestMakeEncrypted 测试纯函数版本
func TestMakeEncrypted(t *testing.T) {
	cipher := encryption.NewBoxService()
	recipientPublic, recipientPrivate, err := cipher.GenerateKey(seededReader(9))
	require.NoError(t, err)

	b, err := MakeEncrypted(nil, recipientPublic, nil)
	require.NoError(t, err)

	s := New()
	s.AppendRun(b)
	got, err := s.GetEncrypted(recipientPrivate)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = MakeEncrypted([]byte{1}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
