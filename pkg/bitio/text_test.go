package bitio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlpha 测试 Alpha 编码
func TestAlpha(t *testing.T) {
	s := New()
	require.NoError(t, s.InsertAlpha("0fiz7+%"))
	assert.Equal(t, 39, s.Pointer())
	require.NoError(t, s.AppendAlpha("z1.9"))

	got, err := s.GetAlpha(4)
	require.NoError(t, err)
	assert.Equal(t, "z1.9", got)

	require.NoError(t, s.SetPointer(0))
	got, err = s.GetAlpha(7)
	require.NoError(t, err)
	assert.Equal(t, "0fiz7+%", got)

	assert.ErrorIs(t, s.InsertAlpha("A"), ErrInvalidInput)
	assert.ErrorIs(t, s.InsertAlpha("&"), ErrInvalidInput)
	assert.Equal(t, 61, s.Len())
}

// TestUTF8 测试修改版 UTF8 编码
func TestUTF8(t *testing.T) {
	s := New()
	require.NoError(t, s.InsertUTF8("0fiz7+%"))
	require.NoError(t, s.AppendUTF8("z1.9"))
	assert.Equal(t, 56, s.Pointer())

	got, err := s.GetUTF8(4)
	require.NoError(t, err)
	assert.Equal(t, "z1.9", got)

	require.NoError(t, s.SetPointer(0))
	got, err = s.GetUTF8(7)
	require.NoError(t, err)
	assert.Equal(t, "0fiz7+%", got)

	t.Run("多字节字符宽度", func(t *testing.T) {
		for _, tc := range []struct {
			name string
			in   string
			bits int
		}{
			{"ASCII", "a", 8},
			{"两字节", "é", 13},
			{"三字节", "慌", 19},
			{"四字节", "😀", 24},
		} {
			t.Run(tc.name, func(t *testing.T) {
				b, err := MakeUTF8(tc.in)
				require.NoError(t, err)
				assert.Equal(t, tc.bits, b.Len())

				s := New()
				s.AppendRun(b)
				got, err := s.GetUTF8(1)
				require.NoError(t, err)
				assert.Equal(t, tc.in, got)
			})
		}
	})

	t.Run("非法UTF8", func(t *testing.T) {
		_, err := MakeUTF8("\xff")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("超出范围的码点", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AppendBits("111"))
		require.NoError(t, s.AppendInt(0x1fffff>>10, 11))
		require.NoError(t, s.AppendInt(0x3ff, 10))
		_, err := s.GetUTF8(1)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 0, s.Pointer())
	})
}

// TestHex 测试十六进制编码
func TestHex(t *testing.T) {
	s := New()
	require.NoError(t, s.InsertHex("5"))
	assert.Equal(t, 4, s.Pointer())
	require.NoError(t, s.AppendHex("af0"))
	assert.Equal(t, 4, s.Pointer())

	got, err := s.GetHex(3)
	require.NoError(t, err)
	assert.Equal(t, "af0", got)

	require.NoError(t, s.SetPointer(0))
	got, err = s.GetHex(4)
	require.NoError(t, err)
	assert.Equal(t, "5af0", got)

	_, err = s.GetHex(1)
	assert.ErrorIs(t, err, ErrInsufficientData)

	t.Run("大写输入小写输出", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AppendHex("ABcd"))
		got, err := s.GetHexRemaining()
		require.NoError(t, err)
		assert.Equal(t, "abcd", got)
	})

	t.Run("非法字符与长度", func(t *testing.T) {
		_, err := MakeHex("0g")
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = New().GetHex(0)
		assert.ErrorIs(t, err, ErrInvalidInput)

		b, err := MakeHex("")
		require.NoError(t, err)
		assert.Equal(t, 0, b.Len())
	})
}

// Test3B40 测试 3B40 编码
func Test3B40(t *testing.T) {
	s := New()
	require.NoError(t, s.Insert3B40("exe"))
	require.NoError(t, s.Append3B40("pdf"))
	assert.Equal(t, 16, s.Pointer())

	got, err := s.Get3B40(3)
	require.NoError(t, err)
	assert.Equal(t, "pdf", got)

	require.NoError(t, s.SetPointer(0))
	got, err = s.Get3B40(3)
	require.NoError(t, err)
	assert.Equal(t, "exe", got)

	for _, word := range []string{"tar.gz", "a", "7z", "#$&.", "jpeg"} {
		t.Run(word, func(t *testing.T) {
			s := New()
			require.NoError(t, s.Insert3B40(word))
			require.NoError(t, s.SetPointer(0))
			got, err := s.Get3B40(len(word))
			require.NoError(t, err)
			assert.Equal(t, word, got)
		})
	}

	t.Run("尾部位宽", func(t *testing.T) {
		one, err := Make3B40("a")
		require.NoError(t, err)
		assert.Equal(t, 5, one.Len())
		two, err := Make3B40("ab")
		require.NoError(t, err)
		assert.Equal(t, 11, two.Len())
	})

	t.Run("非法字符", func(t *testing.T) {
		_, err := Make3B40("EXE")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
