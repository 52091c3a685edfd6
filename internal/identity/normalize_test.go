package identity

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_Deterministic(t *testing.T) {
	for _, in := range []string{"", "1", "42", "legacy-post", "ünïcødé", strings.Repeat("x", 40)} {
		first := Normalize(in)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Normalize(in), in)
		}
	}
}

func TestNormalize_KeepsUUIDs(t *testing.T) {
	for i := 0; i < 20; i++ {
		u := uuid.NewString()
		assert.Equal(t, u, Normalize(u))
	}
	upper := "9B2D6F0A-1C3E-4A5B-8C7D-0E1F2A3B4C5D"
	assert.Equal(t, upper, Normalize(upper))
}

func TestNormalize_AlwaysUUIDShaped(t *testing.T) {
	for _, in := range []string{"", "1", "8", "not a uuid", "00000000-0000-0000-0000-000000000000", "\x00\xff"} {
		assert.True(t, IsUUID(Normalize(in)), "input %q", in)
	}
}

func TestNormalize_Golden(t *testing.T) {
	// "1" 补齐为 "1000000000000000"：0x31 加 15 个 0x30，版本与变体位被改写
	assert.Equal(t, "31303030-3030-4030-b030-303030303030", Normalize("1"))
	assert.Equal(t, "30303030-3030-4030-b030-303030303030", Normalize(""))
}

func TestNormalize_UTF16CodeUnits(t *testing.T) {
	// U+1F600 是一对代理码元 0xD83D 0xDE00，各取低 8 位
	assert.Equal(t, "3d003030-3030-4030-b030-303030303030", Normalize("\U0001F600"))
	assert.Equal(t, "e9303030-3030-4030-b030-303030303030", Normalize("é"))

	// 非法 UTF-8 字节按原值参与
	assert.Equal(t, "fe303030-3030-4030-b030-303030303030", Normalize("\xfe"))
	assert.Equal(t, "ff303030-3030-4030-b030-303030303030", Normalize("\xff"))
}

func TestNormalize_PrefixCollision(t *testing.T) {
	a := "abcdefghijklmnop-first"
	b := "abcdefghijklmnop-second"
	assert.Equal(t, Normalize(a), Normalize(b))
	assert.NotEqual(t, Normalize("1"), Normalize("2"))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("123e4567-e89b-12d3-a456-426614174000"))
	assert.False(t, IsUUID("123e4567-e89b-62d3-a456-426614174000"), "version 6 not accepted")
	assert.False(t, IsUUID("123e4567-e89b-12d3-c456-426614174000"), "variant c not accepted")
	assert.False(t, IsUUID("1"))
}
