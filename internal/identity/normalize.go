// Package identity 把任意文章 id 映射为 posts 表使用的 UUID
package identity

import (
	"bytes"
	"regexp"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	legacyWidth = 16
	padRune     = '0'
)

var uuidPattern = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// IsUUID 是否为标准的 v1-v5 UUID 字符串
func IsUUID(id string) bool {
	return uuidPattern.MatchString(id)
}

// Normalize 已是 UUID 时原样返回。否则视为旧 id：右侧补 '0' 到 16 个 UTF-16 码元并截断，
// 每个码元取低 8 位作为 v4 UUID 的一个字节。结果是确定的。
//
// 前 16 个码元相同的 id 会得到同一个 UUID。
func Normalize(id string) string {
	if IsUUID(id) {
		return id
	}
	return derive(id).String()
}

func derive(id string) uuid.UUID {
	seed := make([]byte, 0, legacyWidth)
	for _, unit := range codeUnits(id) {
		if len(seed) == legacyWidth {
			break
		}
		seed = append(seed, byte(unit))
	}
	for len(seed) < legacyWidth {
		seed = append(seed, byte(padRune))
	}

	u, err := uuid.NewRandomFromReader(bytes.NewReader(seed))
	if err != nil {
		// reader 总是有 16 字节
		panic(err)
	}
	return u
}

// codeUnits 按 UTF-16 码元展开 id；非法的 UTF-8 字节按原值保留
func codeUnits(id string) []uint16 {
	units := make([]uint16, 0, len(id))
	for len(id) > 0 {
		r, size := utf8.DecodeRuneInString(id)
		if r == utf8.RuneError && size == 1 {
			units = append(units, uint16(id[0]))
		} else {
			units = utf16.AppendRune(units, r)
		}
		id = id[size:]
	}
	return units
}
