package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"10 Effective Strategies for Career Growth in 2024": "10-effective-strategies-for-career-growth-in-2024",
		"  Hello   World  ":              "hello-world",
		"Salt & Pepper":                  "salt-and-pepper",
		"Networking: Building Meaningful": "networking-building-meaningful",
		"Café Crème":                     "cafe-creme",
		"--already--dashed--":            "already-dashed",
		"snake_case stays":               "snake_case-stays",
		"!!!":                            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Make(in), in)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("hello-world"))
	assert.True(t, Valid(Make("Mastering Remote Work: Productivity Strategies")))
	assert.False(t, Valid("Hello-World"))
	assert.False(t, Valid("-leading"))
	assert.False(t, Valid("double--dash"))
	assert.False(t, Valid(""))
}
