package modkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentKeyEquality(t *testing.T) {
	assert := assert.New(t)

	a := ContentKey{Kind: KindComment, ID: 42}
	b := ContentKey{Kind: KindComment, ID: 42}
	c := ContentKey{Kind: KindPost, ID: 42}
	d := ContentKey{Kind: KindComment, ID: 43}

	assert.Equal(a, b)
	assert.NotEqual(a, c)
	assert.NotEqual(a, d)

	seen := map[ContentKey]int{}
	seen[a]++
	seen[b]++
	seen[c]++
	assert.Equal(2, seen[a])
	assert.Equal(1, seen[c])
}

func TestContentKeyString(t *testing.T) {
	assert := assert.New(t)

	k := ContentKey{Kind: KindCommentReport, ID: 99}
	assert.Equal("comment_report:99", k.String())

	parsed, err := ParseContentKey("comment_report:99")
	assert.NoError(err)
	assert.Equal(k, parsed)

	_, err = ParseContentKey("nonsense")
	assert.Error(err)
	_, err = ParseContentKey("gadget:12")
	assert.Error(err)
	_, err = ParseContentKey("comment:twelve")
	assert.Error(err)
}
