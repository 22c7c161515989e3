package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawEntryFirst(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", RawEntry(nil).First())
	assert.Equal(t, "only", RawEntry{"only"}.First())
	assert.Equal(t, "a", RawEntry{"a", "b"}.First())
}

func TestCanonicalKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DB_NAME", canonicalKey(" db_name "))
	assert.Equal(t, "", canonicalKey("   "))
}
