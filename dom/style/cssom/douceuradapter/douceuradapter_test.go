package douceuradapter

import (
	"testing"

	"github.com/npillmayer/reveal/dom/style/cssom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarations(t *testing.T) {
	kvs, err := Parser{}.Declarations("clip-path: inset(0 100% 0 0); Opacity: 0 !important;")
	require.NoError(t, err)
	require.Len(t, kvs, 2)
	assert.Equal(t, "clip-path", kvs[0].Key)
	assert.Equal(t, "inset(0 100% 0 0)", kvs[0].Value.String())
	assert.Equal(t, "opacity", kvs[1].Key)
	assert.Equal(t, "0 !important", kvs[1].Value.String())
}

func TestPropertyMap(t *testing.T) {
	pmap, err := cssom.PropertyMap(Parser{}, "clip-path: polygon(100% 100%, 100% 100%, 100% 100%)")
	require.NoError(t, err)
	p, ok := pmap.Property("clip-path")
	assert.True(t, ok)
	assert.Equal(t, "polygon(100% 100%, 100% 100%, 100% 100%)", p.String())
	empty, err := cssom.PropertyMap(Parser{}, "   ")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Size())
}
