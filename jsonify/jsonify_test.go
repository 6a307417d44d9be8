package jsonify_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/katas/jsonify"
	"github.com/npillmayer/katas/rect"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type player struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func TestEncode(t *testing.T) {
	jsn, err := jsonify.Encode(player{Name: "ada", Score: 42})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"ada","score":42}`, jsn)
}

func TestEncodeIndent(t *testing.T) {
	jsn, err := jsonify.EncodeIndent(player{Name: "ada", Score: 42})
	require.NoError(t, err)
	assert.True(t, strings.Contains(jsn, "\n  \"name\": \"ada\""))
}

func TestDecode(t *testing.T) {
	p, err := jsonify.Decode[player](`{"name":"ada","score":42}`)
	require.NoError(t, err)
	assert.Equal(t, player{Name: "ada", Score: 42}, p)
}

func TestDecodeError(t *testing.T) {
	_, err := jsonify.Decode[player](`{"name":`)
	assert.Error(t, err)
}

func TestRectRoundTrip(t *testing.T) {
	r := rect.New(3*dimen.PT, 4*dimen.PT)
	jsn, err := jsonify.Encode(r)
	require.NoError(t, err)
	back, err := jsonify.Decode[rect.Rect](jsn)
	require.NoError(t, err)
	assert.Equal(t, r, back)
}
