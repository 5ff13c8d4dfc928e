package store

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/domain"
)

func TestLooksSealed(t *testing.T) {
	sealed, err := seal("pw", []byte("A|1\n"))
	require.NoError(t, err)
	assert.True(t, looksSealed(sealed))

	assert.False(t, looksSealed([]byte(`{"v":1}|5`+"\n")))
	assert.False(t, looksSealed([]byte(`{"v":1}`+"\n"+`{"v":2}`+"\n")))
	assert.False(t, looksSealed([]byte(`{"v":1`)))
	assert.False(t, looksSealed(nil))
}

func TestOpen_RejectsForeignScryptParams(t *testing.T) {
	N, r, p := scryptParamsDefault()
	for _, params := range [][3]int{{1 << 30, r, p}, {N, 1 << 20, p}, {N, r, 64}} {
		b, err := json.Marshal(envelope{
			V:      envelopeFormatVersion,
			Salt:   make([]byte, saltSize),
			N:      params[0],
			R:      params[1],
			P:      params[2],
			Cipher: []byte("junk"),
		})
		require.NoError(t, err)

		_, err = open("pw", b)
		assert.ErrorIs(t, err, domain.ErrWrongPassphrase, "params %v", params)
	}
}
