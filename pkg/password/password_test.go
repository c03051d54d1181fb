package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/componentes-api/pkg/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("s3creta-larga", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "s3creta-larga", hash)
	assert.True(t, password.Verify("s3creta-larga", hash))
	assert.False(t, password.Verify("otra", hash))
}

func TestHash_CostoFueraDeRangoUsaDefault(t *testing.T) {
	hash, err := password.Hash("x", 0)
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, password.DefaultCost, cost)
}

func TestHash_MasDe72BytesEsErrTooLong(t *testing.T) {
	_, err := password.Hash(strings.Repeat("p", password.MaxBytes+1), bcrypt.MinCost)
	assert.ErrorIs(t, err, password.ErrTooLong)

	_, err = password.Hash(strings.Repeat("p", password.MaxBytes), bcrypt.MinCost)
	assert.NoError(t, err)
}

func TestDummy_UsaElCostoConfigurado(t *testing.T) {
	for _, cost := range []int{bcrypt.MinCost, 6, 0} {
		d := password.NewDummy(cost)
		want := cost
		if cost == 0 {
			want = password.DefaultCost
		}
		assert.Equal(t, want, d.Cost())
		assert.False(t, d.Verify("componentes-api/dummy"))
	}
}
