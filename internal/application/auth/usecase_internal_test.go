package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/componentes-api/pkg/password"
)

func TestNewAuthUseCase_HashFicticioConElCostoConfigurado(t *testing.T) {
	cases := []struct {
		cost int
		want int
	}{
		{cost: 6, want: 6},
		{cost: 0, want: password.DefaultCost},
	}
	for _, tc := range cases {
		uc := NewAuthUseCase(nil, nil, Config{BcryptCost: tc.cost}, nil)
		d, ok := uc.dummy.(*password.Dummy)
		require.True(t, ok)
		assert.Equal(t, tc.want, d.Cost())
	}
}
