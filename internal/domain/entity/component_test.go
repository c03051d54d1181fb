package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/componentes-api/internal/domain/entity"
)

func TestValidPrice(t *testing.T) {
	cases := []struct {
		price string
		want  bool
	}{
		{"0.01", true},
		{"10", true},
		{"10.12", true},
		{"10.120", true},
		{"999999999999.99", true},
		{"10.123", false},
		{"0.001", false},
		{"1000000000000", false},
		{"0", false},
		{"-5", false},
	}
	for _, tc := range cases {
		t.Run(tc.price, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.ValidPrice(decimal.RequireFromString(tc.price)))
		})
	}
}

func TestComponentAccepts(t *testing.T) {
	c := &entity.Component{MaxQuantity: 5}
	assert.True(t, c.Accepts(0))
	assert.True(t, c.Accepts(5))
	assert.False(t, c.Accepts(6))
	assert.False(t, c.Accepts(-1))
}
