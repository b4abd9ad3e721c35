package customer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveHashKnownValue(t *testing.T) {
	got := DeriveHash("a@x.com", "5551234567")
	assert.Equal(t, "27df6ad2afc3533c2b085a88d55741893142e30b1e2f642c154599c4177b5c0e", got)
}

func TestDeriveHashDeterministic(t *testing.T) {
	first := DeriveHash("jane@example.com", "0911000000")
	second := DeriveHash("jane@example.com", "0911000000")
	assert.Equal(t, first, second)
}

func TestDeriveHashDistinctInputs(t *testing.T) {
	base := DeriveHash("jane@example.com", "0911000000")
	assert.NotEqual(t, base, DeriveHash("jane@example.com", "0911000001"))
	assert.NotEqual(t, base, DeriveHash("john@example.com", "0911000000"))
}

func TestDeriveHashShape(t *testing.T) {
	cases := []struct {
		name  string
		email string
		phone string
	}{
		{"empty", "", ""},
		{"unicode", "ʒane@exämple.com", "０９１１"},
		{"long", strings.Repeat("a", 4096) + "@example.com", strings.Repeat("9", 64)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := DeriveHash(tc.email, tc.phone)
			assert.Len(t, h, 64)
			assert.Equal(t, strings.ToLower(h), h)
		})
	}
}
