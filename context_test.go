package dicomcharset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtraDelimiters(t *testing.T) {
	cases := []struct {
		ctx  Context
		want []byte
	}{
		{Context{}, nil},
		{Context{IsMultiValued: true}, []byte{'\\'}},
		{Context{IsPN: true}, []byte{'^', '='}},
		{Context{IsMultiValued: true, IsPN: true}, []byte{'\\', '^', '='}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.ctx.extraDelimiters())
	}
}
