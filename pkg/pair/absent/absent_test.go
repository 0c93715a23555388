package absent

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	t.Parallel()

	var (
		nilPtr    *int
		nilMap    map[string]int
		nilChan   chan int
		nilFunc   func()
		nilErr    error
		nilSlice  []int
		nilUnsafe unsafe.Pointer
		x         = 1
	)

	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"untyped nil", nil, true},
		{"nil pointer", nilPtr, true},
		{"nil map", nilMap, true},
		{"nil chan", nilChan, true},
		{"nil func", nilFunc, true},
		{"nil error", nilErr, true},
		{"nil unsafe pointer", nilUnsafe, true},
		{"nil slice", nilSlice, false},
		{"empty string", "", false},
		{"zero int", 0, false},
		{"zero struct", struct{}{}, false},
		{"pointer", &x, false},
		{"map", map[string]int{}, false},
		{"func", func() {}, false},
		{"error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Is(tt.in))
		})
	}
}

func TestIs_TypedNilInsideInterface(t *testing.T) {
	t.Parallel()

	var p *struct{ A int }
	var v any = p
	assert.True(t, Is(v))
}
