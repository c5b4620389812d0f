package repository

import (
	"errors"
	"testing"
)

func TestIsDuplicateKey(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("Error 1062 (23000): Duplicate entry 'Plaza' for key 'hotel.Nombre'"), true},
		{errors.New("Error 1452 (23000): Cannot add or update a child row"), false},
		{errors.New("connection refused"), false},
	}
	for _, c := range cases {
		if got := isDuplicateKey(c.err); got != c.want {
			t.Fatalf("isDuplicateKey(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}
