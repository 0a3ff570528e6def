package jobstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"go", "go"},
		{"100%_remote", `100\%\_remote`},
		{`c:\temp`, `c:\\temp`},
		{"%%__", `\%\%\_\_`},
	}
	for _, c := range cases {
		require.Equal(t, c.out, escapeLike(c.in), c.in)
	}
}
