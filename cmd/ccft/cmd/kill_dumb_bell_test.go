package cmd

import (
	"bytes"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBellFilter(t *testing.T) {
	var out bytes.Buffer
	f := bellFilter{w: &out}

	n, err := f.Write([]byte{'\a'})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = f.Write([]byte("Restore\a them\a?"))
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	assert.Equal(t, "Restore them?", out.String())
	assert.NoError(t, f.Close())
}

func TestKillReadlineBell(t *testing.T) {
	previous := readline.Stdout
	t.Cleanup(func() { readline.Stdout = previous })

	var out bytes.Buffer
	KillReadlineBell(&out)

	_, err := readline.Stdout.Write([]byte("ok\a"))
	require.NoError(t, err)
	assert.Equal(t, "ok", out.String())
}
