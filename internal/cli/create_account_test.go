package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabachkhoa/api/internal/apperr"
)

func TestCreateAccountCommand_ParseFlags(t *testing.T) {
	cmd := NewCreateAccountCommand()

	err := cmd.ParseFlags([]string{"-username", "alice", "-password", "secret1", "-db", "x.db"})

	require.NoError(t, err)
	assert.Equal(t, "alice", cmd.Username)
	assert.Equal(t, "secret1", cmd.Password)
	assert.Equal(t, "x.db", cmd.DatabasePath)
	assert.Equal(t, "sqlite", cmd.Driver)
	assert.Equal(t, 10, cmd.BcryptCost)
}

func TestCreateAccountCommand_ParseFlags_Required(t *testing.T) {
	assert.ErrorContains(t, NewCreateAccountCommand().ParseFlags([]string{"-password", "secret1"}), "-username")
	assert.ErrorContains(t, NewCreateAccountCommand().ParseFlags([]string{"-username", "alice"}), "-password")
}

func TestCreateAccountCommand_Run(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli.db")
	out := &bytes.Buffer{}

	cmd := NewCreateAccountCommand()
	cmd.out = out
	require.NoError(t, cmd.ParseFlags([]string{"-username", "alice", "-password", "secret1", "-db", dbPath, "-bcrypt-cost", "4"}))

	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), `"alice"`)

	err := cmd.Run()
	assert.True(t, apperr.Is(err, apperr.KindConflict), "got %v", err)
}

func TestCreateAccountCommand_Run_ShortPassword(t *testing.T) {
	cmd := NewCreateAccountCommand()
	cmd.out = &bytes.Buffer{}
	require.NoError(t, cmd.ParseFlags([]string{"-username", "alice", "-password", "123", "-db", filepath.Join(t.TempDir(), "cli.db")}))

	err := cmd.Run()

	assert.True(t, apperr.Is(err, apperr.KindValidation), "got %v", err)
}
