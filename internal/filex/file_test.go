package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"
)

func TestPrepareFile_CreatesParentDir(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "state", "nested", "session.db")

	got, err := PrepareFile(target)
	require.NoError(t, err)
	require.Equal(t, target, got)

	fi, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}

	_, err = os.Stat(target)
	require.True(t, os.IsNotExist(err), "the file itself is not created")
}

func TestPrepareFile_Idempotent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b.db")

	first, err := PrepareFile(target)
	require.NoError(t, err)
	second, err := PrepareFile(target)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestPrepareFile_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	got, err := PrepareFile("~/.goalline/session.db")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".goalline", "session.db"), got)

	fi, err := os.Stat(filepath.Join(home, ".goalline"))
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestPrepareFile_RelativeBecomesAbsolute(t *testing.T) {
	tmp := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(old) })

	got, err := PrepareFile(filepath.Join("data", "s.db"))
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(got))
	require.Equal(t, "s.db", filepath.Base(got))
}

func TestPrepareFile_FailsWhenParentIsAFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := PrepareFile(filepath.Join(blocker, "session.db"))
	require.Error(t, err)
}
