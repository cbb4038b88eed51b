package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestResolvePath_Relative(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := ResolvePath("session.db")
	require.NoError(t, err)

	// TempDir may sit behind a symlink (macOS), compare resolved forms
	want, err := filepath.EvalSymlinks(tmp)
	require.NoError(t, err)
	gotDir, err := filepath.EvalSymlinks(filepath.Dir(got))
	require.NoError(t, err)
	require.Equal(t, want, gotDir)
	require.Equal(t, "session.db", filepath.Base(got))
}

func TestResolvePath_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	got, err := ResolvePath("~/.flowgate/session.db")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".flowgate", "session.db"), got)
}

func TestEnsureParentDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "a", "b", "session.db")

	got, err := EnsureParentDir(target)
	require.NoError(t, err)
	require.Equal(t, target, got)

	fi, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}

	_, err = os.Stat(target)
	require.True(t, os.IsNotExist(err), "the file itself is left to the caller")
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "x", "session.db")

	first, err := EnsureParentDir(target)
	require.NoError(t, err)
	second, err := EnsureParentDir(target)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureParentDir_FailsIfFileBlocksDirectory(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "x"), []byte("x"), 0o600))

	_, err := EnsureParentDir(filepath.Join(tmp, "x", "session.db"))
	require.Error(t, err, "should fail when a file exists where the directory goes")
}
