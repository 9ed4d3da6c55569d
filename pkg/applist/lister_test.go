package applist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/mirkobrombin/lsapps/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0755))
	}
}

func touch(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0644))
	}
}

func names(apps []types.Application) []string {
	var out []string
	for _, app := range apps {
		out = append(out, app.Name)
	}
	return out
}

func TestIsBundleName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Safari.app", true},
		{"a.app", true},
		{"Foo.bar.app", true},
		{"..app", true},
		{".app", false},
		{"Foo.App", false},
		{"Foo.APP", false},
		{"Foo.app.", false},
		{"Foo.apps", false},
		{"Fooapp", false},
		{"Foo", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBundleName(tt.name))
		})
	}
}

func TestCollect_Scenario(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "Safari.app", "Notes.app", "Cache")
	touch(t, root, "readme.txt")

	apps, err := Collect(root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Safari.app", "Notes.app"}, names(apps))
	for _, app := range apps {
		assert.Equal(t, root+"/"+app.Name, app.Path)
	}
}

func TestCollect_Classification(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "Foo.app", "Foo.App", "Bar.APP", ".app", "Baz.app.", "Nested")
	mkdirs(t, filepath.Join(root, "Nested"), "Deep.app")
	touch(t, root, "File.app", "Other.txt")

	apps, err := Collect(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"Foo.app"}, names(apps))
	assert.Equal(t, filepath.Join(root, "Foo.app"), apps[0].Path)
}

func TestCollect_Symlinks(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	mkdirs(t, other, "Real.app")
	touch(t, other, "file")

	require.NoError(t, os.Symlink(filepath.Join(other, "Real.app"), filepath.Join(root, "Linked.app")))
	require.NoError(t, os.Symlink(filepath.Join(other, "file"), filepath.Join(root, "FileLink.app")))

	apps, err := Collect(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Linked.app"}, names(apps))
}

func TestCollect_EmptyDirectory(t *testing.T) {
	apps, err := Collect(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestCollect_ManyEntries(t *testing.T) {
	root := t.TempDir()
	var want []string
	for i := 0; i < readBatchSize*3+5; i++ {
		name := fmt.Sprintf("App%03d.app", i)
		mkdirs(t, root, name)
		want = append(want, name)
		touch(t, root, name+".txt")
	}

	apps, err := Collect(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, names(apps))
}

func TestCollect_MissingDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "missing")

	apps, err := Collect(target)
	assert.Nil(t, apps)

	var dirErr *DirectoryAccessError
	require.ErrorAs(t, err, &dirErr)
	assert.Equal(t, target, dirErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), target)
}

func TestCollect_NotADirectory(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "plain")
	target := filepath.Join(root, "plain")

	_, err := Collect(target)

	var dirErr *DirectoryAccessError
	require.ErrorAs(t, err, &dirErr)
	assert.ErrorIs(t, err, syscall.ENOTDIR)
}

func TestCollect_UnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	target := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(target, 0000))
	t.Cleanup(func() { _ = os.Chmod(target, 0755) })

	_, err := Collect(target)

	var dirErr *DirectoryAccessError
	require.ErrorAs(t, err, &dirErr)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestApplications_DanglingEntryAborts(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "Good.app")
	broken := filepath.Join(root, "Broken.app")
	require.NoError(t, os.Symlink(filepath.Join(root, "nowhere"), broken))

	var errs []error
	for _, err := range Applications(root) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	require.Len(t, errs, 1)
	var entryErr *EntryAccessError
	require.ErrorAs(t, errs[0], &entryErr)
	assert.Equal(t, broken, entryErr.Path)
	assert.ErrorIs(t, errs[0], os.ErrNotExist)

	_, err := Collect(root)
	assert.ErrorAs(t, err, &entryErr)
}

func TestApplications_EarlyBreak(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "A.app", "B.app", "C.app")

	seen := 0
	for _, err := range Applications(root) {
		require.NoError(t, err)
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestApplications_Rereads(t *testing.T) {
	root := t.TempDir()
	seq := Applications(root)

	count := func() int {
		n := 0
		for _, err := range seq {
			require.NoError(t, err)
			n++
		}
		return n
	}

	assert.Equal(t, 0, count())
	mkdirs(t, root, "New.app")
	assert.Equal(t, 1, count())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Safari", types.Application{Name: "Safari.app"}.DisplayName())
	assert.Equal(t, "Foo", types.Application{Name: "Foo"}.DisplayName())
}

func TestCollect_KeepsTargetAsGiven(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "Foo.app")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	unclean := root + "/../" + filepath.Base(root)
	tests := []struct {
		target string
		want   string
	}{
		{".", "./Foo.app"},
		{"./", "./Foo.app"},
		{unclean, unclean + "/Foo.app"},
		{root + "/", root + "/Foo.app"},
		{root, root + "/Foo.app"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			apps, err := Collect(tt.target)
			require.NoError(t, err)
			require.Len(t, apps, 1)
			assert.Equal(t, tt.want, apps[0].Path)
		})
	}
}

func TestEntryPath(t *testing.T) {
	assert.Equal(t, "/Foo.app", entryPath("/", "Foo.app"))
	assert.Equal(t, "/Applications/Foo.app", entryPath("/Applications", "Foo.app"))
	assert.Equal(t, "a/../b/Foo.app", entryPath("a/../b", "Foo.app"))
}

func TestApplications_DanglingNonBundleAborts(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "Good.app")
	broken := filepath.Join(root, "notes")
	require.NoError(t, os.Symlink(filepath.Join(root, "nowhere"), broken))

	apps, err := Collect(root)
	assert.Nil(t, apps)

	var entryErr *EntryAccessError
	require.ErrorAs(t, err, &entryErr)
	assert.Equal(t, broken, entryErr.Path)
}
