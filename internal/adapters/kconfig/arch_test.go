package kconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kconf/internal/adapters/kconfig"
	"go.trai.ch/kconf/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// addArch creates arch/<name> under kdir, with a Kconfig file unless bare.
func addArch(t *testing.T, kdir, name string, bare bool) {
	t.Helper()
	dir := filepath.Join(kdir, "arch", name)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	if !bare {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Kconfig"), []byte("# dummy\n"), 0o600))
	}
}

func TestArch_DirectoryMatch(t *testing.T) {
	kdir := t.TempDir()
	addArch(t, kdir, "x86", false)
	// The directory-derived match wins over the CONFIG_X86_64 fallback alias.
	writeConfig(t, kdir, "CONFIG_X86=y\nCONFIG_X86_64=y\n")

	store := kconfig.NewStore(quietLogger(t))

	arch, ok := store.Arch(kdir)
	assert.True(t, ok)
	assert.Equal(t, "x86", arch)
}

func TestArch_SkipsCandidatesWithoutKconfig(t *testing.T) {
	kdir := t.TempDir()
	addArch(t, kdir, "foo", true)
	addArch(t, kdir, "x86", false)
	writeConfig(t, kdir, "CONFIG_FOO=y\nCONFIG_X86=y\n")

	store := kconfig.NewStore(quietLogger(t))

	arch, ok := store.Arch(kdir)
	assert.True(t, ok)
	assert.Equal(t, "x86", arch)
}

func TestArch_FallbackAliases(t *testing.T) {
	tests := []struct {
		name   string
		config string
		want   string
	}{
		{"uml", "CONFIG_UML=y\n", "um"},
		{"i386", "CONFIG_X86_32=y\n", "i386"},
		{"x86_64", "CONFIG_X86_64=y\n", "x86_64"},
		{"ppc32", "CONFIG_PPC32=y\n", "powerpc"},
		{"ppc64", "CONFIG_PPC64=y\n", "powerpc"},
		{"superh", "CONFIG_SUPERH=y\n", "sh"},
		{"superh64", "CONFIG_SUPERH64=y\n", "sh"},
		// CONFIG_UML precedes CONFIG_X86_64 in the alias table.
		{"uml before x86_64", "CONFIG_X86_64=y\nCONFIG_UML=y\n", "um"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kdir := t.TempDir()
			// An arch directory with no candidates forces the fallback path.
			require.NoError(t, os.Mkdir(filepath.Join(kdir, "arch"), 0o750))
			writeConfig(t, kdir, tt.config)

			store := kconfig.NewStore(quietLogger(t))

			arch, ok := store.Arch(kdir)
			assert.True(t, ok)
			assert.Equal(t, tt.want, arch)
		})
	}
}

func TestArch_OutOfTreeSourceLink(t *testing.T) {
	srcDir := t.TempDir()
	addArch(t, srcDir, "arm64", false)

	buildDir := t.TempDir()
	// Out-of-tree output directories mirror arch/ without the Kconfig files.
	addArch(t, buildDir, "arm64", true)
	require.NoError(t, os.Symlink(srcDir, filepath.Join(buildDir, "source")))
	writeConfig(t, buildDir, "CONFIG_ARM64=y\n")

	store := kconfig.NewStore(quietLogger(t))

	arch, ok := store.Arch(buildDir)
	assert.True(t, ok)
	assert.Equal(t, "arm64", arch)
}

func TestArch_SourceMustBeSymlink(t *testing.T) {
	kdir := t.TempDir()
	addArch(t, kdir, "arm64", true)
	// A plain "source" directory does not count as an out-of-tree link.
	require.NoError(t, os.MkdirAll(filepath.Join(kdir, "source", "arch", "arm64"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(kdir, "source", "arch", "arm64", "Kconfig"), []byte("# dummy\n"), 0o600))
	writeConfig(t, kdir, "CONFIG_ARM64=y\n")

	store := kconfig.NewStore(quietLogger(t))

	_, ok := store.Arch(kdir)
	assert.False(t, ok)
}

func TestArch_MissingArchDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).Times(1)

	kdir := t.TempDir()
	writeConfig(t, kdir, "CONFIG_X86=y\n")

	store := kconfig.NewStore(log)

	arch, ok := store.Arch(kdir)
	assert.False(t, ok)
	assert.Empty(t, arch)
}

func TestArch_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	// One error for the unreadable .config, one for the failed inference.
	log.EXPECT().Error(gomock.Any()).Times(2)

	kdir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(kdir, "arch"), 0o750))

	store := kconfig.NewStore(log)

	arch, ok := store.Arch(kdir)
	assert.False(t, ok)
	assert.Empty(t, arch)
}
