package kconfig

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/kconf/internal/core/domain"
	"go.trai.ch/zerr"
)

// Arch infers the target architecture of the kernel tree at kdir.
//
// Every directory under <kdir>/arch that carries a Kconfig is a candidate;
// the first whose CONFIG_<NAME> option is enabled wins. When no candidate
// matches, a fixed table of legacy aliases (options whose arch name differs
// from the option name) is consulted in order.
func (s *Store) Arch(kdir string) (string, bool) {
	archDir := filepath.Join(kdir, domain.ArchDirName)
	entries, err := os.ReadDir(archDir)
	if err != nil {
		s.log.Error(zerr.With(zerr.Wrap(err, "kernel tree has no arch directory"), "kdir", kdir))
		return "", false
	}

	// The Kconfig check filters out non-directory entries on its own.
	for _, e := range entries {
		arch := e.Name()
		if !s.hasArchKconfig(kdir, arch) {
			continue
		}
		if s.Enabled(kdir, "CONFIG_"+strings.ToUpper(arch)) {
			return arch, true
		}
	}

	for _, alias := range domain.LegacyArchAliases {
		if s.Enabled(kdir, alias.Option) {
			return alias.Arch, true
		}
	}

	s.log.Error(zerr.With(domain.ErrArchUnknown, "kdir", kdir))
	return "", false
}

// hasArchKconfig reports whether the candidate architecture ships a Kconfig
// file, either in the tree itself or, for out-of-tree build directories,
// through the "source" symlink back to the kernel sources.
func (s *Store) hasArchKconfig(kdir, arch string) bool {
	if fileExists(filepath.Join(kdir, domain.ArchDirName, arch, domain.KconfigFileName)) {
		return true
	}

	link := filepath.Join(kdir, domain.SourceLinkName)
	if fi, err := os.Lstat(link); err != nil || fi.Mode()&os.ModeSymlink == 0 {
		return false
	}
	return fileExists(filepath.Join(link, domain.ArchDirName, arch, domain.KconfigFileName))
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
