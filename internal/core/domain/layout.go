package domain

const (
	// ConfigFileName is the resolved kernel configuration inside a kernel directory.
	ConfigFileName = ".config"

	// ArchDirName is the directory holding one subdirectory per supported architecture.
	ArchDirName = "arch"

	// KconfigFileName declares the build options of one architecture.
	KconfigFileName = "Kconfig"

	// SourceLinkName is the symlink an out-of-tree build (make O=) leaves in
	// the output directory, pointing back at the kernel source tree.
	SourceLinkName = "source"
)
