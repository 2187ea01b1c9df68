package ports

// ArchDetector infers the target CPU architecture of a configured kernel tree.
//
//go:generate mockgen -source=arch_detector.go -destination=mocks/mock_arch_detector.go -package=mocks
type ArchDetector interface {
	// Arch returns the kernel's target architecture, reporting whether one
	// could be determined.
	Arch(kdir string) (string, bool)
}
