package domain

// Report is a point-in-time summary of a configured kernel tree.
type Report struct {
	KernelDir   string  `yaml:"kernelDir" json:"kernelDir"`
	Arch        string  `yaml:"arch,omitempty" json:"arch,omitempty"`
	Fingerprint string  `yaml:"fingerprint" json:"fingerprint"`
	Options     Mapping `yaml:"options" json:"options"`
}
