package domain

// ArchAlias maps a legacy config option to the architecture name it implies.
type ArchAlias struct {
	Option string
	Arch   string
}

// LegacyArchAliases lists config options identifying architectures whose
// arch/ directory name does not match their CONFIG_* option. Checked in
// order; the first enabled option wins.
var LegacyArchAliases = []ArchAlias{
	{Option: "CONFIG_UML", Arch: "um"},
	{Option: "CONFIG_X86_32", Arch: "i386"},
	{Option: "CONFIG_X86_64", Arch: "x86_64"},
	{Option: "CONFIG_PPC32", Arch: "powerpc"},
	{Option: "CONFIG_PPC64", Arch: "powerpc"},
	{Option: "CONFIG_SUPERH", Arch: "sh"},
	{Option: "CONFIG_SUPERH32", Arch: "sh"},
	{Option: "CONFIG_SUPERH64", Arch: "sh"},
}
