// Package domain contains the core types for kernel configuration inspection.
package domain

// EnabledValue is the .config value marking an option as built in.
const EnabledValue = "y"

// Mapping holds the resolved build options of one kernel directory, keyed by
// option name (e.g. CONFIG_X86_64). Values are stored with surrounding
// whitespace and double quotes stripped. A Mapping is built once per
// directory and must not be mutated afterwards.
type Mapping map[string]string

// Value returns the value of the given option, reporting whether it is present.
func (m Mapping) Value(option string) (string, bool) {
	v, ok := m[option]
	return v, ok
}

// Enabled reports whether the given option is compiled in, i.e. set to
// exactly "y". Module builds ("m"), disabled options ("n", "") and absent
// options are all not enabled.
func (m Mapping) Enabled(option string) bool {
	return m[option] == EnabledValue
}
