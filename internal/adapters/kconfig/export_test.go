package kconfig

// SetReadFileForTest swaps the file read function.
// This is exported for testing purposes only.
func (s *Store) SetReadFileForTest(fn func(string) ([]byte, error)) {
	s.readFile = fn
}

// ParseLine exposes parseLine.
// This is exported for testing purposes only.
func ParseLine(line string) (key, value string, ok bool) {
	e, ok := parseLine(line)
	return e.key, e.value, ok
}
