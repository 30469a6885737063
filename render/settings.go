package render

// Settings configures the bytecode listing.
type Settings struct {
	// UnicodeOutput keeps non-ASCII characters in string literals instead of
	// escaping them.
	UnicodeOutput bool
	// ShowStackEffects appends a "// pop N push M" comment to every instruction.
	ShowStackEffects bool
	// ShowLineNumbers writes a linenumber line before instructions that start a
	// source line.
	ShowLineNumbers bool
	// ShowMethodStack writes the stack, locals and arguments sizes under the
	// Code header.
	ShowMethodStack bool
	// OffsetWidth is the field width of instruction offsets.
	OffsetWidth int
}

// DefaultSettings returns the default listing configuration.
func DefaultSettings() Settings {
	return Settings{
		ShowLineNumbers: true,
		ShowMethodStack: true,
		OffsetWidth:     8,
	}
}
