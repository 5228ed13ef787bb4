package field

// Config carries the run-wide settings of the property annotator.
type Config struct {
	// VerboseDescriptions appends the rendered restrictions to each description.
	VerboseDescriptions bool
}

// restrictionsHeading separates the documentation from the restriction bullets.
const restrictionsHeading = "\n\nRestrictions: "
