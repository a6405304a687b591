package converter

// Limits enforced by the downstream embed API. Callers may check against
// these before building an embed.
const (
	// MaxDescriptionLength is the exclusive upper bound on the description
	// length, counted in bytes of its UTF-8 encoding.
	MaxDescriptionLength = 4096
	// MaxFieldCount is the largest number of fields an embed may carry.
	MaxFieldCount = 25
)
