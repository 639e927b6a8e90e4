package stats

// Counter key prefixes
const (
	SelectionKeyPrefix = "stats:selection:"
	InquiryKeyPrefix   = "stats:inquiry:"
)
