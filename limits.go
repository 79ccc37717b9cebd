package repoabs

const (
	// NoPageSize disables the limit clause entirely: every row matching the
	// cursor boundary is returned. Any PageSize <= 0 is treated the same way.
	NoPageSize = 0

	MaxPageSize     = 100
	DefaultPageSize = 10
)

// IsNormalizedPageSizeMax clamps an API-supplied page size to (0, maxPageSize]
// and reports whether the input was already inside the range. Non-positive
// input maps to DefaultPageSize, never to "unbounded": unbounded pages must
// be an explicit decision of the repository code, not of the API client.
func IsNormalizedPageSizeMax(pageSize int, maxPageSize int) (int, bool) {
	if pageSize <= 0 {
		return DefaultPageSize, false
	} else if pageSize > maxPageSize {
		return maxPageSize, false
	}

	return pageSize, true
}

func NormalizePageSizeMax(pageSize int, maxPageSize int) int {
	ret, _ := IsNormalizedPageSizeMax(pageSize, maxPageSize)
	return ret
}

func NormalizePageSize(pageSize int) int {
	return NormalizePageSizeMax(pageSize, MaxPageSize)
}
