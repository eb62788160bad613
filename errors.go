package polyline

import "errors"

var (
	// ErrCapacityExceeded is returned when an edit would grow a path beyond
	// MaxSegments. The path is left unchanged.
	ErrCapacityExceeded = errors.New("polyline: segment capacity exceeded")
	// ErrInvalidIndex is returned for segment indices outside the path.
	ErrInvalidIndex = errors.New("polyline: segment index out of range")
	// ErrInvalidLength is returned for non-positive segment lengths.
	ErrInvalidLength = errors.New("polyline: segment length must be positive")
	// ErrNoHit is returned by AddCorner when the point misses the path.
	ErrNoHit = errors.New("polyline: point does not hit the path")
	// ErrTooShort is returned when closing a path with fewer than three
	// segments.
	ErrTooShort = errors.New("polyline: path too short to close")
)
