package nxcube

import "errors"

// Sentinel errors for the nxcube package.
var (
	// Construction errors
	ErrInvalidSize  = errors.New("nxcube: invalid cube size")
	ErrInvalidSpeed = errors.New("nxcube: invalid rotation speed")
	ErrSizeMismatch = errors.New("nxcube: snapshot size does not match cube")

	// Rotation command errors
	ErrInvalidAxis  = errors.New("nxcube: invalid axis")
	ErrInvalidAngle = errors.New("nxcube: invalid angle")
	ErrInvalidLayer = errors.New("nxcube: invalid layer")
	ErrInvalidScope = errors.New("nxcube: invalid rotation scope")

	// Parsing errors
	ErrInvalidNotation = errors.New("nxcube: invalid rotation notation")

	// State errors
	ErrRotationInProgress = errors.New("nxcube: rotation already in progress")
)
