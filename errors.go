package easel

import "errors"

// Errors returned by the engine. Callers match them with errors.Is; most are
// wrapped with detail about the offending value.
var (
	// ErrTypeKindMismatch reports a value that lacks the required capability,
	// such as a nil or zero-value Surface handed to a SurfaceStack.
	ErrTypeKindMismatch = errors.New("easel: value is not of the required kind")

	// ErrInvalidDimension reports a non-positive width or height.
	ErrInvalidDimension = errors.New("easel: width and height must be positive")

	// ErrMissingEventDeclaration reports a tool with no event declaration.
	ErrMissingEventDeclaration = errors.New("easel: tool declares no events")

	// ErrInvalidFlagValue reports a non-boolean value for a boolean property.
	ErrInvalidFlagValue = errors.New("easel: flag value is not a boolean")

	// ErrInvalidColor reports an unparsable color string.
	ErrInvalidColor = errors.New("easel: invalid color")

	// ErrLayerIndex reports a layer index outside the stack.
	ErrLayerIndex = errors.New("easel: layer index out of range")

	// ErrUnknownTool reports a tool that is not a member of the palette.
	ErrUnknownTool = errors.New("easel: tool is not in the palette")

	// ErrAlreadyAdded reports a surface that already belongs to a stack.
	ErrAlreadyAdded = errors.New("easel: surface already belongs to a stack")
)
