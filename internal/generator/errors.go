package generator

import (
	"errors"

	"github.com/ginjaninja78/uml-models/internal/diagram"
)

// Error kinds surfaced to the command line. Wrapped errors keep these
// sentinels reachable through errors.Is.
var (
	// ErrMissingArgument means a command needing an app name got none.
	ErrMissingArgument = errors.New("please provide an app_name")

	// ErrDiagramNotFound means the app diagram does not exist.
	ErrDiagramNotFound = diagram.ErrDiagramNotFound

	// ErrMalformedDiagram means the app diagram could not be parsed.
	ErrMalformedDiagram = diagram.ErrMalformedDiagram

	// ErrOutputAlreadyPopulated means the target model file is not empty.
	ErrOutputAlreadyPopulated = errors.New("models file is not empty")

	// ErrComparisonInputsMissing means the diagram or the model file is
	// missing for a comparison.
	ErrComparisonInputsMissing = errors.New("UML or models file missing")
)
