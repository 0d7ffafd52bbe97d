package shader

import "go.uber.org/zap"

// ProgramBuilderOption is a function that configures a Program during construction.
type ProgramBuilderOption func(*program)

// WithName is an option builder that sets the program name used in logs and errors.
// Defaults to the name of the first stage.
//
// Parameters:
//   - name: the program name
//
// Returns:
//   - ProgramBuilderOption: a function that applies the name option to a program
func WithName(name string) ProgramBuilderOption {
	return func(p *program) {
		p.name = name
	}
}

// WithLogger is an option builder that sets the logger receiving cache-miss warnings.
// Defaults to logger.Log.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - ProgramBuilderOption: a function that applies the logger option to a program
func WithLogger(l *zap.Logger) ProgramBuilderOption {
	return func(p *program) {
		p.log = l
	}
}
