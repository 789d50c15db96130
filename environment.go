package player

import "os"

// An Environment is a different context in which the application operates.
type Environment string

const (
	Development Environment = "DEVELOPMENT"
	Production  Environment = "PRODUCTION"
	Testing     Environment = "TESTING"
)

func (e Environment) String() string { return string(e) }

func (e Environment) Valid() error {
	switch e {
	case Development, Production, Testing:
		return nil
	default:
		return ErrNotValid
	}
}

// Debugging asserts whether diagnostic output ought to be emitted in e.
// Every Environment except Production is a debugging one.
func (e Environment) Debugging() bool { return e != Production }

// CurrentEnvironment reads the Environment from the APP_ENV environment
// variable, defaulting to Production when unset or invalid so packaged
// builds never leak diagnostics by accident.
func CurrentEnvironment() Environment {
	env := Environment(os.Getenv("APP_ENV"))
	if err := env.Valid(); err != nil {
		return Production
	}

	return env
}
