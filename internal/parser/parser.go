// Package parser puts os.Args and the environment into model.Config
package parser

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/UnendingLoop/minigrep/internal/model"
)

// minArgs - program name, query and file path
const minArgs = 3

// LookupEnvFunc has the signature of os.LookupEnv
type LookupEnvFunc func(key string) (string, bool)

// Build validates args (args[0] is the program name) and builds the config.
// Arguments after the file path are ignored.
func Build(args []string, lookupEnv LookupEnvFunc) (*model.Config, error) {
	if err := validation.Validate(args, validation.Required, validation.Length(minArgs, 0)); err != nil {
		return nil, &model.Error{Kind: model.KindInsufficientArguments, Err: err}
	}

	// важно только наличие переменной, значение не проверяем
	ignoreCase := false
	if lookupEnv != nil {
		_, ignoreCase = lookupEnv(model.EnvIgnoreCase)
	}

	return &model.Config{
		Query:      args[1],
		FilePath:   args[2],
		IgnoreCase: ignoreCase,
	}, nil
}
