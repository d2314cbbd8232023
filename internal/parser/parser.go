// Package parser puts os.Args and environment into launch configuration and validates it for any issues
package parser

import (
	"errors"
	"flag"

	"github.com/UnendingLoop/minigrep/internal/model"
)

var (
	ErrNoQuery    = errors.New("didn't get a query string")
	ErrNoFileName = errors.New("didn't get a file name")
	ErrNoAddress  = errors.New("empty search-node address")
)

// InitConfig builds CLI configuration from positional args (program name excluded) and environment.
// Only presence of CASE_INSENSITIVE matters, its value is ignored.
func InitConfig(args []string, lookupEnv func(string) (string, bool)) (*model.Config, error) {
	var cfg model.Config

	// разбираемся с позиционными аргументами, лишние игнорируем
	switch len(args) {
	case 0:
		return nil, ErrNoQuery
	case 1:
		return nil, ErrNoFileName
	default:
		cfg.Query = args[0]
		cfg.FileName = args[1]
	}

	_, insensitive := lookupEnv(model.EnvCaseInsensitive)
	cfg.CaseSensitive = !insensitive

	if node, ok := lookupEnv(model.EnvNode); ok {
		cfg.Node = node
	}

	return &cfg, nil
}

func InitNodeParam(args []string) (*model.NodeParam, error) {
	flagParser := flag.NewFlagSet("minigrepd", flag.ContinueOnError)
	addr := flagParser.String("address", "", "specify search-node listen address, e.g. ':8080'")
	logFile := flagParser.String("log-file", "", "duplicate log into a rotated file")

	if err := flagParser.Parse(args); err != nil {
		return nil, err
	}

	if *addr == "" {
		return nil, ErrNoAddress
	}

	return &model.NodeParam{
		Address: *addr,
		LogFile: *logFile,
	}, nil
}
