package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/interfaces"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/infra/scanner"
)

// Scanner selects which scanner adapters are enabled. The container class
// needs an image reference and is only enabled when one is given.
type Scanner struct {
	enabled  []string
	imageRef string
}

func (x *Scanner) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "scanner",
			Usage:       "Enabled scanner classes [static|dependency|secret|iac|container]",
			Category:    "Scanner",
			Sources:     cli.EnvVars("SENTINEL_SCANNERS"),
			Value:       []string{"static", "dependency", "secret", "iac"},
			Destination: &x.enabled,
		},
		&cli.StringFlag{
			Name:        "scan-image",
			Usage:       "Container image reference for the container scanner",
			Category:    "Scanner",
			Sources:     cli.EnvVars("SENTINEL_SCAN_IMAGE"),
			Destination: &x.imageRef,
		},
	}
}

func (x *Scanner) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("enabled", x.enabled),
		slog.Any("imageRef", x.imageRef),
	)
}

// Types returns the enabled scanner classes after validation.
func (x *Scanner) Types() ([]types.ScannerType, error) {
	var resp []types.ScannerType
	for _, name := range x.enabled {
		t := types.ScannerType(name)
		if !t.IsValid() {
			return nil, goerr.Wrap(types.ErrInvalidOption, "unknown scanner class", goerr.V("scanner", name))
		}
		if t == types.ScannerContainer && x.imageRef == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "container scanner needs --scan-image")
		}
		resp = append(resp, t)
	}
	if len(resp) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "no scanner class enabled")
	}
	return resp, nil
}

// NewScanners builds one adapter per enabled class.
func (x *Scanner) NewScanners() ([]interfaces.Scanner, error) {
	enabled, err := x.Types()
	if err != nil {
		return nil, err
	}

	var resp []interfaces.Scanner
	for _, t := range enabled {
		switch t {
		case types.ScannerStatic:
			resp = append(resp, scanner.NewSemgrep())
		case types.ScannerDependency:
			resp = append(resp, scanner.NewTrivyFS())
		case types.ScannerSecret:
			resp = append(resp, scanner.NewGitleaks())
		case types.ScannerIaC:
			resp = append(resp, scanner.NewTrivyConfig())
		case types.ScannerContainer:
			resp = append(resp, scanner.NewTrivyImage(x.imageRef))
		}
	}
	return resp, nil
}
