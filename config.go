package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/powcheck/powcheck/util/chainhash"
	"github.com/powcheck/powcheck/version"
	"github.com/powcheck/powcheck/wire"
)

const (
	defaultLogFilename    = "powcheck.log"
	defaultErrLogFilename = "powcheck_err.log"
)

type configFlags struct {
	ShowVersion   bool   `short:"V" long:"version" description:"Display version information and exit"`
	HeaderVersion uint32 `long:"headerversion" default:"1" description:"Block header version field"`
	PrevBlock     string `long:"prevblock" description:"Previous block hash as 64 hex characters in display order"`
	MerkleRoot    string `long:"merkleroot" description:"Merkle root as 64 hex characters in display order"`
	Timestamp     uint32 `long:"timestamp" description:"Block time in seconds since the unix epoch"`
	Bits          uint32 `long:"bits" description:"Difficulty target in compact form"`
	Nonce         uint32 `long:"nonce" description:"Block nonce to verify"`
	Mine          bool   `long:"mine" description:"Search for a satisfying nonce instead of verifying the given one"`
	StartNonce    uint32 `long:"startnonce" description:"Nonce to start a --mine search from"`
	LogFile       string `long:"logfile" description:"File to write the log to"`
	ErrLogFile    string `long:"errlogfile" description:"File to write the warning and error levels of the log to"`
	LogLevel      string `short:"d" long:"loglevel" default:"info" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{
		LogFile:    defaultLogFilename,
		ErrLogFile: defaultErrLogFilename,
	}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		return nil, err
	}

	if cfg.PrevBlock == "" {
		return nil, errors.New("--prevblock is required")
	}
	if cfg.MerkleRoot == "" {
		return nil, errors.New("--merkleroot is required")
	}
	if cfg.StartNonce != 0 && !cfg.Mine {
		return nil, errors.New("--startnonce may only be used together with --mine")
	}
	if cfg.Nonce != 0 && cfg.Mine {
		return nil, errors.New("--nonce cannot be used together with --mine, use --startnonce")
	}

	err = initLog(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// headerFromConfig assembles a block header out of the parsed command line
// fields. Hash fields are validated here; the numeric fields cannot exceed
// their wire width since the flag parser already rejects anything that does
// not fit a uint32.
func headerFromConfig(cfg *configFlags) (*wire.BlockHeader, error) {
	prevBlock, err := chainhash.NewHashFromStr(cfg.PrevBlock)
	if err != nil {
		return nil, errors.Wrap(err, "--prevblock")
	}
	merkleRoot, err := chainhash.NewHashFromStr(cfg.MerkleRoot)
	if err != nil {
		return nil, errors.Wrap(err, "--merkleroot")
	}

	return wire.NewBlockHeader(cfg.HeaderVersion, prevBlock, merkleRoot,
		cfg.Timestamp, cfg.Bits, cfg.Nonce), nil
}
