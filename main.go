package main

import (
	"fmt"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/powcheck/powcheck/pow"
	"github.com/powcheck/powcheck/signal"
	"github.com/powcheck/powcheck/util/panics"
	"github.com/powcheck/powcheck/version"
	"github.com/powcheck/powcheck/wire"
)

func main() {
	defer panics.HandlePanic(log, nil)

	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}
	defer backendLog.Close()

	log.Debugf("Version %s", version.Version())

	header, err := headerFromConfig(cfg)
	if err != nil {
		log.Errorf("Assembling header: %s", err)
		fmt.Fprintf(os.Stderr, "Error assembling header: %s\n", err)
		os.Exit(1)
	}

	if cfg.Mine {
		err = mineHeader(cfg, header)
	} else {
		err = verifyHeader(header)
	}
	if err != nil {
		log.Errorf("%s", err)
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// verifyHeader runs the verification pipeline on the header and prints its
// artifacts.
func verifyHeader(header *wire.BlockHeader) error {
	result, err := pow.Verify(header)
	if err != nil {
		return err
	}

	log.Debugf("Verified header %s against target %s", result.Header,
		result.Target)

	fmt.Printf("header:    %s\n", result.Header)
	fmt.Printf("hash:      %s\n", result.Hash)
	fmt.Printf("target:    %s\n", result.Target)
	fmt.Printf("work:      %s\n", result.Work)
	fmt.Printf("confirmed: %t\n", result.Confirmed)

	return nil
}

// mineHeader searches for a nonce that satisfies the header's own target,
// then prints the solved header the same way verification does. The search
// winds down cleanly on an interrupt signal.
func mineHeader(cfg *configFlags, header *wire.BlockHeader) error {
	interrupt := signal.InterruptListener()

	log.Infof("Searching for a nonce satisfying bits %#08x, starting at nonce %d",
		header.Bits, cfg.StartNonce)

	var nonce uint32
	var found bool
	var solveErr error
	doneChan := make(chan struct{})
	spawn(func() {
		nonce, found, solveErr = pow.SolveNonce(header, cfg.StartNonce, interrupt)
		doneChan <- struct{}{}
	})
	<-doneChan

	if errors.Is(solveErr, pow.ErrSolveCancelled) {
		log.Infof("Nonce search cancelled")
		return nil
	}
	if solveErr != nil {
		return solveErr
	}
	if !found {
		return errors.Errorf("no satisfying nonce in [%d, %d]",
			cfg.StartNonce, uint32(math.MaxUint32))
	}

	log.Infof("Found nonce %d", nonce)

	solved := *header
	solved.Nonce = nonce
	return verifyHeader(&solved)
}
