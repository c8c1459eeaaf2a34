package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	uint128 "github.com/shabbyrobe/go-uint128"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// This is a cheap-and-nasty tool for poking at the long division routine by
// hand. Operands are given as raw limbs; the package has no string parser.

const usage = `Long division poker

Usage: quorem [-log-level=debug] <numer> <denom>

Operands are either a single uint64 (the low limb) or 'hi:lo'. Each limb
accepts any Go integer literal prefix (0x, 0o, 0b).`

var logLevel string

func main() {
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error, fatal)")
	flag.Usage = func() { fmt.Println(usage) }
	flag.Parse()

	if err := run(flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		flag.Usage()
		return fmt.Errorf("missing args")
	}

	logLvl, err := zap.ParseAtomicLevel(logLevel)
	if err != nil {
		return err
	}
	logCfg := zap.NewProductionConfig()
	logCfg.Level = logLvl
	logCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := logCfg.Build()
	if err != nil {
		return err
	}
	defer logger.Sync()

	numer, err := parseLimbs(args[0])
	if err != nil {
		return err
	}
	denom, err := parseLimbs(args[1])
	if err != nil {
		return err
	}

	logger.Debug("operands",
		zap.Stringer("numer", numer),
		zap.Int("numerBits", numer.BitLen()),
		zap.Stringer("denom", denom),
		zap.Int("denomBits", denom.BitLen()))

	q, r, err := numer.DivMod(denom)
	if errors.Is(err, uint128.ErrDivisionByZero) {
		logger.Error("refusing to divide", zap.Error(err))
		return err
	}

	fmt.Printf("%d / %d == %d rem %d\n", numer, denom, q, r)
	for _, base := range []int{2, 8, 10, 16} {
		qs, err := q.Text(base, 0)
		if err != nil {
			return err
		}
		rs, err := r.Text(base, 0)
		if err != nil {
			return err
		}
		fmt.Printf("base %2d: q=%s r=%s\n", base, qs, rs)
	}

	if check := q.Mul(denom).Add(r); !check.Equal(numer) {
		logger.Error("q*denom + r != numer", zap.Stringer("check", check))
		spew.Dump(numer, denom, q, r)
		return fmt.Errorf("reconstruction failed")
	}

	if logLvl.Enabled(zapcore.DebugLevel) {
		spew.Dump(q.Raw())
		spew.Dump(r.Raw())
	}
	return nil
}

func parseLimbs(s string) (uint128.Uint128, error) {
	hs, ls, found := strings.Cut(s, ":")
	if !found {
		lo, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return uint128.Uint128{}, err
		}
		return uint128.From64(lo), nil
	}

	hi, err := strconv.ParseUint(hs, 0, 64)
	if err != nil {
		return uint128.Uint128{}, err
	}
	lo, err := strconv.ParseUint(ls, 0, 64)
	if err != nil {
		return uint128.Uint128{}, err
	}
	return uint128.FromRaw(hi, lo), nil
}
