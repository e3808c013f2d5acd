// Command weier computes n·P on a short-Weierstrass curve y² = x³ + ax + b
// over a word-sized modulus and reports whether the result lies on the
// curve. Defaults reproduce the reference scenario on y² = x³ + 4x + 4
// mod 313.
package main

import (
	"flag"
	"os"

	"github.com/smallcurve/weierstrass/pkg/curve"
	"github.com/smallcurve/weierstrass/pkg/logger"
)

func main() {
	var (
		a      = flag.Int64("a", 4, "curve coefficient a")
		b      = flag.Int64("b", 4, "curve coefficient b")
		m      = flag.Int64("m", 313, "modulus (should be prime)")
		x      = flag.Int64("x", 205, "base point x coordinate")
		y      = flag.Int64("y", 130, "base point y coordinate")
		n      = flag.Int64("n", 2, "scalar multiplier")
		verify = flag.Bool("verify", false, "cross-check the result against repeated addition")
		pretty = flag.Bool("pretty", true, "human-readable console output")
		level  = flag.String("level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	log := logger.New(&logger.Config{
		Level:  *level,
		Pretty: *pretty,
	})

	params, err := curve.NewParams(*a, *b, *m)
	if err != nil {
		log.Error().Err(err).Int64("m", *m).Msg("invalid curve parameters")
		os.Exit(1)
	}

	p := curve.NewPoint(*x, *y)
	if !params.IsOnCurve(p) {
		log.Warn().Stringer("point", p).Msg("base point is not on the curve")
	}

	np, err := params.ScalarMult(*n, p)
	if err != nil {
		log.Error().Err(err).Int64("n", *n).Stringer("point", p).Msg("scalar multiplication failed")
		os.Exit(1)
	}

	evt := log.Info().Int64("n", *n).Stringer("result", np)
	if !np.IsInfinity() {
		evt = evt.Bool("on_curve", params.IsOnCurve(np))
	}
	evt.Msg("scalar multiplication complete")

	if *verify {
		check, err := params.ScalarMultNaive(*n, p)
		if err != nil {
			log.Error().Err(err).Msg("repeated-addition cross-check failed")
			os.Exit(1)
		}
		if !check.Equal(np) {
			log.Error().Stringer("naive", check).Stringer("result", np).
				Msg("double-and-add disagrees with repeated addition")
			os.Exit(1)
		}
		log.Info().Msg("repeated-addition cross-check passed")
	}
}
