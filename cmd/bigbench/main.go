// This file is part of bignum.
//
// bignum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// bignum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with bignum.  If not, see <https://www.gnu.org/licenses/>.

// Command bigbench runs bigint.Mul against operands of doubling limb
// width, logging each round's timing and serving a live
// go-echarts/statsview dashboard (runtime memory/goroutine stats) for
// the duration of the run.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/bignum/bigint"
	"github.com/jetsetilly/bignum/logger"
)

func main() {
	addr := flag.String("addr", ":18066", "statsview listen address")
	rounds := flag.Int("rounds", 12, "number of doubling-width rounds to run")
	startLimbs := flag.Int("start-limbs", 4, "limb width of the first round")
	flag.Parse()

	viewer.SetConfiguration(viewer.WithAddr(*addr))
	mgr := statsview.New()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go func() {
		if err := mgr.Start(); err != nil {
			logger.Log("bigbench", err.Error())
		}
	}()
	defer mgr.Stop()

	fmt.Printf("dashboard: http://localhost%s/debug/statsview\n", *addr)

	runBenchmark(ctx, *rounds, *startLimbs)
}

func runBenchmark(ctx context.Context, rounds, startLimbs int) {
	limbs := startLimbs
	rng := rand.New(rand.NewSource(1))

	for round := 0; round < rounds; round++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		a := randomBigInt(rng, limbs)
		b := randomBigInt(rng, limbs)

		start := time.Now()
		result := bigint.Mul(a, b)
		elapsed := time.Since(start)

		fmt.Printf("round %2d: %4d limbs x %4d limbs -> %4d limbs in %v\n",
			round, len(a.Limbs()), len(b.Limbs()), len(result.Limbs()), elapsed)
		logger.Logf(logger.Allow, "bigbench", "round %d: %d limbs, %v", round, limbs, elapsed)

		limbs *= 2
	}
}

// randomBigInt builds a non-negative BigInt with exactly n limbs, none
// of which are forced to zero, so multiplication benchmarks exercise
// Karatsuba's recursive split rather than degenerating to the
// single-limb leaf or a phantom-zero shortcut.
func randomBigInt(rng *rand.Rand, n int) *bigint.BigInt {
	limbs := make([]uint64, n)
	for i := range limbs {
		limbs[i] = rng.Uint64()
	}
	msbFirst := make([]uint64, n)
	for i, v := range limbs {
		msbFirst[n-1-i] = v
	}
	return bigint.FromLimbs(msbFirst...)
}
