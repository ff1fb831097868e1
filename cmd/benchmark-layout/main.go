package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/dd0wney/forcelayout/pkg/forcelayout"
	"github.com/dd0wney/forcelayout/pkg/graphmodel"
	"github.com/dd0wney/forcelayout/pkg/logging"
)

func main() {
	sizesFlag := flag.String("sizes", "50,200,800,3200", "Comma-separated vertex counts to benchmark")
	probability := flag.Float64("probability", 0.02, "Erdos-Renyi edge probability")
	steps := flag.Int("steps", 50, "Steps to run per configuration")
	seed := flag.Uint64("seed", 1, "Deterministic seed")
	flag.Parse()

	logger := logging.NewDefaultLogger()
	sizes := parseSizes(*sizesFlag)

	fmt.Printf("Force-layout strategy benchmark\n")
	fmt.Printf("================================\n\n")
	fmt.Printf("%-10s %-12s %-16s %-16s %-10s\n", "vertices", "strategy", "total", "per-step", "cells")
	fmt.Println("--------------------------------------------------------------------")

	for _, n := range sizes {
		g, err := graphmodel.ErdosRenyi(n, *probability, *seed)
		if err != nil {
			logger.Error("generating graph", logging.VertexCount(n), logging.Err(err))
			continue
		}

		bruteResult := runStrategy(logger, "bruteforce", g, n, *steps, *seed, forcelayout.NewBruteForce())
		fmt.Printf("%-10d %-12s %-16s %-16s %-10s\n", n, "bruteforce", bruteResult.total, bruteResult.perStep, "-")

		bh := forcelayout.NewBarnesHut(forcelayout.DefaultTheta)
		bhResult := runStrategy(logger, "barneshut", g, n, *steps, *seed, bh)
		fmt.Printf("%-10d %-12s %-16s %-16s %-10d\n", n, "barneshut", bhResult.total, bhResult.perStep, bh.NumCells())
	}
}

type strategyResult struct {
	total   time.Duration
	perStep time.Duration
}

func runStrategy(logger logging.Logger, name string, g *graphmodel.Graph, n, steps int, seed uint64, strategy forcelayout.RepulsiveStrategy) strategyResult {
	engine, err := forcelayout.New(1000, 1000, 1.0)
	if err != nil {
		logger.Error("constructing engine", logging.Field{Key: "strategy", Value: name}, logging.Err(err))
		return strategyResult{}
	}
	engine.SetStrategy(strategy)
	if err := engine.Initialize(g, seed); err != nil {
		logger.Error("initializing engine", logging.Field{Key: "strategy", Value: name}, logging.Err(err))
		return strategyResult{}
	}

	start := time.Now()
	for i := 0; i < steps; i++ {
		if err := engine.Step(g); err != nil {
			logger.Error("step failed", logging.Step(i), logging.Err(err))
			break
		}
	}
	total := time.Since(start)

	perStep := time.Duration(0)
	if steps > 0 {
		perStep = total / time.Duration(steps)
	}
	return strategyResult{total: total, perStep: perStep}
}

func parseSizes(s string) []int {
	var sizes []int
	current := 0
	has := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			current = current*10 + int(r-'0')
			has = true
			continue
		}
		if has {
			sizes = append(sizes, current)
		}
		current, has = 0, false
	}
	if has {
		sizes = append(sizes, current)
	}
	return sizes
}
