package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"go.uber.org/zap"

	"chaos-chess/engine"
	"chaos-chess/rules"
)

func main() {
	depthFlag := flag.Int("depth", engine.DefaultDepth, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	cutStats := flag.Bool("cutstats", false, "print cutoff statistics after each search")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if *depthFlag <= 0 {
		logger.Fatal("depth must be positive", zap.Int("depth", *depthFlag))
	}

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			logger.Fatal("could not create CPU profile", zap.Error(err))
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			logger.Fatal("could not start CPU profile", zap.Error(err))
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := rules.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}
	state, err := rules.ParseFEN(fen)
	if err != nil {
		logger.Fatal("bad FEN", zap.String("fen", fen), zap.Error(err))
	}

	depth := *depthFlag
	repeat := *repeatFlag
	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", fen, depth, repeat)

	var totalNodes uint64
	startAll := time.Now()
	for i := 0; i < repeat; i++ {
		iterStart := time.Now()
		res := engine.Search(&state, depth)
		iterElapsed := time.Since(iterStart)
		totalNodes += res.Nodes

		best := "(none)"
		if res.Found {
			best = res.Move.UCI()
		}
		fmt.Printf("iteration %d: bestmove %s score=%d nodes=%d time=%v\n", i+1, best, res.Score, res.Nodes, iterElapsed)
		if *cutStats {
			fmt.Printf("  %v\n", res.Cuts)
		}
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v  nps: %.0f\n", totalElapsed, float64(totalNodes)/totalElapsed.Seconds())

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			logger.Fatal("could not create memory profile", zap.Error(err))
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			logger.Fatal("could not write memory profile", zap.Error(err))
		}
	}
}
