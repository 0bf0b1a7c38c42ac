// Command queentransform finds a minimal sequence of single-piece moves
// carrying an initial N-queens placement to a goal placement.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kestrelquest/queentransform/assignment"
	"github.com/kestrelquest/queentransform/boardio"
	"github.com/kestrelquest/queentransform/render"
	"github.com/kestrelquest/queentransform/square"
)

var (
	trustFlag       = flag.Bool("trust", false, "skip input validation, use the fast parsing paths")
	quietFlag       = flag.Bool("q", false, "suppress human-readable output")
	benchFlag       = flag.Bool("b", false, "print phase timings")
	helpFlag        = flag.Bool("h", false, "show usage")
	reconstructFlag = flag.Bool("reconstruct", false, "solve classical N-queens reconstruction instead of assignment; no goal file")
)

var program = filepath.Base(os.Args[0])

var usage = `queentransform: move queens from an initial placement to a goal placement
in the minimum number of single-piece moves.

Usage: ` + program + ` [INIT] [GOAL] [-trust] [-q] [-b] [-h]
       ` + program + ` [INIT] -reconstruct [-trust] [-q] [-b] [-h]

With no positional arguments, ` + program + ` looks for files named "init"
and "goal" in the current directory, then ./states/, ./src/states/, and
../../src/states/. With one argument, only the initial file is read and
the 8-queen default goal is used.

With -reconstruct, no goal is read: the program instead finds a sequence
of single-axis moves turning INIT into some non-attacking placement (not
guaranteed to be the shortest), and a goal file argument is rejected.

Flags:
  -trust         skip input validation, use the fast parsing paths
  -q, -quiet     suppress human-readable output
  -b, -bench     print phase timings
  -reconstruct   solve classical N-queens reconstruction, no goal needed
  -h, -help      show this help
`

var searchDirs = []string{".", "states", filepath.Join("src", "states"), filepath.Join("..", "..", "src", "states")}

func main() {
	flag.BoolVar(quietFlag, "quiet", false, "suppress human-readable output")
	flag.BoolVar(benchFlag, "bench", false, "print phase timings")
	flag.BoolVar(helpFlag, "help", false, "show usage")
	flag.Parse()
	if *helpFlag {
		fmt.Print(usage)
		os.Exit(0)
	}
	if err := run(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	start := time.Now()

	initPath, goalPath, err := resolvePaths(args)
	if err != nil {
		return err
	}

	initData, err := os.ReadFile(initPath)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", initPath, err)
	}
	initQueens, err := boardio.Parse(string(initData), *trustFlag)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", initPath, err)
	}
	n := len(initQueens)

	if *reconstructFlag {
		if len(args) == 2 {
			return fmt.Errorf("-reconstruct takes no goal file (got %s)", goalPath)
		}
		goalPath = "" // ignore any default-searched goal file; reconstruction needs none
	}

	var goalQueens []square.Square
	if !*reconstructFlag {
		if goalPath != "" {
			goalData, err := os.ReadFile(goalPath)
			if err != nil {
				return fmt.Errorf("cannot read %s: %w", goalPath, err)
			}
			goalQueens, err = boardio.Parse(string(goalData), *trustFlag)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", goalPath, err)
			}
		} else {
			goalQueens, err = boardio.DefaultGoal(n)
			if err != nil {
				return err
			}
		}
	}
	parseDone := time.Now()

	var solution []square.Segment
	if *reconstructFlag {
		solution, _ = assignment.SolveReconstruction(initQueens)
	} else if assignment.AlreadySolved(initQueens, goalQueens) {
		solution = nil
	} else {
		eng, seed, err := assignment.NewEngine(initQueens, goalQueens)
		if err != nil {
			return err
		}
		solution, _ = eng.Search(seed)
	}
	searchDone := time.Now()

	if !*quietFlag {
		init := square.NewBoardFromSquares(n, initQueens)
		render.Replay(os.Stdout, init, solution)
	}
	if *benchFlag {
		fmt.Printf("parse: %s, search: %s, total: %s\n",
			parseDone.Sub(start), searchDone.Sub(parseDone), searchDone.Sub(start))
	}
	return nil
}

// resolvePaths implements spec.md §6's positional-argument and
// default-file-search rules: zero args search searchDirs for "init" and
// "goal"; one arg reads only the initial file (goalPath returned empty, so
// the caller falls back to the 8-queen default); two args use both exactly.
func resolvePaths(args []string) (initPath, goalPath string, err error) {
	switch len(args) {
	case 0:
		initPath, err = findDefault("init")
		if err != nil {
			return "", "", err
		}
		goalPath, _ = findDefault("goal") // absence is fine; default goal applies
		return initPath, goalPath, nil
	case 1:
		return args[0], "", nil
	case 2:
		return args[0], args[1], nil
	default:
		return "", "", fmt.Errorf("too many arguments (got %d, want 0, 1, or 2)", len(args))
	}
}

func findDefault(name string) (string, error) {
	for _, dir := range searchDirs {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no %q file found in %v", name, searchDirs)
}
