// Command verify recalculates the winners of a Pump Pot reward cycle from
// a verification package directory. It is fully offline: no network, no
// database, just the files in the package.
//
// Usage:
//
//	verify [-json] <package-dir>
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"pumppot-verifier/internal/domain"
	"pumppot-verifier/internal/pkgload"
	"pumppot-verifier/internal/report"
	"pumppot-verifier/internal/rewards"
)

func main() {
	jsonOutput := flag.Bool("json", false, "Emit winner records as JSON instead of the text report")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-json] <package-dir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	packageDir := flag.Arg(0)

	logger := log.New(os.Stderr, "[verify] ", log.LstdFlags)

	pkg, err := pkgload.Load(packageDir)
	if err != nil {
		logger.Printf("failed to load package: %v", err)
		os.Exit(1)
	}

	// The sentinel entry is not a holder.
	initialHolders := len(pkg.InitialBalances)
	if _, ok := pkg.InitialBalances[domain.StartSignatureKey]; ok {
		initialHolders--
	}
	logger.Printf("loaded package %s: cycle=%s holders=%d initial=%d traders=%d",
		packageDir, pkg.Metadata.CycleID, len(pkg.TokenHolders), initialHolders, len(pkg.CycleStats))

	winners := rewards.New(pkg.Metadata.VerificationSeed).Compute(rewards.Inputs{
		TokenHolders:    pkg.TokenHolders,
		CycleStats:      pkg.CycleStats,
		InitialBalances: pkg.InitialBalances,
		Rules:           pkg.Metadata.Rules,
	})

	if *jsonOutput {
		out, err := report.RenderJSON(winners)
		if err != nil {
			logger.Printf("failed to render winners: %v", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Print(report.Render(pkg.Metadata.CycleID, winners))
}
