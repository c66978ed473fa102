// fx25wrap reads a hex-dump of AX.25 frames and wraps each into an FX.25
// frame (correlation tag plus RS(255,223) codeword).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/HarshLk/rs-and-fx.25/internal/fx25"
	"github.com/HarshLk/rs-and-fx.25/internal/gf"
	"github.com/HarshLk/rs-and-fx.25/internal/hexdump"
	"github.com/HarshLk/rs-and-fx.25/internal/ledger"
	"github.com/HarshLk/rs-and-fx.25/internal/rs"
)

const version = "1.0.0"

func main() {
	var (
		ledgerPath = flag.String("ledger", "ledger.db", "Path to the run ledger database")
		ledgerOn   = flag.Bool("ledger-enabled", true, "Record this run in the ledger")
		verbose    = flag.Bool("v", false, "Enable verbose logging")
		showVer    = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVer {
		fmt.Printf("fx25wrap v%s\n", version)
		return
	}

	if flag.NArg() < 2 {
		log.Fatalf("usage: fx25wrap [-ledger path] <input> <output>")
	}
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	log.SetFlags(log.LstdFlags)

	in, err := os.Open(inputPath)
	if err != nil {
		log.Fatalf("failed to open %s: %v", inputPath, err)
	}
	defer in.Close()

	var parseErrors int
	frames, err := hexdump.ReadAll(in, func(error) { parseErrors++ })
	if err != nil {
		log.Fatalf("failed to read %s: %v", inputPath, err)
	}

	wrapper := fx25.New(rs.New(gf.New()))

	started := time.Now()
	var wrapped [][]byte
	failed := parseErrors
	for i, frame := range frames {
		fx, err := wrapper.Wrap(frame)
		if err != nil {
			log.Printf("warning: skipping frame %d: %v", i, err)
			failed++
			continue
		}
		wrapped = append(wrapped, fx)
		if *verbose {
			log.Printf("wrapped frame %d (%d bytes -> %d bytes)", i, len(frame), len(fx))
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("failed to create %s: %v", outputPath, err)
	}
	defer out.Close()

	if err := hexdump.WriteAllFX25(out, wrapped, fx25.TagLen); err != nil {
		log.Fatalf("failed to write %s: %v", outputPath, err)
	}

	log.Printf("processed=%d failed=%d", len(frames), failed)

	if *ledgerOn {
		rec := &ledger.RunRecord{
			Kind:       ledger.KindFX25Wrap,
			StartedAt:  started,
			FinishedAt: time.Now(),
			Processed:  len(frames),
			Failed:     failed,
			SourcePath: inputPath,
			DestPath:   outputPath,
		}
		if err := ledger.Record(*ledgerPath, rec); err != nil {
			log.Printf("warning: failed to record run: %v", err)
		}
	}
}
