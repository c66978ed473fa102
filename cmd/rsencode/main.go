// rsencode reads an arbitrary byte stream, splits it into K=223-byte
// blocks (the last zero-padded as needed), and writes the concatenation
// of their N=255-byte RS(255,223) codewords.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/HarshLk/rs-and-fx.25/internal/gf"
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
		fmt.Printf("rsencode v%s\n", version)
		return
	}

	if flag.NArg() < 2 {
		log.Fatalf("usage: rsencode [-ledger path] <input> <output>")
	}
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	log.SetFlags(log.LstdFlags)

	data, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("failed to read %s: %v", inputPath, err)
	}

	codec := rs.New(gf.New())

	out, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("failed to create %s: %v", outputPath, err)
	}
	defer out.Close()

	totalBlocks := (len(data) + rs.K - 1) / rs.K
	if totalBlocks == 0 {
		totalBlocks = 1
	}

	started := time.Now()
	for i := 0; i < totalBlocks; i++ {
		start := i * rs.K
		end := start + rs.K
		if end > len(data) {
			end = len(data)
		}

		codeword, err := codec.Encode(data[start:end])
		if err != nil {
			log.Fatalf("encode failed at block %d: %v", i, err)
		}
		if _, err := out.Write(codeword[:]); err != nil {
			log.Fatalf("failed to write %s: %v", outputPath, err)
		}
		if *verbose {
			log.Printf("encoded block %d (%d data bytes)", i, end-start)
		}
	}
	blocks := totalBlocks

	log.Printf("processed=%d", blocks)

	if *ledgerOn {
		rec := &ledger.RunRecord{
			Kind:       ledger.KindRSEncode,
			StartedAt:  started,
			FinishedAt: time.Now(),
			Processed:  blocks,
			SourcePath: inputPath,
			DestPath:   outputPath,
		}
		if err := ledger.Record(*ledgerPath, rec); err != nil {
			log.Printf("warning: failed to record run: %v", err)
		}
	}
}
