// rsdecode reads a binary stream of concatenated N=255-byte RS(255,223)
// codewords, corrects each, and writes the recovered K=223-byte data
// blocks, trimming trailing zero padding from the final block.
package main

import (
	"bytes"
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
		fmt.Printf("rsdecode v%s\n", version)
		return
	}

	if flag.NArg() < 2 {
		log.Fatalf("usage: rsdecode [-ledger path] <input> <output>")
	}
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	log.SetFlags(log.LstdFlags)

	data, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("failed to read %s: %v", inputPath, err)
	}
	if len(data)%rs.N != 0 {
		log.Printf("warning: input length %d is not a multiple of %d; trailing bytes ignored", len(data), rs.N)
	}

	codec := rs.New(gf.New())

	out, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("failed to create %s: %v", outputPath, err)
	}
	defer out.Close()

	started := time.Now()
	processed, corrected, failed := 0, 0, 0

	for offset := 0; offset+rs.N <= len(data); offset += rs.N {
		var codeword [rs.N]byte
		copy(codeword[:], data[offset:offset+rs.N])

		block, status, err := codec.Decode(codeword)
		isLast := offset+2*rs.N > len(data)

		switch {
		case err != nil:
			failed++
			block = codeword
			if *verbose {
				log.Printf("block %d: uncorrectable, emitting received word unchanged", processed)
			}
		case status > 0:
			corrected++
		}

		chunk := block[:rs.K]
		if isLast {
			chunk = bytes.TrimRight(chunk, "\x00")
		}
		if _, err := out.Write(chunk); err != nil {
			log.Fatalf("failed to write %s: %v", outputPath, err)
		}

		processed++
	}

	log.Printf("processed=%d corrected=%d failed=%d", processed, corrected, failed)

	if *ledgerOn {
		rec := &ledger.RunRecord{
			Kind:       ledger.KindRSDecode,
			StartedAt:  started,
			FinishedAt: time.Now(),
			Processed:  processed,
			Corrected:  corrected,
			Failed:     failed,
			SourcePath: inputPath,
			DestPath:   outputPath,
		}
		if err := ledger.Record(*ledgerPath, rec); err != nil {
			log.Printf("warning: failed to record run: %v", err)
		}
	}
}
