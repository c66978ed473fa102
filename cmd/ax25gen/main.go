// ax25gen packetizes a raw payload into AX.25 frames and writes them as
// a hex-dump packets file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/HarshLk/rs-and-fx.25/internal/ax25"
	"github.com/HarshLk/rs-and-fx.25/internal/config"
	"github.com/HarshLk/rs-and-fx.25/internal/hexdump"
	"github.com/HarshLk/rs-and-fx.25/internal/ledger"
)

const version = "1.0.0"

func main() {
	var (
		configFile = flag.String("config", "", "Station configuration file path")
		ledgerPath = flag.String("ledger", "ledger.db", "Path to the run ledger database")
		verbose    = flag.Bool("v", false, "Enable verbose logging")
		showVer    = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVer {
		fmt.Printf("ax25gen v%s\n", version)
		return
	}

	if flag.NArg() < 2 {
		log.Fatalf("usage: ax25gen [-config file] [-ledger path] <input> <output>")
	}
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	log.SetFlags(log.LstdFlags)

	cfg := config.NewConfig(*configFile)
	if *configFile != "" {
		if err := cfg.Load(); err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	builder, err := ax25.NewBuilder(ax25.Config{
		SourceCall: cfg.GetSourceCall(),
		SourceSSID: cfg.GetSourceSSID(),
		DestCall:   cfg.GetDestCall(),
		DestSSID:   cfg.GetDestSSID(),
	})
	if err != nil {
		log.Fatalf("invalid station configuration: %v", err)
	}

	payload, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("failed to read %s: %v", inputPath, err)
	}

	started := time.Now()
	frames := ax25.Packetize(payload)

	var wire [][]byte
	failed := 0
	for _, f := range frames {
		framed, err := builder.Build(f)
		if err != nil {
			log.Printf("warning: skipping frame seq=%d: %v", f.Sequence, err)
			failed++
			continue
		}
		wire = append(wire, framed)
		if *verbose {
			log.Printf("frame %s seq=%d/%d len=%d", f.Type, f.Sequence, f.Total, len(f.Payload))
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("failed to create %s: %v", outputPath, err)
	}
	defer out.Close()

	if err := hexdump.WriteAll(out, wire); err != nil {
		log.Fatalf("failed to write %s: %v", outputPath, err)
	}

	log.Printf("processed=%d failed=%d", len(frames), failed)

	recordRun(cfg, *ledgerPath, ledger.KindAX25Gen, started, len(frames), 0, failed, inputPath, outputPath)
}

func recordRun(cfg *config.Config, ledgerPath string, kind ledger.Kind, started time.Time, processed, corrected, failed int, src, dst string) {
	if !cfg.GetLedgerEnabled() {
		return
	}

	rec := &ledger.RunRecord{
		Kind:       kind,
		StartedAt:  started,
		FinishedAt: time.Now(),
		Processed:  processed,
		Corrected:  corrected,
		Failed:     failed,
		SourcePath: src,
		DestPath:   dst,
	}
	if err := ledger.Record(ledgerPath, rec); err != nil {
		log.Printf("warning: failed to record run: %v", err)
	}
}
