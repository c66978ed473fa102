// bitflip copies input to output, XORing 0x01 into the byte at a given
// offset, for exercising the RS decoder's error-correction path.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
)

const version = "1.0.0"

func main() {
	showVer := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVer {
		fmt.Printf("bitflip v%s\n", version)
		return
	}

	if flag.NArg() < 3 {
		log.Fatalf("usage: bitflip <input> <output> <byte-offset>")
	}
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	offset, err := strconv.ParseInt(flag.Arg(2), 10, 64)
	if err != nil {
		log.Fatalf("invalid byte offset %q: %v", flag.Arg(2), err)
	}

	log.SetFlags(log.LstdFlags)

	data, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("failed to read %s: %v", inputPath, err)
	}

	if offset < 0 || offset >= int64(len(data)) {
		log.Fatalf("byte offset %d out of range for %d-byte input", offset, len(data))
	}

	data[offset] ^= 0x01

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", outputPath, err)
	}

	log.Printf("flipped bit 0 at offset %d", offset)
}
