// Command huffzip compresses a file with a Huffman prefix code, or restores
// a previously compressed one with -d.
//
// Usage:
//
//	huffzip [-o output] input
//	huffzip -d [-o output] input.hz
//
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/chronos-tachyon/huffzip"
)

const suffix = ".hz"

var (
	flagDecompress = flag.Bool("d", false, "decompress instead of compress")
	flagOutput     = flag.String("o", "", "output path (default: input plus/minus \""+suffix+"\")")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffzip: ")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: huffzip [-d] [-o output] input\n")
		os.Exit(2)
	}
	input := flag.Arg(0)

	data, err := os.ReadFile(input)
	if err != nil {
		log.Fatal(err)
	}

	if *flagDecompress {
		if err := decompress(input, data); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := compress(input, data); err != nil {
		log.Fatal(err)
	}
}

func compress(input string, data []byte) error {
	output := *flagOutput
	if output == "" {
		output = input + suffix
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}

	archive := huffzip.Compress(data)
	if _, err := archive.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func decompress(input string, data []byte) error {
	output := *flagOutput
	if output == "" {
		if !strings.HasSuffix(input, suffix) {
			return fmt.Errorf("%s does not end in %q; use -o to name the output", input, suffix)
		}
		output = strings.TrimSuffix(input, suffix)
	}

	archive, err := huffzip.ReadArchive(bytes.NewReader(data))
	if err != nil {
		return err
	}
	plain, err := huffzip.Decompress(archive)
	if err != nil {
		return err
	}
	return os.WriteFile(output, plain, 0o644)
}
