// Command gencommands regenerates the command registry. It is invoked through
// go:generate from the commands package; run `go generate ./...` after adding
// or removing a command file.
package main

import (
	"bytes"
	"flag"
	"log"
	"os"

	"discordapi/internal/gencmd"
)

func main() {
	dir := flag.String("dir", "internal/commands", "command directory to scan")
	out := flag.String("out", "internal/commands/registry_gen.go", "output file")
	pkg := flag.String("pkg", "commands", "package name of the generated file")
	base := flag.String("import", "discordapi/internal/commands", "import path of the command package")
	flag.Parse()

	regs, err := gencmd.Scan(*dir)
	if err != nil {
		log.Fatalf("[ERR] Scanning %s: %v", *dir, err)
	}
	if len(regs) == 0 {
		log.Printf("[INFO] No commands found in %s, emitting empty registry", *dir)
	}

	var buf bytes.Buffer
	if err := gencmd.Generate(&buf, *pkg, *base, "discordapi/pkg/router", regs); err != nil {
		log.Fatalf("[ERR] Generating registry: %v", err)
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		log.Fatalf("[ERR] Writing %s: %v", *out, err)
	}

	log.Printf("[INFO] Wrote %s with %d command(s)", *out, len(regs))
}
