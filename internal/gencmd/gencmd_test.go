package gencmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("package x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ping.go")
	writeFile(t, dir, "mod/deep.go")

	regs, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(regs) != 2 {
		t.Fatalf("want 2 registrations, got %v", regs)
	}
	if regs[0] != (Registration{Name: "!ping", Pkg: "", Type: "Ping"}) {
		t.Fatalf("unexpected root registration: %+v", regs[0])
	}
	if regs[1] != (Registration{Name: "!deep", Pkg: "mod", Type: "Deep"}) {
		t.Fatalf("unexpected nested registration: %+v", regs[1])
	}
}

func TestScanMissingDirectoryIsEmptySuccess(t *testing.T) {
	regs, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("missing directory must not error, got %v", err)
	}
	if len(regs) != 0 {
		t.Fatalf("want no registrations, got %v", regs)
	}
}

func TestScanSkipsNonCommandFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ping.go")
	writeFile(t, dir, "ping_test.go")
	writeFile(t, dir, "doc.go")
	writeFile(t, dir, "registry_gen.go")
	writeFile(t, dir, "notes.txt")

	regs, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(regs) != 1 || regs[0].Name != "!ping" {
		t.Fatalf("want only !ping, got %v", regs)
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"ping":       "Ping",
		"serverinfo": "Serverinfo",
		"x":          "X",
		"":           "",
	}
	for in, want := range cases {
		if got := Capitalize(in); got != want {
			t.Fatalf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateEmitsRegistrations(t *testing.T) {
	regs := []Registration{
		{Name: "!ping", Pkg: "", Type: "Ping"},
		{Name: "!purge", Pkg: "mod", Type: "Purge"},
	}

	var buf bytes.Buffer
	err := Generate(&buf, "commands", "discordapi/internal/commands", "discordapi/pkg/router", regs)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	src := buf.String()
	for _, want := range []string{
		"// Code generated by gencommands; DO NOT EDIT.",
		"package commands",
		`"discordapi/internal/commands/mod"`,
		`"discordapi/pkg/router"`,
		`r.Register("!ping", &Ping{})`,
		`r.Register("!purge", &mod.Purge{})`,
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("generated source missing %q:\n%s", want, src)
		}
	}
}

func TestGenerateEmptyRegistrySucceeds(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, "commands", "discordapi/internal/commands", "discordapi/pkg/router", nil); err != nil {
		t.Fatalf("Generate with no commands: %v", err)
	}
	src := buf.String()
	if !strings.Contains(src, "func RegisterAll(r *router.Router) {") {
		t.Fatalf("missing RegisterAll:\n%s", src)
	}
	if strings.Contains(src, "r.Register(") {
		t.Fatalf("want no registrations:\n%s", src)
	}
}
