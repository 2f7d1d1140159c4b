// Package gencmd implements the command registration generator: it walks a
// directory of command source files and emits the registry_gen.go that wires
// each of them into a router. The convention is one command per file — the
// file's base name becomes the command name ("!ping" for ping.go) and, with
// its first letter capitalized, the handler type name (Ping). Nested
// directories become nested packages and are imported by the generated file.
package gencmd

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// Registration is one discovered command file.
type Registration struct {
	Name string // command name including the "!" prefix
	Pkg  string // package dir relative to the command root, "" for the root
	Type string // handler type name, derived from the file name
}

// skipFile reports whether name is not a command source unit: tests, the
// generated file itself, and doc.go (the package marker, like mod.rs).
func skipFile(name string) bool {
	if !strings.HasSuffix(name, ".go") {
		return true
	}
	if strings.HasSuffix(name, "_test.go") {
		return true
	}
	return name == "registry_gen.go" || name == "doc.go"
}

// Scan discovers every command file under dir. A missing directory is not an
// error: a project with no commands is valid and yields zero registrations.
func Scan(dir string) ([]Registration, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var regs []Registration
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || skipFile(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		base := strings.TrimSuffix(d.Name(), ".go")
		regs = append(regs, Registration{
			Name: "!" + base,
			Pkg:  filepath.ToSlash(filepath.Dir(rel)),
			Type: Capitalize(base),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range regs {
		if regs[i].Pkg == "." {
			regs[i].Pkg = ""
		}
	}
	sort.Slice(regs, func(i, j int) bool {
		if regs[i].Pkg != regs[j].Pkg {
			return regs[i].Pkg < regs[j].Pkg
		}
		return regs[i].Name < regs[j].Name
	})
	return regs, nil
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Generate writes the registry_gen.go source. pkgName is the package the file
// belongs to, baseImport its import path (nested packages hang off it), and
// routerImport the router package path.
func Generate(w io.Writer, pkgName, baseImport, routerImport string, regs []Registration) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by gencommands; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)

	imports := []string{routerImport}
	seen := map[string]bool{}
	for _, reg := range regs {
		if reg.Pkg != "" && !seen[reg.Pkg] {
			seen[reg.Pkg] = true
			imports = append(imports, path.Join(baseImport, reg.Pkg))
		}
	}
	sort.Strings(imports)

	fmt.Fprintf(&buf, "import (\n")
	for _, imp := range imports {
		fmt.Fprintf(&buf, "\t%q\n", imp)
	}
	fmt.Fprintf(&buf, ")\n\n")

	fmt.Fprintf(&buf, "// RegisterAll registers every command discovered in the command directory.\n")
	fmt.Fprintf(&buf, "func RegisterAll(r *router.Router) {\n")
	for _, reg := range regs {
		fmt.Fprintf(&buf, "\tr.Register(%q, &%s{})\n", reg.Name, reg.qualifiedType())
	}
	fmt.Fprintf(&buf, "}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// qualifiedType returns the type expression as referenced from the root
// command package: Ping for the root, deep.Deep for mod/deep.go style nesting.
func (r Registration) qualifiedType() string {
	if r.Pkg == "" {
		return r.Type
	}
	return path.Base(r.Pkg) + "." + r.Type
}
