/*
Command tempusgen generates Go source declaring tempus values from
literals validated at generation time, for use with go:generate. Each
-date, -time, -offset, -datetime and -instant flag takes a NAME=LITERAL
pair; the literal is parsed with the same grammar the runtime parsers
use, so a literal tempusgen accepts is exactly a literal the library
accepts. A malformed literal, or trailing characters after a valid
one, is a diagnostic and a non-zero exit: the invalid value never
reaches the build.

	//go:generate tempusgen -package config -out literals_gen.go -date releaseDay=2024-06-01 -instant 'epoch=1970-01-01 0:00 UTC'
*/
package main

import (
	"flag"
	"fmt"
	"go/format"
	"os"
	"sort"

	"github.com/go-tempus/tempus"
)

type literal struct {
	name string
	ctor string
	raw  string
}

// pairList collects repeatable NAME=LITERAL flag values.
type pairList struct {
	ctor  string
	check func(string) error
	out   *[]literal
}

func (r pairList) String() string { return "" }

func (r pairList) Set(v string) error {
	var name, raw string
	for i := 0; i < len(v); i++ {
		if v[i] == '=' {
			name, raw = v[:i], v[i+1:]
			break
		}
	}
	if name == "" {
		return fmt.Errorf("expected NAME=LITERAL, got %q", v)
	}
	if err := r.check(raw); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	*r.out = append(*r.out, literal{name: name, ctor: r.ctor, raw: raw})
	return nil
}

func main() {
	var (
		pkg  = flag.String("package", "main", "package name of the generated file")
		out  = flag.String("out", "", "output path (stdout when empty)")
		lits []literal
	)

	flag.Var(pairList{"MustDate", func(s string) error {
		_, err := tempus.ParseDate(s)
		return err
	}, &lits}, "date", "NAME=LITERAL calendar date, e.g. start=2019-01-01")
	flag.Var(pairList{"MustTime", func(s string) error {
		_, err := tempus.ParseTime(s)
		return err
	}, &lits}, "time", "NAME=LITERAL clock time, e.g. opening=9:30")
	flag.Var(pairList{"MustOffset", func(s string) error {
		_, err := tempus.ParseOffset(s)
		return err
	}, &lits}, "offset", "NAME=LITERAL UTC offset, e.g. cet=+01:00")
	flag.Var(pairList{"MustDateTime", func(s string) error {
		_, err := tempus.ParseDateTime(s)
		return err
	}, &lits}, "datetime", "NAME=LITERAL local datetime, e.g. cutoff=2019-01-01T12:00")
	flag.Var(pairList{"MustOffsetDateTime", func(s string) error {
		_, err := tempus.ParseOffsetDateTime(s)
		return err
	}, &lits}, "instant", "NAME=LITERAL instant, e.g. epoch=1970-01-01 0:00 UTC")
	flag.Parse()

	if len(lits) == 0 {
		fmt.Fprintln(os.Stderr, "tempusgen: no literals given")
		os.Exit(2)
	}

	src, err := render(*pkg, lits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tempusgen: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "tempusgen: %v\n", err)
		os.Exit(1)
	}
}

func render(pkg string, lits []literal) ([]byte, error) {
	sort.SliceStable(lits, func(i, j int) bool { return lits[i].name < lits[j].name })

	b := []byte("// Code generated by tempusgen. DO NOT EDIT.\n\npackage " + pkg +
		"\n\nimport \"github.com/go-tempus/tempus\"\n\nvar (\n")
	for _, l := range lits {
		b = append(b, fmt.Sprintf("\t%s = tempus.%s(%q)\n", l.name, l.ctor, l.raw)...)
	}
	b = append(b, ")\n"...)

	return format.Source(b)
}
