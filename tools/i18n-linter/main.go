// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the source tree. It reports
// message ids passed to i18n.T that no locale defines, ids missing from a
// secondary locale, and ids no code refers to.
//
// Run from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location stores the file and line number of a found id.
type Location struct {
	Filepath string
	Line     int
}

// Report is the outcome of one lint run.
type Report struct {
	Used      map[string][]Location // ids found in source
	Undefined []string              // used via i18n.T but absent from the primary locale
	Missing   map[string][]string   // secondary locale file → ids it lacks
	Orphaned  []string              // in the primary locale, referenced nowhere
}

// Failed reports whether the run found errors. Orphans are only warnings.
func (r Report) Failed() bool {
	if len(r.Undefined) > 0 {
		return true
	}
	for _, ids := range r.Missing {
		if len(ids) > 0 {
			return true
		}
	}
	return false
}

var (
	// i18n.T("id", ...)
	callRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	// any literal shaped like an id, e.g. TitleID: "samples.curl" or the
	// prefix "chart.day." of a computed id
	literalRe = regexp.MustCompile(`"([a-z]+\.[a-z0-9\._]+)"`)
)

func main() {
	root := flag.String("root", ".", "repository root")
	locales := flag.String("locales", "internal/i18n/locales", "locale directory, relative to root")
	primary := flag.String("primary", "en.yaml", "locale file that defines every id")
	flag.Parse()

	r, err := Lint(*root, filepath.Join(*root, *locales), *primary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(2)
	}
	PrintReport(os.Stdout, r)
	if r.Failed() {
		os.Exit(1)
	}
}

// Lint scans root and compares the findings with the locale files.
func Lint(root, localesDir, primary string) (Report, error) {
	r := Report{Missing: map[string][]string{}}

	used, called, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("scan sources: %w", err)
	}
	r.Used = used

	primaryKeys, err := loadKeysFromLocale(filepath.Join(localesDir, primary))
	if err != nil {
		return r, fmt.Errorf("load primary locale %s: %w", primary, err)
	}

	for id := range called {
		if _, ok := primaryKeys[id]; !ok {
			r.Undefined = append(r.Undefined, id)
		}
	}
	sort.Strings(r.Undefined)

	for id := range primaryKeys {
		if !isReferenced(id, used) {
			r.Orphaned = append(r.Orphaned, id)
		}
	}
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, file := range files {
		if filepath.Base(file) == primary {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("load %s: %w", file, err)
		}
		var missing []string
		for id := range primaryKeys {
			if _, ok := keys[id]; !ok {
				missing = append(missing, id)
			}
		}
		sort.Strings(missing)
		r.Missing[filepath.Base(file)] = missing
	}
	return r, nil
}

// isReferenced reports whether id is used directly or through a computed
// id whose literal prefix ends in a dot.
func isReferenced(id string, used map[string][]Location) bool {
	if _, ok := used[id]; ok {
		return true
	}
	for u := range used {
		if strings.HasSuffix(u, ".") && strings.HasPrefix(id, u) {
			return true
		}
	}
	return false
}

// findUsedKeys scans the non-test .go files under root. It returns every
// id-shaped literal and, separately, the ids passed straight to i18n.T.
func findUsedKeys(root string) (used map[string][]Location, called map[string]struct{}, err error) {
	used = make(map[string][]Location)
	called = make(map[string]struct{})

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for i, line := range strings.Split(string(content), "\n") {
			loc := Location{Filepath: path, Line: i + 1}
			for _, m := range callRe.FindAllStringSubmatch(line, -1) {
				// "chart.day." + label is a prefix, not an id
				if !strings.HasSuffix(m[1], ".") {
					called[m[1]] = struct{}{}
				}
				used[m[1]] = append(used[m[1]], loc)
			}
			for _, m := range literalRe.FindAllStringSubmatch(line, -1) {
				used[m[1]] = append(used[m[1]], loc)
			}
		}
		return nil
	})
	return used, called, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its ids.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML turns nested maps into dot-separated ids. Flat files with
// dotted keys come out unchanged.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}

// PrintReport writes a human readable summary of r.
func PrintReport(w io.Writer, r Report) {
	fmt.Fprintf(w, "found %d message ids referenced in source\n\n", len(r.Used))

	fmt.Fprintln(w, "--- Undefined (used in code, missing from primary locale) ---")
	printList(w, r.Undefined, func(id string) string {
		loc := r.Used[id][0]
		return fmt.Sprintf("%s (%s:%d)", id, loc.Filepath, loc.Line)
	})

	fmt.Fprintln(w, "--- Missing (in primary locale, missing from others) ---")
	files := make([]string, 0, len(r.Missing))
	for f := range r.Missing {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		fmt.Fprintf(w, "%s:\n", f)
		printList(w, r.Missing[f], func(id string) string { return id })
	}

	fmt.Fprintln(w, "--- Orphaned (in primary locale, unused) ---")
	printList(w, r.Orphaned, func(id string) string { return id })

	switch {
	case r.Failed():
		fmt.Fprintln(w, "found issues that need to be addressed")
	case len(r.Orphaned) > 0:
		fmt.Fprintln(w, "found orphaned ids; consider removing them")
	default:
		fmt.Fprintln(w, "all translation files are consistent")
	}
}

func printList(w io.Writer, ids []string, format func(string) string) {
	if len(ids) == 0 {
		fmt.Fprintln(w, "  none")
		fmt.Fprintln(w)
		return
	}
	for _, id := range ids {
		fmt.Fprintf(w, "  - %s\n", format(id))
	}
	fmt.Fprintln(w)
}
