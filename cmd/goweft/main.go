// Command goweft extracts translatable text from a CSV document,
// translates it, and merges the translations back as language columns.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ZaguanLabs/goweft"
	"github.com/ZaguanLabs/goweft/memory"
	"github.com/ZaguanLabs/goweft/provider"
	"github.com/ZaguanLabs/goweft/segment"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = goweft.Version
	commit    = goweft.GitCommit
	buildDate = goweft.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("goweft", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	sourceLang := fs.String("source", "en", "Source language code")
	sourceCol := fs.Int("source-col", 0, "Zero-based column holding the source text")
	langs := fs.String("langs", "", "Target languages with optional policy, e.g. fr_FR:fill-empty,de_DE")
	legacyPolicy := fs.String("policy", "", "Fallback policy for languages without one (keep-all|overwrite-empty|overwrite-all)")
	dnt := fs.String("dnt", "", "Comma-separated do-not-translate terms")
	glossaryPath := fs.String("glossary", "", "JSON glossary file")
	memoryPath := fs.String("memory", "", "JSON translation-memory file")
	fuzzy := fs.Int("fuzzy", 70, "Fuzzy-match threshold (0-100)")
	autoApply := fs.Int("auto-apply", 100, "Auto-apply threshold for memory matches (0-100)")
	apiKey := fs.String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	model := fs.String("model", "gpt-4o-mini", "OpenAI model to use")
	header := fs.Bool("header", true, "Treat the first row as a header")
	output := fs.String("o", "", "Output file (default: stdout)")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "goweft %s (%s, built %s)\n", version, commit, buildDate)
		return nil
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: goweft [flags] <input.csv>")
	}
	inputPath := fs.Arg(0)

	targets, err := parseLangTargets(*langs, *legacyPolicy)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return fmt.Errorf("no target languages: use -langs")
	}

	matrix, err := readCSV(inputPath)
	if err != nil {
		return err
	}
	if len(matrix) == 0 {
		return fmt.Errorf("%s: empty document", inputPath)
	}

	opts := []goweft.Option{
		goweft.WithSegmenter(segment.New()),
	}
	if *dnt != "" {
		opts = append(opts, goweft.WithDNTTerms(splitList(*dnt)))
	}
	if *glossaryPath != "" {
		g, err := loadGlossary(*glossaryPath)
		if err != nil {
			return err
		}
		opts = append(opts, goweft.WithGlossary(g))
	}
	if *memoryPath != "" {
		store := memory.NewInMemoryStore()
		f, err := os.Open(*memoryPath)
		if err != nil {
			return err
		}
		n, err := memory.Import(f, store)
		f.Close()
		if err != nil {
			return err
		}
		if !*quiet {
			fmt.Fprintf(stderr, "loaded %d memory units\n", n)
		}
		opts = append(opts, goweft.WithMemory(memory.NewMatcher(store), *fuzzy, *autoApply))
	}
	if key := resolveAPIKey(*apiKey); key != "" {
		opts = append(opts, goweft.WithProvider(provider.NewOpenAIProvider(provider.OpenAIConfig{
			APIKey: key,
			Model:  *model,
		})))
	} else if !*quiet {
		fmt.Fprintln(stderr, "no API key: glossary and memory only")
	}

	eng := goweft.New(*sourceLang, opts...)

	dataStart := 0
	if *header {
		dataStart = 1
	}
	rows := make([]goweft.SourceRow, 0, len(matrix))
	for i := dataStart; i < len(matrix); i++ {
		content := cellAt(matrix, i, *sourceCol)
		rows = append(rows, goweft.SourceRow{
			Row:      i,
			Content:  content,
			Verbatim: isURL(content),
		})
	}

	alloc := goweft.NewIDAllocator()
	ext, err := eng.ExtractDocument(inputPath, rows, alloc)
	if err != nil {
		return err
	}
	for _, w := range ext.Warnings {
		fmt.Fprintf(stderr, "warning: %s\n", w)
	}

	set := goweft.NewUniqueSet()
	for _, seg := range ext.Segments {
		set.Add(inputPath, seg)
	}
	if !*quiet {
		fmt.Fprintf(stderr, "%d segments, %d unique strings\n",
			set.OccurrenceCount(), set.UniqueCount())
	}

	translations := make(map[string]map[string]string, len(targets))
	ctx := context.Background()
	for i := range targets {
		byHash, stats, err := eng.TranslateUnique(ctx, set, targets[i].Lang)
		if err != nil {
			return err
		}
		translations[targets[i].Lang] = set.DistributeByDoc(byHash)[inputPath]
		for _, w := range stats.Warnings {
			fmt.Fprintf(stderr, "warning: %s\n", w)
		}
		if !*quiet {
			fmt.Fprintf(stderr, "%s: %d glossary, %d memory, %d translated, %d failed, %d skipped\n",
				targets[i].Lang, stats.GlossaryHits, stats.MemoryHits,
				stats.Translated, stats.Failed, stats.Skipped)
		}
		if *header {
			targets[i].Column = findColumn(matrix[0], targets[i].Lang)
		} else {
			targets[i].Column = -1
		}
	}

	result := goweft.Merge(goweft.MergeRequest{
		Matrix:       matrix,
		SourceColumn: *sourceCol,
		Rows:         ext.Plans(),
		Translations: translations,
		Targets:      targets,
	})
	for _, w := range result.Warnings {
		fmt.Fprintf(stderr, "warning: %s\n", w)
	}

	if *header {
		labelNewColumns(result.Matrix, targets)
	}

	out := stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return writeCSV(out, result.Matrix)
}

// parseLangTargets parses "fr_FR:fill-empty,de_DE" into merge targets,
// applying the legacy fallback policy to languages without an explicit one.
func parseLangTargets(spec, legacy string) ([]goweft.LangTarget, error) {
	if spec == "" {
		return nil, nil
	}

	perLang := make(map[string]goweft.OverwritePolicy)
	var langs []string
	for _, part := range splitList(spec) {
		lang, policy, found := strings.Cut(part, ":")
		lang = goweft.NormalizeLocale(lang)
		if lang == "" {
			return nil, fmt.Errorf("empty language in -langs %q", spec)
		}
		langs = append(langs, lang)
		if found {
			perLang[lang] = goweft.OverwritePolicy(policy)
		}
	}

	resolved, err := goweft.ResolvePolicies(legacy, perLang, langs)
	if err != nil {
		return nil, err
	}

	targets := make([]goweft.LangTarget, 0, len(langs))
	for _, lang := range langs {
		targets = append(targets, goweft.LangTarget{
			Lang:   lang,
			Column: -1,
			Policy: resolved[lang],
		})
	}
	return targets, nil
}

// findColumn locates a language column by header, or -1.
func findColumn(header []string, lang string) int {
	for i, h := range header {
		if goweft.NormalizeLocale(strings.TrimSpace(h)) == lang {
			return i
		}
	}
	return -1
}

// labelNewColumns writes the language code into the header of columns
// the merge created. Created columns are always the trailing columns of
// the merged matrix, in target order; counting back from the merged
// width locates them even when ragged data rows are wider than the
// header.
func labelNewColumns(matrix [][]string, targets []goweft.LangTarget) {
	if len(matrix) == 0 {
		return
	}
	var created []string
	for _, t := range targets {
		if t.Column < 0 {
			created = append(created, t.Lang)
		}
	}
	next := len(matrix[0]) - len(created)
	for _, lang := range created {
		if next >= 0 && next < len(matrix[0]) && matrix[0][next] == "" {
			matrix[0][next] = lang
		}
		next++
	}
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func writeCSV(w io.Writer, matrix [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(matrix); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func loadGlossary(path string) (*goweft.Glossary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeGlossary(f)
}

func cellAt(matrix [][]string, row, col int) string {
	if row < 0 || row >= len(matrix) || col < 0 || col >= len(matrix[row]) {
		return ""
	}
	return matrix[row][col]
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func isURL(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("OPENAI_API_KEY")
}
