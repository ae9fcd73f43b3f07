package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/routelint/internal/adapter"
	m "github.com/mouse-blink/routelint/internal/model"
)

// ScanOptions selects what the reference scanner visits.
type ScanOptions struct {
	// ExcludeDirs are directory base names pruned at any depth.
	ExcludeDirs []string
	// Extensions select scanned files, e.g. ".tsx".
	Extensions []string
	// Parallel is the number of files extracted concurrently; <= 1 scans
	// sequentially.
	Parallel int
}

// ReferenceScanner extracts navigation references from a source tree.
type ReferenceScanner interface {
	Scan(root m.Path, opts ScanOptions) ([]m.Reference, error)
}

type matcher struct {
	kind m.ReferenceKind
	re   *regexp.Regexp
}

// quotedPath matches a string literal starting with "/" and closed by the
// quote that opened it. Each quote style has its own capture group.
const quotedPath = `(?:"(/[^"]*)"|'(/[^']*)'|` + "`(/[^`]*)`)"

// matchers are applied to every line. Group 1 spans the reference; the
// remaining groups hold the target. The leading guard keeps attribute
// names such as data-to from matching.
var matchers = []matcher{
	{kind: m.KindLinkTarget, re: regexp.MustCompile(`(?:^|[^\w$.-])(to=\{?\s*` + quotedPath + `)`)},
	{kind: m.KindImperativeNavigate, re: regexp.MustCompile(`(?:^|[^\w$])(navigate\s*\(\s*` + quotedPath + `)`)},
	{kind: m.KindHrefAttribute, re: regexp.MustCompile(`(?:^|[^\w$.-])(href=\{?\s*` + quotedPath + `)`)},
}

type referenceScanner struct {
	fsAdapter adapter.SourceFSAdapter
	log       *zap.Logger
}

// NewReferenceScanner constructs a ReferenceScanner backed by fsAdapter.
func NewReferenceScanner(fsAdapter adapter.SourceFSAdapter, log *zap.Logger) ReferenceScanner {
	if log == nil {
		log = zap.NewNop()
	}

	return &referenceScanner{fsAdapter: fsAdapter, log: log}
}

// Scan walks root and returns references in file-then-line order. Files
// that cannot be read or decoded are skipped with a warning.
func (s *referenceScanner) Scan(root m.Path, opts ScanOptions) ([]m.Reference, error) {
	info, err := s.fsAdapter.FileInfo(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScanRootUnavailable, root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrScanRootUnavailable, root)
	}

	files, err := s.collectFiles(root, opts)
	if err != nil {
		return nil, err
	}

	perFile := make([][]m.Reference, len(files))

	if opts.Parallel <= 1 {
		for i, file := range files {
			perFile[i] = s.scanFile(root, file)
		}
	} else {
		var g errgroup.Group

		g.SetLimit(opts.Parallel)

		for i, file := range files {
			g.Go(func() error {
				perFile[i] = s.scanFile(root, file)
				return nil
			})
		}

		_ = g.Wait() // scanFile never fails
	}

	var refs []m.Reference
	for _, r := range perFile {
		refs = append(refs, r...)
	}

	s.log.Debug("scan complete",
		zap.String("root", string(root)),
		zap.Int("files", len(files)),
		zap.Int("references", len(refs)))

	return refs, nil
}

// collectFiles returns the selected files under root in walk order.
func (s *referenceScanner) collectFiles(root m.Path, opts ScanOptions) ([]m.Path, error) {
	exts := make(map[string]struct{}, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		exts[ext] = struct{}{}
	}

	var files []m.Path

	err := s.fsAdapter.Walk(root, opts.ExcludeDirs, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if filepath.Clean(path) == filepath.Clean(string(root)) {
				return err
			}

			s.log.Warn("skip unreadable path", zap.String("path", path), zap.Error(err))

			return nil
		}

		if info.IsDir() {
			return nil
		}

		if _, ok := exts[filepath.Ext(path)]; ok {
			files = append(files, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return files, nil
}

func (s *referenceScanner) scanFile(root, file m.Path) []m.Reference {
	rel, err := s.fsAdapter.RelPath(root, file)
	if err != nil {
		rel = file
	}

	content, err := s.fsAdapter.ReadFile(file)
	if err != nil {
		s.log.Warn("skip unreadable file", zap.String("file", string(rel)), zap.Error(err))
		return nil
	}

	if !utf8.Valid(content) {
		s.log.Warn("skip unreadable file", zap.String("file", string(rel)), zap.String("reason", "not valid UTF-8 text"))
		return nil
	}

	return ExtractReferences(rel, content)
}

// ExtractReferences matches every line of content against the link, navigate
// and href patterns. References within a line are ordered by column.
func ExtractReferences(file m.Path, content []byte) []m.Reference {
	var refs []m.Reference

	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")

		var lineRefs []m.Reference

		for _, mt := range matchers {
			for _, loc := range mt.re.FindAllStringSubmatchIndex(line, -1) {
				target, _ := firstGroup(line, loc[4:])
				if !isNavigationTarget(target) {
					continue
				}

				raw := stripQuery(target)
				lineRefs = append(lineRefs, m.Reference{
					RawTarget:        raw,
					NormalizedTarget: Normalize(raw),
					File:             file,
					Line:             i + 1,
					Column:           loc[2] + 1,
					Kind:             mt.kind,
					Snippet:          line[loc[2]:loc[3]],
				})
			}
		}

		sort.SliceStable(lineRefs, func(a, b int) bool { return lineRefs[a].Column < lineRefs[b].Column })
		refs = append(refs, lineRefs...)
	}

	return refs
}

// firstGroup returns the first participating capture group in loc, a
// slice of start/end index pairs, and its start offset.
func firstGroup(s string, loc []int) (string, int) {
	for i := 0; i+1 < len(loc); i += 2 {
		if loc[i] >= 0 {
			return s[loc[i]:loc[i+1]], loc[i]
		}
	}

	return "", -1
}

// isNavigationTarget rejects external and in-page targets.
func isNavigationTarget(target string) bool {
	switch {
	case !strings.HasPrefix(target, "/"):
		return false
	case strings.HasPrefix(target, "//"):
		return false // protocol-relative URL
	default:
		return true
	}
}

// stripQuery drops a query string and fragment: "/foo?x=1#y" becomes "/foo".
func stripQuery(target string) string {
	if i := strings.IndexAny(target, "?#"); i >= 0 {
		return target[:i]
	}

	return target
}
