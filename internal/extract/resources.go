package extract

import (
	"regexp"
	"strings"
)

var (
	// dataExtRe recognizes extensions of common data and image files, so
	// bare filenames like "out.csv" count as paths even without a slash.
	dataExtRe = regexp.MustCompile(`(?i)\.(csv|tsv|json|jsonl|ndjson|parquet|feather|arrow|txt|log|dat|pkl|pickle|joblib|h5|hdf5|npy|npz|pt|pth|onnx|xls|xlsx|db|sqlite3?|yaml|yml|toml|png|jpe?g|gif|bmp|svg|pdf|html?|zip|gz|tar)$`)

	// writeHintRe recognizes call patterns indicating the path is being
	// produced rather than consumed.
	writeHintRe = regexp.MustCompile(`(?i)\b(to_csv|to_parquet|to_excel|to_json|to_pickle|to_hdf|to_feather|to_sql|savefig|save|dump|dumps|write_text|write_bytes|write_csv|write_parquet|writerow|writerows|mkdir|makedirs|touch)\s*\(`)

	// openWriteRe catches open(path, "w"/"a"/"x"/"wb"/"ab"...).
	openWriteRe = regexp.MustCompile(`(?i)\bopen\s*\([^)]*,\s*["'](?:[wax]|[wa]b|[wa]\+b?)["']`)
)

// classifyResources splits the path-like string literals of a cell into
// reads and writes, using the surrounding raw source line as write-intent
// context.
// Paths are normalized before comparison so the same file written with
// backslashes and read with slashes still links up.
func classifyResources(srcLines []string, literals []literal) (reads, writes []string) {
	readSet := newOrderedSet()
	writeSet := newOrderedSet()

	for _, lit := range literals {
		path, ok := normalizePath(lit.text)
		if !ok {
			continue
		}
		line := ""
		if lit.line >= 0 && lit.line < len(srcLines) {
			line = srcLines[lit.line]
		}
		if writeHintRe.MatchString(line) || openWriteRe.MatchString(line) {
			writeSet.add(path)
		} else {
			readSet.add(path)
		}
	}

	return readSet.values(), writeSet.values()
}

// normalizePath reports whether text looks like a file path and returns
// its canonical form: backslashes to slashes, leading "./" stripped,
// case preserved.
func normalizePath(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > 512 {
		return "", false
	}
	// Remote URLs are not file-system resources.
	if strings.Contains(text, "://") {
		return "", false
	}
	pathLike := strings.ContainsAny(text, `/\`) || dataExtRe.MatchString(text)
	if !pathLike {
		return "", false
	}
	// Reject literals that are clearly prose, not paths.
	if strings.ContainsAny(text, " \t\n") && !dataExtRe.MatchString(text) {
		return "", false
	}

	norm := strings.ReplaceAll(text, `\`, "/")
	norm = strings.TrimPrefix(norm, "./")
	if norm == "" || norm == "/" {
		return "", false
	}
	return norm, true
}
