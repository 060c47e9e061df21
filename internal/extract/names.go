package extract

// pythonKeywords holds reserved words that can never be user symbols.
var pythonKeywords = toSet([]string{
	"False", "None", "True", "and", "as", "assert", "async", "await",
	"break", "class", "continue", "def", "del", "elif", "else", "except",
	"finally", "for", "from", "global", "if", "import", "in", "is",
	"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
	"while", "with", "yield", "match", "case", "self", "cls",
})

// pythonBuiltins holds well-known builtin names excluded from consumed
// identifiers. The list is intentionally the common surface, not the full
// builtin namespace.
var pythonBuiltins = toSet([]string{
	"abs", "all", "any", "ascii", "bin", "bool", "bytearray", "bytes",
	"callable", "chr", "classmethod", "compile", "complex", "delattr",
	"dict", "dir", "divmod", "enumerate", "eval", "exec", "filter",
	"float", "format", "frozenset", "getattr", "globals", "hasattr",
	"hash", "help", "hex", "id", "input", "int", "isinstance",
	"issubclass", "iter", "len", "list", "locals", "map", "max", "min",
	"next", "object", "oct", "open", "ord", "pow", "print", "property",
	"range", "repr", "reversed", "round", "set", "setattr", "slice",
	"sorted", "staticmethod", "str", "sum", "super", "tuple", "type",
	"vars", "zip",
	"Exception", "BaseException", "ValueError", "TypeError", "KeyError",
	"IndexError", "AttributeError", "RuntimeError", "StopIteration",
	"FileNotFoundError", "ZeroDivisionError", "NotImplementedError",
	"__name__", "__file__", "__doc__",
})

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
