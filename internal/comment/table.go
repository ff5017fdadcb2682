package comment

// byExtension is the static allowlist keyed by lowercase extension,
// including the leading dot. Never mutated after init.
var byExtension = map[string]Marker{
	// Hash-style line comments
	".py":            line("#"),
	".r":             line("#"),
	".jl":            line("#"),
	".sh":            line("#"),
	".bash":          line("#"),
	".ps1":           line("#"),
	".pl":            line("#"),
	".awk":           line("#"),
	".rb":            line("#"),
	".ex":            line("#"),
	".exs":           line("#"),
	".yaml":          line("#"),
	".yml":           line("#"),
	".toml":          line("#"),
	".cfg":           line("#"),
	".conf":          line("#"),
	".properties":    line("#"),
	".make":          line("#"),
	".mk":            line("#"),
	".dockerfile":    line("#"),
	".env":           line("#"),
	".gitignore":     line("#"),
	".gitattributes": line("#"),
	".editorconfig":  line("#"),

	// C-style line comments
	".js":     line("//"),
	".jsx":    line("//"),
	".ts":     line("//"),
	".tsx":    line("//"),
	".scss":   line("//"),
	".less":   line("//"),
	".java":   line("//"),
	".c":      line("//"),
	".h":      line("//"),
	".cpp":    line("//"),
	".cc":     line("//"),
	".cxx":    line("//"),
	".c++":    line("//"),
	".cs":     line("//"),
	".go":     line("//"),
	".swift":  line("//"),
	".kt":     line("//"),
	".kts":    line("//"),
	".dart":   line("//"),
	".php":    line("//"),
	".scala":  line("//"),
	".groovy": line("//"),
	".fs":     line("//"),
	".fsx":    line("//"),

	// Double-dash
	".lua": line("--"),
	".hs":  line("--"),
	".sql": line("--"),

	// Semicolon
	".ini":  line(";"),
	".clj":  line(";"),
	".cljs": line(";"),
	".lisp": line(";"),
	".lsp":  line(";"),
	".scm":  line(";"),
	".rkt":  line(";"),

	// Percent
	".erl":   line("%"),
	".tex":   line("%"),
	".latex": line("%"),

	// Oddballs
	".vbs": line("'"),
	".bat": line("REM"),
	".rst": line(".."),

	// No comment syntax at all; headers carry an empty marker.
	".json": line(""),

	// Paired markers: the header closes with a token distinct from the
	// opening one.
	".html":     {Open: "<!--", Close: "-->"},
	".htm":      {Open: "<!--", Close: "-->"},
	".xml":      {Open: "<!--", Close: "-->"},
	".xhtml":    {Open: "<!--", Close: "-->"},
	".md":       {Open: "<!--", Close: "-->"},
	".markdown": {Open: "<!--", Close: "-->"},
	".css":      {Open: "/*", Close: "*/"},
	".ml":       {Open: "(*", Close: "*)"},
	".mli":      {Open: "(*", Close: "*)"},
}

// byName covers conventionally extensionless file names. Exact match, case
// preserved.
var byName = map[string]Marker{
	"Makefile":   line("#"),
	"Dockerfile": line("#"),
}
