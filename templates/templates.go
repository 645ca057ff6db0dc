package templates

import (
	"embed"
	"html/template"
	"io/fs"
	"os"
	"strings"
	"time"
)

//go:embed includes/*.html posts/*.html users/*.html core/*.html
var embedded embed.FS

var Funcs = template.FuncMap{
	"date": func(unix int64) string {
		return time.Unix(unix, 0).Format("2 Jan 2006")
	},
	"paragraphs": func(text string) []string {
		result := []string{}
		for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
			if p = strings.TrimSpace(p); p != "" {
				result = append(result, p)
			}
		}
		return result
	},
	"truncate": func(n int, text string) string {
		runes := []rune(text)
		if len(runes) <= n {
			return text
		}
		return string(runes[:n]) + "…"
	},
}

// Load parses the embedded templates, or the ones under `dir` if set
func Load(dir string) (*template.Template, error) {
	var files fs.FS = embedded
	if dir != "" {
		files = os.DirFS(dir)
	}
	return template.New("").Funcs(Funcs).ParseFS(files, "includes/*.html", "posts/*.html", "users/*.html", "core/*.html")
}

func MustLoad(dir string) *template.Template {
	t, err := Load(dir)
	if err != nil {
		panic(err)
	}
	return t
}
