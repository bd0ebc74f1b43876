package handler

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/InQaaaaGit/shorturl/internal/httputil"
)

//go:embed web
var webFS embed.FS

const indexPage = "web/views/index.html"

// publicFS содержит файлы, доступные по своему пути от корня сайта
var publicFS = mustSub(webFS, "web/public")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// HandleIndex отдает стартовую страницу
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, webFS, indexPage)
}

// HandleNotFound отдает статический файл, если он есть, иначе отвечает {"error": "Not Found"}
func (h *Handler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		if name, ok := lookupPublicFile(r.URL.Path); ok {
			http.ServeFileFS(w, r, publicFS, name)
			return
		}
	}

	httputil.WriteJSONError(w, h.logger, http.StatusNotFound, httputil.MessageNotFound)
}

// lookupPublicFile ищет обычный файл в publicFS по пути запроса
func lookupPublicFile(urlPath string) (string, bool) {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" || !fs.ValidPath(name) {
		return "", false
	}

	info, err := fs.Stat(publicFS, name)
	if err != nil || info.IsDir() {
		return "", false
	}
	return name, true
}
