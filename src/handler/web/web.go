package web

import (
	"bytes"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/tdewolff/minify/v2"
	"golang.org/x/time/rate"

	"smartplayer/src/handler/api"
	"smartplayer/src/handler/webui"
	"smartplayer/src/jukebox"
	"smartplayer/src/util"
)

const publicDir = "public"

type ColorConfig struct {
	Background     string `yaml:"background"`
	BackgroundElem string `yaml:"background_elem"`
	Text           string `yaml:"text"`
	TextInactive   string `yaml:"text_inactive"`
	Accent         string `yaml:"accent"`
}

// DefaultColors is the color scheme used for unset ColorConfig fields.
var DefaultColors = ColorConfig{
	Background:     "#121212",
	BackgroundElem: "#1e1e1e",
	Text:           "#ffffff",
	TextInactive:   "#a0a0a0",
	Accent:         "#1db954",
}

// Options configure the web service.
type Options struct {
	Build, Version string
	Colors         ColorConfig
	URLRoot        string
	// StaticDir is served at /static/. Media and cover paths of the seed
	// tracks point there. Empty disables static file serving.
	StaticDir string
	// Limiter throttles all requests. Nil disables rate limiting.
	Limiter *rate.Limiter
}

type asset struct {
	mediaType string
	data      []byte
}

type webUI struct {
	Options
	files    fs.FS
	minifier *minify.M
	assets   map[string]asset
	static   map[string][]string
	page     *template.Template
	started  time.Time
	jukebox  *jukebox.Jukebox
}

func New(opts Options, jukebox *jukebox.Jukebox) (chi.Router, error) {
	if opts.URLRoot == "" {
		opts.URLRoot = "/"
	}
	web := &webUI{
		Options:  opts,
		files:    webui.Files(opts.Build),
		minifier: webui.NewMinifier(),
		started:  time.Now(),
		jukebox:  jukebox,
	}
	if err := web.loadAssets(); err != nil {
		return nil, err
	}
	page, err := web.mkTemplate()
	if err != nil {
		return nil, err
	}
	web.page = page

	service := chi.NewRouter()
	service.Use(util.LogHandler)
	service.Use(util.RateLimit(opts.Limiter))
	service.Use(middleware.Compress(5))

	service.Get("/", web.browserPage)
	service.Get("/ui/*", web.serveAsset)
	if opts.StaticDir != "" {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(opts.StaticDir)))
		service.Get("/static/*", fileServer.ServeHTTP)
		log.Infof("Serving static files from %q", opts.StaticDir)
	}
	api.InitRouter(service, web.jukebox)

	return service, nil
}

// loadAssets reads and minifies all public UI files.
func (web *webUI) loadAssets() error {
	web.assets = map[string]asset{}
	web.static = map[string][]string{
		"js":  {},
		"css": {},
	}
	err := fs.WalkDir(web.files, publicDir, func(file string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(web.files, file)
		if err != nil {
			return err
		}
		urlPath := strings.TrimPrefix(file, publicDir+"/")
		mediaType := webui.MediaType(file)
		if minified, err := web.minifier.Bytes(mediaType, data); err == nil {
			data = minified
		} else if err != minify.ErrNotExist {
			log.Warnf("Could not minify %q: %v", file, err)
		}
		web.assets[urlPath] = asset{mediaType: mediaType, data: data}

		switch path.Ext(file) {
		case ".css":
			web.static["css"] = append(web.static["css"], urlPath)
		case ".js":
			web.static["js"] = append(web.static["js"], urlPath)
		}
		return nil
	})
	for _, a := range web.static {
		sort.Strings(a)
	}
	return err
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func (web *webUI) baseParamMap() map[string]interface{} {
	return map[string]interface{}{
		"urlroot": web.URLRoot,
		"version": web.Version,
		"assets":  web.static,
		"time":    time.Now(),
		"colors": map[string]template.CSS{
			"bg":           template.CSS(orDefault(web.Colors.Background, DefaultColors.Background)),
			"bgElem":       template.CSS(orDefault(web.Colors.BackgroundElem, DefaultColors.BackgroundElem)),
			"text":         template.CSS(orDefault(web.Colors.Text, DefaultColors.Text)),
			"textInactive": template.CSS(orDefault(web.Colors.TextInactive, DefaultColors.TextInactive)),
			"accent":       template.CSS(orDefault(web.Colors.Accent, DefaultColors.Accent)),
		},
	}
}

func (web *webUI) mkTemplate() (*template.Template, error) {
	return template.ParseFS(web.files, "view/page.html")
}

func (web *webUI) getTemplate() (*template.Template, error) {
	if web.Build == "debug" {
		return web.mkTemplate()
	}
	return web.page, nil
}

func (web *webUI) browserPage(w http.ResponseWriter, r *http.Request) {
	tmpl, err := web.getTemplate()
	if err != nil {
		log.Errorf("Could not load page template: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, web.baseParamMap()); err != nil {
		log.Errorf("Could not render page: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if web.Build == "debug" {
		w.Write(buf.Bytes())
		return
	}
	if err := web.minifier.Minify("text/html", w, &buf); err != nil {
		log.Errorf("Could not minify page: %v", err)
	}
}

func (web *webUI) serveAsset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	a, ok := web.assets[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", a.mediaType)
	http.ServeContent(w, r, name, web.started, bytes.NewReader(a.data))
}
