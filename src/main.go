package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"smartplayer/src/handler/web"
	"smartplayer/src/jukebox"
	"smartplayer/src/library"
	"smartplayer/src/player"
)

const confFile = "config.yaml"

var (
	build       = "release"
	version     = "%VERSION%"
	versionDate = "%VERSION_DATE%"
)

type config struct {
	Address string `yaml:"bind"`
	URLRoot string `yaml:"url_root"`

	StaticDir string `yaml:"static_dir"`
	Library   string `yaml:"library"`

	TrendingSize int `yaml:"trending_size"`
	RateLimit    struct {
		RPS   float64 `yaml:"rps"`
		Burst int     `yaml:"burst"`
	} `yaml:"rate_limit"`

	Colors web.ColorConfig `yaml:"colors"`
}

func defaultConfig() config {
	return config{
		Address:      ":5000",
		URLRoot:      "/",
		TrendingSize: player.DefaultTrendingSize,
	}
}

func (conf *config) Validate() (errs []error) {
	if conf.Address == "" {
		errs = append(errs, fmt.Errorf("config: `bind` is required"))
	}
	if !strings.HasPrefix(conf.URLRoot, "/") || !strings.HasSuffix(conf.URLRoot, "/") {
		errs = append(errs, fmt.Errorf("config: `url_root` must start and end with a slash"))
	}
	if conf.TrendingSize <= 0 {
		errs = append(errs, fmt.Errorf("config: `trending_size` must be positive"))
	}
	if conf.RateLimit.RPS < 0 || conf.RateLimit.Burst < 0 {
		errs = append(errs, fmt.Errorf("config: `rate_limit` values may not be negative"))
	}
	if conf.RateLimit.RPS > 0 && conf.RateLimit.Burst == 0 {
		errs = append(errs, fmt.Errorf("config: `rate_limit.burst` is required when `rate_limit.rps` is set"))
	}
	if conf.StaticDir != "" {
		if fi, err := os.Stat(conf.StaticDir); err != nil || !fi.IsDir() {
			errs = append(errs, fmt.Errorf("config: `static_dir` %q is not a directory", conf.StaticDir))
		}
	}
	return
}

// Limiter returns the request rate limiter, or nil when rate limiting is
// disabled.
func (conf *config) Limiter() *rate.Limiter {
	if conf.RateLimit.RPS <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(conf.RateLimit.RPS), conf.RateLimit.Burst)
}

// LoadConfig reads the configuration file. Unset keys keep their defaults.
func LoadConfig(filename string) (*config, error) {
	fd, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	d := yaml.NewDecoder(fd)
	d.KnownFields(true)
	conf := defaultConfig()
	if err := d.Decode(&conf); err != nil {
		return nil, err
	}

	return &conf, nil
}

func loadTracks(conf *config) ([]library.Track, error) {
	if conf.Library == "" {
		return library.DefaultSeed(), nil
	}
	return library.LoadSeed(conf.Library)
}

func main() {
	defaultLogLevel := "warn"
	if build == "debug" {
		defaultLogLevel = "debug"
	}

	configFile := flag.StringP("conf", "c", confFile, "Path to the configuration file")
	printVersion := flag.BoolP("version", "v", false, "Print version information and exit")
	logLevel := flag.String("log", defaultLogLevel, "Sets the log level. [debug, info, warn, error]")
	flag.Parse()

	if ll, err := log.ParseLevel(*logLevel); err != nil {
		log.Fatalf("Could not parse log level: %v", err)
	} else {
		log.SetLevel(ll)
	}
	log.SetReportCaller(true)

	if *printVersion {
		fmt.Printf("Version: %v (%v)\n", version, versionDate)
		fmt.Printf("Build: %v\n", build)
		return
	}

	log.Infof("Version: %v (%v)\n", version, build)
	config, err := LoadConfig(*configFile)
	if errors.Is(err, os.ErrNotExist) {
		log.Warnf("Config file %q does not exist, using defaults", *configFile)
		def := defaultConfig()
		config, err = &def, nil
	}
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	if errs := config.Validate(); len(errs) > 0 {
		log.Fatalf("Could not load config: %v", errs)
	}

	tracks, err := loadTracks(config)
	if err != nil {
		log.Fatalf("Could not load library: %v", err)
	}
	jukebox, err := jukebox.NewJukebox(tracks, config.TrendingSize)
	if err != nil {
		log.Fatalf("Could not register library: %v", err)
	}
	log.Infof("Registered %d tracks", len(tracks))

	service, err := web.New(web.Options{
		Build:     build,
		Version:   version,
		Colors:    config.Colors,
		URLRoot:   config.URLRoot,
		StaticDir: config.StaticDir,
		Limiter:   config.Limiter(),
	}, jukebox)
	if err != nil {
		log.Fatalf("Could not initialize web service: %v", err)
	}

	if build == "debug" {
		service.Get("/debug/pprof/*", pprof.Index)
	}
	log.Infof("Now accepting HTTP connections on %v", config.Address)
	server := &http.Server{
		Addr:           config.Address,
		Handler:        service,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	log.Fatalf("Error running webserver: %v", server.ListenAndServe())
}
