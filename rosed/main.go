// rosed is the ritual-planner web server.
//
// It serves the planner page (time-based occult context plus a session log
// form) and the sigil generator page. Configuration comes from an optional
// YAML file with environment overrides for the OpenWeather API key and the
// listen port.
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/alchemelodic/rosesigil/internal/logbook"
	"github.com/alchemelodic/rosesigil/internal/weather"
	"github.com/alchemelodic/rosesigil/internal/webapp"
)

// tracer traces with key 'rose.web'
func tracer() tracing.Trace {
	return tracing.Select("rose.web")
}

// config is the rosed YAML configuration file.
type config struct {
	Listen   string `yaml:"listen"`   // address for the HTTP server
	Location string `yaml:"location"` // OpenWeather "City, CC" location
	Timezone string `yaml:"timezone"` // IANA zone for displayed times
	LogDir   string `yaml:"logdir"`   // session log folder
	APIKey   string `yaml:"api_key"`  // OpenWeather API key
}

func defaultConfig() config {
	return config{
		Listen:   ":5000",
		Location: "Pittsburgh, US",
		Timezone: "America/New_York",
		LogDir:   "logs",
	}
}

// loadConfig reads the YAML config file, if one exists, and applies the
// OPENWEATHER_API_KEY and PORT environment overrides.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		tracer().Infof("no config file at %s, using defaults", path)
	default:
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if key := os.Getenv("OPENWEATHER_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Listen = ":" + port
	}
	return cfg, nil
}

func main() {
	cfgfile := flag.String("config", "rosed.yaml", "Configuration file")
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.rose.sigil":   *tlevel,
		"trace.rose.render":  *tlevel,
		"trace.rose.almanac": *tlevel,
		"trace.rose.weather": *tlevel,
		"trace.rose.logbook": *tlevel,
		"trace.rose.web":     *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	cfg, err := loadConfig(*cfgfile)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	tz, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		tracer().Errorf("unknown timezone %q: %v", cfg.Timezone, err)
		os.Exit(2)
	}
	if cfg.APIKey == "" {
		tracer().Infof("no OpenWeather API key configured, weather will be unavailable")
	}

	book, err := logbook.New(cfg.LogDir)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	srv, err := webapp.New(webapp.Config{
		Weather:  weather.New("", cfg.APIKey, cfg.Location, tz),
		Book:     book,
		Location: tz,
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}

	pterm.Info.Println(fmt.Sprintf("Ritual planner listening on %s", cfg.Listen))
	if err := http.ListenAndServe(cfg.Listen, srv); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
}
