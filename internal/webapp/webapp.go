// Package webapp serves the ritual planner: a planner page with time-based
// occult context and a session log form, and a sigil page rendering words
// into rose-cross diagrams.
//
// The package is a thin boundary: all values on the planner page come from
// the almanac, weather and logbook collaborators, and the sigil page embeds
// the PNG produced by package rose as a base64 data URI.
package webapp

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/npillmayer/schuko/tracing"

	"github.com/alchemelodic/rosesigil/almanac"
	"github.com/alchemelodic/rosesigil/internal/logbook"
	"github.com/alchemelodic/rosesigil/internal/weather"
	"github.com/alchemelodic/rosesigil/rose"
)

// tracer writes to trace with key 'rose.web'
func tracer() tracing.Trace {
	return tracing.Select("rose.web")
}

//go:embed templates/*.html
var templatesFS embed.FS

// hourUnavailable is shown when sun times are missing and no planetary hour
// can be computed.
const hourUnavailable = "Planetary hour data unavailable"

// Config wires the planner's collaborators.
type Config struct {
	Weather  *weather.Client
	Book     *logbook.Book
	Location *time.Location   // wall clock for all displayed times
	Now      func() time.Time // defaults to time.Now
}

// Server handles the planner and sigil routes.
type Server struct {
	mux     *http.ServeMux
	tmpl    *template.Template
	weather *weather.Client
	book    *logbook.Book
	loc     *time.Location
	now     func() time.Time
}

// New builds the web server from its collaborators.
func New(cfg Config) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("webapp: parsing templates: %w", err)
	}
	s := &Server{
		mux:     http.NewServeMux(),
		tmpl:    tmpl,
		weather: cfg.Weather,
		book:    cfg.Book,
		loc:     cfg.Location,
		now:     cfg.Now,
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.mux.HandleFunc("/", s.handlePlanner)
	s.mux.HandleFunc("/sigils", s.handleSigils)
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// context captures the planner context at one instant: clock strings plus
// almanac and weather values.
func (s *Server) context(r *http.Request) logbook.Context {
	now := s.now().In(s.loc)
	cond := s.weather.Current(r.Context())
	hour := hourUnavailable
	if cond.HasSun {
		if planet, err := almanac.PlanetaryHour(now, cond.Sunrise, cond.Sunset); err == nil {
			hour = planet
		} else {
			tracer().Infof("planetary hour: %v", err)
		}
	}
	return logbook.Context{
		Date:          now.Format("Jan. 02, 2006"),
		Time:          now.Format("03:04 PM"),
		Day:           now.Format("Monday"),
		Quarter:       almanac.ElementalQuarter(now),
		MoonPhase:     almanac.MoonPhase(now),
		Weather:       cond.Summary,
		PlanetaryHour: hour,
	}
}

type plannerData struct {
	logbook.Context
	Rituals []string
}

func (s *Server) handlePlanner(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	ctx := s.context(r)
	if r.Method == http.MethodPost {
		s.logSession(w, r, ctx)
		return
	}
	data := plannerData{Context: ctx, Rituals: logbook.Rituals}
	if err := s.tmpl.ExecuteTemplate(w, "planner.html", data); err != nil {
		tracer().Errorf("rendering planner page: %v", err)
	}
}

// logSession stores the submitted session in the logbook and returns the log
// text as a file download.
func (s *Server) logSession(w http.ResponseWriter, r *http.Request, ctx logbook.Context) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	performed := make(map[string]bool)
	for _, name := range r.PostForm["rituals"] {
		performed[name] = true
	}
	entry := &logbook.Entry{
		When:              s.now().In(s.loc),
		Context:           ctx,
		PhysicalCondition: r.PostFormValue("physical_condition"),
		Meditation:        r.PostFormValue("meditation"),
		Tarot:             r.PostFormValue("tarot"),
	}
	for _, name := range logbook.Rituals {
		entry.Rituals = append(entry.Rituals, logbook.RitualNote{
			Name:      name,
			Performed: performed[name],
			Note:      r.PostFormValue("note_" + name),
		})
	}
	if _, err := s.book.Write(entry); err != nil {
		tracer().Errorf("%v", err)
		http.Error(w, "could not store session log", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", entry.Filename()))
	fmt.Fprint(w, entry.Text())
}

type sigilsData struct {
	Word       string
	SigilImage template.URL // base64 PNG data URI, empty until a word is submitted
}

func (s *Server) handleSigils(w http.ResponseWriter, r *http.Request) {
	var data sigilsData
	if r.Method == http.MethodPost {
		data.Word = r.PostFormValue("word")
		if data.Word != "" {
			var buf bytes.Buffer
			if err := rose.RenderTo(&buf, data.Word); err != nil {
				tracer().Errorf("%v", err)
				http.Error(w, "sigil rendering failed", http.StatusInternalServerError)
				return
			}
			data.SigilImage = template.URL("data:image/png;base64," +
				base64.StdEncoding.EncodeToString(buf.Bytes()))
		}
	}
	if err := s.tmpl.ExecuteTemplate(w, "sigils.html", data); err != nil {
		tracer().Errorf("rendering sigil page: %v", err)
	}
}
