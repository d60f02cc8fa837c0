// Package decor injects optional third-party and purely cosmetic markup into a
// page: an analytics tag, a math typesetting bootstrap, and an SVG filter.
// Every injector checks for its own earlier work and skips a second injection.
package decor

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/PuerkitoBio/goquery"
	"github.com/ancientlore/sitenav/dom"
)

const (
	gtagURL     = "https://www.googletagmanager.com/gtag/js"
	mathJaxURL  = "https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-mml-chtml.js"
	MathJaxID   = "MathJax-script" // id of the injected MathJax loader
	FilterDefID = "navFilterDefs"  // id of the injected SVG definitions
	FilterID    = "nav-glass"      // id of the filter, for CSS filter: url(#nav-glass)
)

// gtagLoader matches an existing loader whatever its scheme or host prefix.
const gtagLoader = `script[src*="googletagmanager.com/gtag/js"]`

var tpl = template.Must(template.New("decor").Parse(`
{{- define "analytics" -}}
<script async src="{{.URL}}"></script>
<script>window.dataLayer = window.dataLayer || [];
function gtag(){dataLayer.push(arguments);}
gtag('js', new Date());
gtag('config', {{.ID}});</script>
{{- end}}
{{- define "math" -}}
<script>window.MathJax = {{.}};</script>
<script id="` + MathJaxID + `" async src="` + mathJaxURL + `"></script>
{{- end}}
{{- define "filter" -}}
<svg id="` + FilterDefID + `" width="0" height="0" style="position:absolute" aria-hidden="true" focusable="false">
<defs>
<filter id="` + FilterID + `" x="-10%" y="-10%" width="120%" height="120%">
<feTurbulence type="fractalNoise" baseFrequency="{{.BaseFrequency}}" numOctaves="{{.NumOctaves}}" seed="{{.Seed}}" result="noise"></feTurbulence>
<feGaussianBlur in="noise" stdDeviation="{{.EdgeRadius}}" result="soft"></feGaussianBlur>
<feDisplacementMap in="SourceGraphic" in2="soft" scale="{{.DisplacementScale}}" xChannelSelector="R" yChannelSelector="G"></feDisplacementMap>
</filter>
</defs>
</svg>
{{- end}}`))

func execute(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// InjectAnalytics adds the tag manager loader for measurementID to <head>.
// It does nothing when the ID is empty or a loader is already present.
func InjectAnalytics(doc *goquery.Document, measurementID string) (bool, error) {
	if measurementID == "" || doc.Find(gtagLoader).Length() > 0 {
		return false, nil
	}
	head, err := dom.Require(doc, "InjectAnalytics", "head")
	if err != nil {
		return false, err
	}
	markup, err := execute("analytics", struct{ URL, ID string }{gtagURL + "?id=" + measurementID, measurementID})
	if err != nil {
		return false, fmt.Errorf("InjectAnalytics: %w", err)
	}
	head.AppendHtml(string(markup))
	return true, nil
}

// MathJaxConfig is the MathJax configuration object, rendered as JSON.
type MathJaxConfig struct {
	Tex struct {
		InlineMath  [][2]string `json:"inlineMath"`
		DisplayMath [][2]string `json:"displayMath"`
	} `json:"tex"`
}

// MathConfig returns the fixed delimiter configuration used by InjectMath.
func MathConfig() MathJaxConfig {
	var c MathJaxConfig
	c.Tex.InlineMath = [][2]string{{"$", "$"}, {`\(`, `\)`}}
	c.Tex.DisplayMath = [][2]string{{"$$", "$$"}, {`\[`, `\]`}}
	return c
}

// InjectMath adds the MathJax configuration and loader to <head>.
// It does nothing when the loader is already present.
func InjectMath(doc *goquery.Document) (bool, error) {
	if dom.ByID(doc, MathJaxID).Length() > 0 {
		return false, nil
	}
	head, err := dom.Require(doc, "InjectMath", "head")
	if err != nil {
		return false, err
	}
	markup, err := execute("math", MathConfig())
	if err != nil {
		return false, fmt.Errorf("InjectMath: %w", err)
	}
	head.AppendHtml(string(markup))
	return true, nil
}

// FilterParams are the parameters of the decorative SVG filter.
// They only change how things look.
type FilterParams struct {
	BaseFrequency     float64 `toml:"basefrequency"` // turbulence base frequency
	NumOctaves        int     `toml:"numoctaves"`    // turbulence octaves
	Seed              int     `toml:"seed"`          // turbulence seed
	DisplacementScale float64 `toml:"scale"`         // displacement strength
	EdgeRadius        float64 `toml:"edgeradius"`    // blur applied to the noise
}

// DefaultFilterParams returns a subtle glass-like distortion.
func DefaultFilterParams() FilterParams {
	return FilterParams{
		BaseFrequency:     0.008,
		NumOctaves:        2,
		Seed:              92,
		DisplacementScale: 77,
		EdgeRadius:        2,
	}
}

// InjectFilter appends the hidden SVG filter definitions to <body>.
// It does nothing when the definitions are already present.
func InjectFilter(doc *goquery.Document, p FilterParams) (bool, error) {
	if dom.ByID(doc, FilterDefID).Length() > 0 {
		return false, nil
	}
	body, err := dom.Require(doc, "InjectFilter", "body")
	if err != nil {
		return false, err
	}
	markup, err := execute("filter", p)
	if err != nil {
		return false, fmt.Errorf("InjectFilter: %w", err)
	}
	body.AppendHtml(string(markup))
	return true, nil
}
