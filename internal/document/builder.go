// Package document renders CatalogData into a self-contained HTML email.
// The builder is pure and deterministic for a given input and static
// config; it embeds no timestamps and fetches nothing remote at render
// time.
package document

import (
	"bytes"
	"embed"
	"encoding/base64"
	"html/template"
	"os"
	"strings"
	"sync"

	"tradedesk_backend/internal/enrichment/transport"
	"tradedesk_backend/platform/config"
	"tradedesk_backend/platform/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var catalogTmpl = template.Must(template.ParseFS(templateFS, "templates/catalog.html"))

// Builder renders catalog documents. Safe for concurrent use; the logo is
// read and encoded at most once per process and is immutable once set.
type Builder struct {
	business   BusinessInfo
	logoPath   string
	catalogURL string
	logoOnce   sync.Once
	logoURI    template.URL
	log        *logger.Logger
}

// NewBuilder creates a document builder for the given business identity.
// The public base URL, when set, becomes the absolute link to the online
// catalog in every document.
func NewBuilder(business BusinessInfo, assets config.AssetConfig, log *logger.Logger) *Builder {
	catalogURL := ""
	if base := strings.TrimRight(assets.GetPublicBaseURL(), "/"); base != "" {
		catalogURL = base + "/catalog"
	}
	return &Builder{
		business:   business,
		logoPath:   assets.GetLogoPath(),
		catalogURL: catalogURL,
		log:        log,
	}
}

type catalogView struct {
	Data     transport.CatalogData
	Business BusinessInfo
	// LogoURI is a data: URI so the image renders in clients that block
	// remote fetches. Empty when the logo file could not be read.
	LogoURI template.URL
	// CatalogURL is the absolute link to the online catalog; empty when no
	// public base URL is configured.
	CatalogURL   string
	IsLive       bool
	IsIndicative bool
}

// Build renders the catalog document for one enriched submission.
// All interpolated text, including LLM-derived rate fields and free-text
// product names, passes through html/template's contextual escaping.
func (b *Builder) Build(data transport.CatalogData) (string, error) {
	tier := data.Tier()
	view := catalogView{
		Data:         data,
		Business:     b.business,
		LogoURI:      b.logo(),
		CatalogURL:   b.catalogURL,
		IsLive:       tier == transport.TierLive,
		IsIndicative: tier == transport.TierIndicative,
	}

	var buf bytes.Buffer
	if err := catalogTmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// logo returns the memoized inline logo. A read failure logs once and the
// document simply omits the logo block.
func (b *Builder) logo() template.URL {
	b.logoOnce.Do(func() {
		raw, err := os.ReadFile(b.logoPath)
		if err != nil {
			b.log.Warn("logo unavailable, documents will omit it", "path", b.logoPath, "error", err)
			return
		}
		b.logoURI = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(raw))
	})
	return b.logoURI
}
