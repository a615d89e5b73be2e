package settings

import (
	"context"
	"strings"

	"github.com/ramanDeveloper23/visage-site-api/pkg/logging"
)

// servicePages maps service keys to the page path under the site root. Used
// when the admin has not set an explicit URL for the key.
var servicePages = map[string]string{
	"bridal_makeup": "bridal-makeup",
	"learn_makeup":  "learn-makeup",
}

// URLResolver resolves service keys to page URLs for the dialogue engine:
// admin-configured URL first, then the well-known page path, then the
// homepage so the chatbot never hands out an empty link.
type URLResolver struct {
	store   *Store
	homeURL string
	logger  *logging.Logger
}

// NewURLResolver creates a resolver rooted at the site's home URL.
func NewURLResolver(store *Store, homeURL string, logger *logging.Logger) *URLResolver {
	if logger == nil {
		logger = logging.Default()
	}
	return &URLResolver{
		store:   store,
		homeURL: strings.TrimRight(homeURL, "/") + "/",
		logger:  logger,
	}
}

// Resolve returns the page URL for a service key.
func (r *URLResolver) Resolve(ctx context.Context, key string) string {
	if r.store != nil {
		cfg, err := r.store.GetChatbot(ctx)
		if err != nil {
			r.logger.Warn("settings: resolve service url", "key", key, "error", err)
		} else if url := strings.TrimSpace(cfg.ServiceURLs[key]); url != "" {
			return url
		}
	}
	if page, ok := servicePages[key]; ok {
		return r.homeURL + page
	}
	return r.homeURL
}
