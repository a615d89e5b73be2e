package scheduling

import (
	"net/url"
	"strings"
)

// schedulerHost is the third-party scheduling provider the widget hands off to.
const schedulerHost = "calendly.com"

// NormalizeSchedulerURL turns admin-entered scheduler values into a full URL:
// a bare "user/event" slug gets the provider host prefixed, and a missing
// scheme defaults to https.
func NormalizeSchedulerURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, schedulerHost) {
		raw = "https://" + schedulerHost + "/" + strings.TrimPrefix(raw, "/")
	}
	if !strings.HasPrefix(raw, "http") {
		raw = "https://" + raw
	}
	return raw
}

// ExtractEventSlug returns the event-type slug from a scheduler URL, i.e. the
// second path segment of https://calendly.com/{user}/{event}. Empty when the
// URL has no event segment.
func ExtractEventSlug(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	path := strings.Trim(u.Path, "/")
	if path == "" {
		return ""
	}
	parts := strings.Split(path, "/")
	if len(parts) >= 2 {
		return parts[1]
	}
	return ""
}

// BookingURL appends the selected date (and time, when chosen) to the
// scheduler URL. The provider does not support date pre-selection; the
// parameters ride along for reference and tracking.
func BookingURL(schedulerURL, date, timeSlot string) string {
	out := schedulerURL
	sep := "?"
	if strings.Contains(out, "?") {
		sep = "&"
	}
	if date != "" {
		out += sep + "date=" + url.QueryEscape(date)
		sep = "&"
	}
	if timeSlot != "" {
		out += sep + "time=" + url.QueryEscape(timeSlot)
	}
	return out
}
