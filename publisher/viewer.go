package publisher

import "net/url"

// ViewerLink builds a shareable deep-link that opens traceURL in the
// remote trace viewer, by percent-encoding the trace URL into a single
// query parameter appended to the viewer's base URL. Pure; no failure
// modes given upstream guarantees.
func ViewerLink(viewerBase, param, traceURL string) string {
	q := url.Values{}
	q.Set(param, traceURL)
	return viewerBase + "?" + q.Encode()
}
