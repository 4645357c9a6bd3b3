package handler

import (
	"net/http"
	"net/url"
)

// redirectResponse performs a plain HTTP redirect.
type redirectResponse struct {
	url  string
	code int
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect creates a redirect response with status 303 (See Other), the
// conventional status for POST-redirect-GET flows.
//
// Example:
//
//	return handler.Redirect("/?flash=stored")
func Redirect(url string) Response {
	return redirectResponse{
		url:  url,
		code: http.StatusSeeOther,
	}
}

// RedirectWithCode creates a redirect response with a specific status code.
// Valid codes are 301 (Moved Permanently), 302 (Found), 303 (See Other),
// 307 (Temporary Redirect), and 308 (Permanent Redirect).
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{
		url:  url,
		code: code,
	}
}

// redirectBackResponse handles redirect to referrer
type redirectBackResponse struct {
	fallback string
	code     int
}

func (r redirectBackResponse) Render(w http.ResponseWriter, req *http.Request) error {
	referer := req.Header.Get("Referer")
	targetURL := r.fallback

	if referer != "" && isValidRedirectURL(referer, req) {
		targetURL = referer
	}

	http.Redirect(w, req, targetURL, r.code)
	return nil
}

// RedirectBack creates a redirect back to the referrer or fallback URL.
// It validates that the referrer is from the same host for security.
// Uses status 303 (See Other) for the redirect.
func RedirectBack(fallback string) Response {
	return redirectBackResponse{
		fallback: fallback,
		code:     http.StatusSeeOther,
	}
}

// RedirectBackWithCode creates a redirect back response with a specific status code
func RedirectBackWithCode(fallback string, code int) Response {
	return redirectBackResponse{
		fallback: fallback,
		code:     code,
	}
}

// isValidRedirectURL checks if a URL is safe to redirect to
func isValidRedirectURL(urlStr string, r *http.Request) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	// Only allow same-host redirects (empty host means relative URL)
	return parsed.Host == "" || parsed.Host == r.Host
}
