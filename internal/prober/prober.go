package prober

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"urlhealth/internal/domain"
)

var errTooManyRedirects = errors.New("too many redirects")

// Prober executes a single HTTP GET against one URL and classifies the
// outcome. It never returns an error: every failure maps to a named
// outcome kind, and only the unexpected kind is retryable.
type Prober struct {
	client *http.Client
}

func New(timeout time.Duration, maxRedirects int) *Prober {
	return &Prober{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return errTooManyRedirects
				}
				return nil
			},
		},
	}
}

func (p *Prober) Probe(ctx context.Context, rawURL string) domain.Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domain.Outcome{
			Kind:         domain.OutcomeUnexpected,
			CheckOutcome: domain.CheckOutcome{ErrorMessage: "An unexpected error occurred"},
			Cause:        err,
		}
	}

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close()

	elapsed := time.Since(start).Seconds()
	code := resp.StatusCode

	return domain.Outcome{
		Kind: domain.OutcomeSuccess,
		CheckOutcome: domain.CheckOutcome{
			StatusCode:   &code,
			ResponseTime: &elapsed,
			IsReachable:  code < http.StatusBadRequest,
		},
	}
}

// classify maps a transport error to an outcome, most specific first:
// timeouts, then TLS, then connection-level failures, then the redirect
// limit, then any other transport failure. Anything that is not even a
// transport error is unexpected and retryable.
func classify(err error) domain.Outcome {
	if isTimeout(err) {
		return failure(domain.OutcomeTimeout, "Request timed out")
	}
	if isTLSError(err) {
		return failure(domain.OutcomeTLS, "SSL Certificate Error")
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return failure(domain.OutcomeDNS, "Domain does not exist")
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return failure(domain.OutcomeConnRefused, "Connection refused")
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return failure(domain.OutcomeConnFailed, "Failed to establish connection")
	}

	if errors.Is(err, errTooManyRedirects) {
		return failure(domain.OutcomeTooManyRedirects, "Too many redirects")
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return failure(domain.OutcomeRequestFailed, "Request failed")
	}

	return domain.Outcome{
		Kind:         domain.OutcomeUnexpected,
		CheckOutcome: domain.CheckOutcome{ErrorMessage: "An unexpected error occurred"},
		Cause:        err,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isTLSError(err error) bool {
	var (
		verifyErr    *tls.CertificateVerificationError
		unknownAuth  x509.UnknownAuthorityError
		hostnameErr  x509.HostnameError
		certInvalid  x509.CertificateInvalidError
		recordHeader tls.RecordHeaderError
	)
	return errors.As(err, &verifyErr) ||
		errors.As(err, &unknownAuth) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &certInvalid) ||
		errors.As(err, &recordHeader)
}

func failure(kind domain.OutcomeKind, message string) domain.Outcome {
	return domain.Outcome{
		Kind:         kind,
		CheckOutcome: domain.CheckOutcome{ErrorMessage: message},
	}
}
