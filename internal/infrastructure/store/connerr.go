package store

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsConnectionError is the fallback decision function: it reports whether err
// indicates the database could not be reached at all, as opposed to the
// database rejecting a well-formed operation. Only connection-class failures
// divert a call to the in-memory store; everything else surfaces to the
// caller unchanged.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, os.ErrDeadlineExceeded) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 28: the server is up but refuses our credentials. The store
		// cannot operate against it, so it behaves like an unreachable one.
		// Class 57: admin shutdown / cannot-connect-now.
		return strings.HasPrefix(pgErr.Code, "28") || strings.HasPrefix(pgErr.Code, "57")
	}

	return false
}
