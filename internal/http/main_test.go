//go:build integration

package http

import (
	"context"
	"os"
	"testing"

	"github.com/wsawebmaster/delivery/internal/testutil"
)

// TestMain starts one MongoDB container for the HTTP integration tests.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}
