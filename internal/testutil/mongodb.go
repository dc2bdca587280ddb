//go:build integration

// Package testutil provides the shared MongoDB testcontainer used by
// integration tests. One container is started per test binary and tests
// isolate themselves with unique database names.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const mongoImage = "mongo:7.0"

var (
	shared     *mongodb.MongoDBContainer
	sharedURI  string
	sharedErr  error
	sharedOnce sync.Once
	sharedMu   sync.RWMutex
)

// SetupTestMainWithMongoDB starts the shared container, runs the package's
// tests, and terminates the container. Usage:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if err := startShared(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if err := testcontainers.TerminateContainer(shared); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to terminate MongoDB container: %v\n", err)
	}

	return code
}

func startShared(ctx context.Context) error {
	sharedOnce.Do(func() {
		sharedMu.Lock()
		defer sharedMu.Unlock()

		shared, sharedErr = mongodb.Run(ctx, mongoImage)
		if sharedErr != nil {
			sharedErr = fmt.Errorf("start MongoDB container: %w", sharedErr)
			return
		}
		sharedURI, sharedErr = shared.ConnectionString(ctx)
		if sharedErr != nil {
			sharedErr = fmt.Errorf("MongoDB connection string: %w", sharedErr)
		}
	})

	sharedMu.RLock()
	defer sharedMu.RUnlock()
	return sharedErr
}

// GetSharedContainerURI returns the connection URI of the shared container.
// Panics when called before SetupTestMainWithMongoDB.
func GetSharedContainerURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if sharedURI == "" {
		panic("shared MongoDB container not initialized, call SetupTestMainWithMongoDB in TestMain")
	}
	return sharedURI
}

// SanitizeDBName turns a test name into a valid, unique MongoDB database
// name. Subtest path separators become underscores and a nanosecond suffix
// keeps parallel tests from colliding.
func SanitizeDBName(testName string) string {
	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(testName)
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}
