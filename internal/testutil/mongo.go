//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const (
	// MongoImage is the image started for integration tests.
	MongoImage = "mongo:7.0"
	// MongoURIEnv points the integration tests at an existing server
	// instead of a container.
	MongoURIEnv = "MONGODB_TEST_URI"
)

var (
	sharedURI string
	dbCounter atomic.Int64
)

// Mongo is a MongoDB server reachable by the tests.
type Mongo struct {
	URI       string
	container *mongodb.MongoDBContainer
}

func startMongo(ctx context.Context) (*Mongo, error) {
	if uri := os.Getenv(MongoURIEnv); uri != "" {
		return &Mongo{URI: uri}, nil
	}

	c, err := mongodb.Run(ctx, MongoImage)
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}
	uri, err := c.ConnectionString(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}
	return &Mongo{URI: uri, container: c}, nil
}

// Terminate stops the container, if one was started.
func (m *Mongo) Terminate(ctx context.Context) error {
	if m.container == nil {
		return nil
	}
	return m.container.Terminate(ctx)
}

// StartMongo gives a single test its own server, terminated on cleanup.
func StartMongo(t testing.TB) *Mongo {
	t.Helper()
	ctx := context.Background()
	m, err := startMongo(ctx)
	if err != nil {
		t.Fatalf("mongo: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Terminate(ctx); err != nil {
			t.Errorf("mongo: terminate: %v", err)
		}
	})
	return m
}

// RunWithMongo starts one server for the whole package, runs the tests
// and tears the server down. Use it from TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithMongo(m))
//	}
func RunWithMongo(m *testing.M) int {
	ctx := context.Background()
	mongo, err := startMongo(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "mongo: %v\n", err)
		return 1
	}
	sharedURI = mongo.URI

	code := m.Run()

	if err := mongo.Terminate(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "mongo: terminate: %v\n", err)
	}
	return code
}

// SharedMongoURI returns the server started by RunWithMongo.
func SharedMongoURI(t testing.TB) string {
	t.Helper()
	if sharedURI == "" {
		t.Fatal("mongo: RunWithMongo was not called from TestMain")
	}
	return sharedURI
}

// DatabaseName derives a database name unique to the running test so
// tests sharing a server never see each other's sessions or logs.
func DatabaseName(t testing.TB) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ', '"', '$', '*', '<', '>', ':', '|', '?':
			return '_'
		}
		return r
	}, t.Name())
	if len(name) > 40 {
		name = name[:40]
	}
	return fmt.Sprintf("%s_%d_%d", name, time.Now().UnixNano()%1000000, dbCounter.Add(1))
}
