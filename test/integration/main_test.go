package integration

import (
	"fmt"
	"os"
	"testing"

	"github.com/fhuszti/paper-site-go/test/testutil"
)

var GlobalRedisAddr string

func TestMain(m *testing.M) {
	code := func() int {
		dbCleanup, err := setupMariaDB()
		if err != nil {
			fmt.Fprintf(os.Stderr, "DB setup failed: %v\n", err)
			return 1
		}
		defer dbCleanup()

		redisCleanup, err := setupRedis()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Redis setup failed: %v\n", err)
			return 1
		}
		defer redisCleanup()

		return m.Run()
	}()

	os.Exit(code)
}

func setupMariaDB() (cleanup func(), err error) {
	if os.Getenv("TEST_DB_DSN") != "" {
		// CI provided it; nothing to clean up
		return func() {}, nil
	}

	mdb, err := testutil.StartMariaDBContainer()
	if err != nil {
		return nil, err
	}
	if err := os.Setenv("TEST_DB_DSN", mdb.DSN); err != nil {
		mdb.Cleanup()
		return nil, err
	}

	return mdb.Cleanup, nil
}

func setupRedis() (cleanup func(), err error) {
	if addr := os.Getenv("TEST_REDIS_ADDR"); addr != "" {
		GlobalRedisAddr = addr
		return func() {}, nil
	}

	rc, err := testutil.StartRedisContainer()
	if err != nil {
		return nil, err
	}
	GlobalRedisAddr = rc.Addr

	return rc.Cleanup, nil
}

type errorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details"`
}

func setupDB(t *testing.T) *testutil.TestDB {
	t.Helper()
	testDB, err := testutil.SetupTestDB()
	if err != nil {
		t.Fatalf("setup DB: %v", err)
	}
	t.Cleanup(func() {
		if err := testDB.Cleanup(); err != nil {
			t.Errorf("cleanup DB: %v", err)
		}
	})
	return testDB
}
