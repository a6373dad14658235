package testutil

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/fhuszti/paper-site-go/internal/logger"
)

type MariaDBContainerInfo struct {
	DSN     string
	Cleanup func()
}

func StartMariaDBContainer() (*MariaDBContainerInfo, error) {
	const (
		image        = "mariadb"
		tag          = "10.11"
		rootUser     = "root"
		rootPassword = "root"
		internalPort = "3306/tcp"
	)

	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: image,
		Tag:        tag,
		Env: []string{
			fmt.Sprintf("MARIADB_ROOT_PASSWORD=%s", rootPassword),
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start mariadb container: %w", err)
	}

	var dsn string
	if err := pool.Retry(func() error {
		port := resource.GetPort(internalPort)
		dsn = fmt.Sprintf("%s:%s@(localhost:%s)/paper_site?parseTime=true", rootUser, rootPassword, port)
		db, err := sql.Open("mysql", fmt.Sprintf("%s:%s@(localhost:%s)/mysql", rootUser, rootPassword, port))
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}); err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("mariadb did not become ready: %w", err)
	}

	ci := &MariaDBContainerInfo{
		DSN: dsn,
		Cleanup: func() {
			if err := pool.Purge(resource); err != nil {
				logger.Warnf(context.Background(), "could not purge mariadb container: %s", err)
			}
		},
	}
	return ci, nil
}
