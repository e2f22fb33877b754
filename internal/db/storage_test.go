// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
)

// recordingDriver counts what reaches the database. beginErr makes every
// BEGIN fail.
type recordingDriver struct {
	beginErr error

	execs     int
	begins    int
	commits   int
	rollbacks int
}

func (d *recordingDriver) Open(string) (driver.Conn, error) {
	return &recordingConn{d: d}, nil
}

func (d *recordingDriver) Connect(context.Context) (driver.Conn, error) {
	return &recordingConn{d: d}, nil
}

func (d *recordingDriver) Driver() driver.Driver {
	return d
}

type recordingConn struct {
	d *recordingDriver
}

func (c *recordingConn) Prepare(string) (driver.Stmt, error) {
	return &recordingStmt{d: c.d}, nil
}

func (c *recordingConn) Close() error {
	return nil
}

func (c *recordingConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *recordingConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	if c.d.beginErr != nil {
		return nil, c.d.beginErr
	}
	c.d.begins++
	return &recordingTx{d: c.d}, nil
}

type recordingTx struct {
	d *recordingDriver
}

func (t *recordingTx) Commit() error {
	t.d.commits++
	return nil
}

func (t *recordingTx) Rollback() error {
	t.d.rollbacks++
	return nil
}

type recordingStmt struct {
	d *recordingDriver
}

func (s *recordingStmt) Close() error {
	return nil
}

func (s *recordingStmt) NumInput() int {
	return -1
}

func (s *recordingStmt) Exec([]driver.Value) (driver.Result, error) {
	s.d.execs++
	return driver.RowsAffected(1), nil
}

func (s *recordingStmt) Query([]driver.Value) (driver.Rows, error) {
	return nil, errors.New("not supported")
}

func newTestClient(d *recordingDriver) *DBClient {
	logger := logging.NewNoopLogger()

	c := new(DBClient)
	c.db = sql.OpenDB(d)
	c.tracer = tracing.NewNoopTracer()
	c.monitor = monitoring.NewNoopMonitor("test", logger)
	c.logger = logger

	return c
}

func consume(ctx context.Context, c *DBClient) error {
	_, err := c.Statement(ctx).
		Update("admin_tokens").
		Set("is_used", true).
		Where(sq.Eq{"token": "abc", "is_used": false}).
		ExecContext(ctx)
	return err
}

func TestWithTx(t *testing.T) {
	errBegin := errors.New("too many connections")
	errUpdate := errors.New("password update failed")

	tests := []struct {
		name     string
		beginErr error
		// fn runs one statement and returns what the callback decides
		fn func(stmtErr error) error

		expectedErr   error
		wantExecs     int
		wantCommits   int
		wantRollbacks int
	}{
		{
			name:        "commits on success",
			fn:          func(stmtErr error) error { return stmtErr },
			wantExecs:   1,
			wantCommits: 1,
		},
		{
			name:          "rolls back when the callback fails",
			fn:            func(error) error { return errUpdate },
			expectedErr:   errUpdate,
			wantExecs:     1,
			wantRollbacks: 1,
		},
		{
			name:        "begin failure reaches the statement",
			beginErr:    errBegin,
			fn:          func(stmtErr error) error { return stmtErr },
			expectedErr: errBegin,
		},
		{
			name:        "begin failure is not retried outside the transaction",
			beginErr:    errBegin,
			fn:          func(error) error { return errUpdate },
			expectedErr: errUpdate,
		},
		{
			name:        "begin failure is reported when the callback ignores it",
			beginErr:    errBegin,
			fn:          func(error) error { return nil },
			expectedErr: errBegin,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := &recordingDriver{beginErr: test.beginErr}
			c := newTestClient(d)

			err := c.WithTx(context.Background(), func(ctx context.Context) error {
				return test.fn(consume(ctx, c))
			})

			if test.expectedErr == nil && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if test.expectedErr != nil && !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected error %v, got %v", test.expectedErr, err)
			}

			if d.execs != test.wantExecs {
				t.Errorf("expected %d statements executed, got %d", test.wantExecs, d.execs)
			}
			if d.commits != test.wantCommits {
				t.Errorf("expected %d commits, got %d", test.wantCommits, d.commits)
			}
			if d.rollbacks != test.wantRollbacks {
				t.Errorf("expected %d rollbacks, got %d", test.wantRollbacks, d.rollbacks)
			}
		})
	}
}

func TestWithTxNoStatements(t *testing.T) {
	d := new(recordingDriver)
	c := newTestClient(d)

	if err := c.WithTx(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if d.begins != 0 {
		t.Errorf("expected no transaction to be opened, got %d", d.begins)
	}
}

func TestStatementWithoutTx(t *testing.T) {
	d := &recordingDriver{beginErr: errors.New("unused")}
	c := newTestClient(d)

	if err := consume(context.Background(), c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if d.execs != 1 || d.begins != 0 {
		t.Errorf("expected one autocommit statement, got execs=%d begins=%d", d.execs, d.begins)
	}
}
