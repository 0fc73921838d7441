package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	_ "github.com/glebarez/sqlite"
	"github.com/rfberaldo/sqlz"
	"github.com/rfberaldo/sqlz/binds"
)

//go:embed sql-migrations
var sqlMigrationsFs embed.FS

var registerBinds sync.Once

func Connect(dsn string) (*sqlz.DB, error) {
	var (
		err error
		db  *sqlz.DB
	)

	registerBinds.Do(func() {
		binds.Register("sqlite", binds.BindByDriver("sqlite3"))
	})

	if db, err = sqlz.Connect("sqlite", dsn); err != nil {
		return nil, fmt.Errorf("error connecting to database '%s': %w", dsn, err)
	}

	return db, nil
}

/*
Migrate runs every script in sql-migrations whose name starts with "commit",
in name order. Scripts must be safe to run more than once.
*/
func Migrate(db *sqlz.DB) error {
	var (
		err  error
		dirs []fs.DirEntry
		b    []byte
	)

	if dirs, err = sqlMigrationsFs.ReadDir("sql-migrations"); err != nil {
		return fmt.Errorf("error reading migrations: %w", err)
	}

	sort.Slice(dirs, func(i, j int) bool {
		return dirs[i].Name() < dirs[j].Name()
	})

	for _, d := range dirs {
		if d.IsDir() || !strings.HasPrefix(d.Name(), "commit") {
			continue
		}

		if b, err = fs.ReadFile(sqlMigrationsFs, path.Join("sql-migrations", d.Name())); err != nil {
			return fmt.Errorf("error reading migration '%s': %w", d.Name(), err)
		}

		if err = runSqlScript(db, b); err != nil && !isIgnorableError(err) {
			return fmt.Errorf("error running migration '%s': %w", d.Name(), err)
		}
	}

	return nil
}

func runSqlScript(db *sqlz.DB, script []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	_, err := db.Exec(ctx, string(script))
	return err
}

func isIgnorableError(err error) bool {
	return strings.Contains(err.Error(), "duplicate column")
}
