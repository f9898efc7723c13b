package repomanager

import (
	"context"
	"database/sql"

	"github.com/akarpovs/tasktracker/internal/dbx"
	"github.com/akarpovs/tasktracker/internal/server/repositories/tasks"
	"github.com/akarpovs/tasktracker/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DB handle
// and exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
