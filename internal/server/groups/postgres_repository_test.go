package groups

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mlajnef/rpc-messenger/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestRepoCreate_InsertsGroupAndOwnerMembership(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT\s+INTO\s+groups`).
		WithArgs("devs", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT\s+INTO\s+group_members`).
		WithArgs("devs", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Create(context.Background(), "devs", "alice"); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepoCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT\s+INTO\s+groups`).
		WithArgs("devs", "alice").
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), "devs", "alice")
	if !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRepoGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+name,\s+owner\s+FROM\s+groups`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepoAddMember_ReportsDuplicateAsFalse(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+group_members`).
		WithArgs("devs", "bob").
		WillReturnResult(sqlmock.NewResult(0, 0))

	added, err := repo.AddMember(context.Background(), "devs", "bob")
	if err != nil {
		t.Fatalf("AddMember error: %v", err)
	}
	if added {
		t.Error("conflicting insert must report false")
	}
}

func TestRepoRemoveMember(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+group_members`).
		WithArgs("devs", "bob").
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.RemoveMember(context.Background(), "devs", "bob")
	if err != nil {
		t.Fatalf("RemoveMember error: %v", err)
	}
	if !removed {
		t.Error("expected removal to report true")
	}
}

func TestRepoMembers_EmptyForUnknownGroup(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+username\s+FROM\s+group_members`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"username"}))

	members, err := repo.Members(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("Members error: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("expected empty roster, got %v", members)
	}
}

func TestRepoExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+EXISTS`).
		WithArgs("devs").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), "devs")
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}
}

func TestRepoGroupsFor(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"group_name"}).AddRow("devs").AddRow("ops")
	mock.ExpectQuery(`SELECT\s+group_name\s+FROM\s+group_members`).
		WithArgs("alice").
		WillReturnRows(rows)

	groups, err := repo.GroupsFor(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GroupsFor error: %v", err)
	}
	if len(groups) != 2 || groups[0] != "devs" || groups[1] != "ops" {
		t.Errorf("unexpected groups %v", groups)
	}
}
