package store

import (
    "database/sql"
    "errors"
    "testing"

    sqlmock "github.com/DATA-DOG/go-sqlmock"
    "github.com/lib/pq"
)

// Зал, на который ссылаются занятия, удалить нельзя:
// нарушение внешнего ключа переводится в ErrInUse.
func TestDeleteLocationInUse(t *testing.T) {
    st, mock := newMockStore(t)

    mock.ExpectExec("DELETE FROM locations").WithArgs(2).
        WillReturnError(&pq.Error{Code: "23503"})

    if err := st.DeleteLocation(2); !errors.Is(err, ErrInUse) {
        t.Fatalf("err = %v, ожидался ErrInUse", err)
    }
}

func TestDeleteLocationNotFound(t *testing.T) {
    st, mock := newMockStore(t)

    mock.ExpectExec("DELETE FROM locations").WithArgs(2).
        WillReturnResult(sqlmock.NewResult(0, 0))

    if err := st.DeleteLocation(2); !errors.Is(err, ErrNotFound) {
        t.Fatalf("err = %v, ожидался ErrNotFound", err)
    }
}

func TestGetLocationByIDNotFound(t *testing.T) {
    st, mock := newMockStore(t)

    mock.ExpectQuery("FROM locations").WithArgs(7).WillReturnError(sql.ErrNoRows)

    if _, err := st.GetLocationByID(7); !errors.Is(err, ErrNotFound) {
        t.Fatalf("err = %v, ожидался ErrNotFound", err)
    }
}
