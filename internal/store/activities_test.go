package store

import (
    "database/sql"
    "errors"
    "testing"
)

func TestGetActivityByIDNotFound(t *testing.T) {
    st, mock := newMockStore(t)

    mock.ExpectQuery("FROM activities").WithArgs(7).WillReturnError(sql.ErrNoRows)

    if _, err := st.GetActivityByID(7); !errors.Is(err, ErrNotFound) {
        t.Fatalf("err = %v, ожидался ErrNotFound", err)
    }
}
