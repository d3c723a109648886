package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"
)

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	DriverCode    string `json:"driver_code,omitempty"`
	DriverDetail  string `json:"driver_detail,omitempty"`
	DriverMessage string `json:"driver_message,omitempty"`
	PGConstraint  string `json:"pg_constraint,omitempty"`
	PGTable       string `json:"pg_table,omitempty"`
	PGColumn      string `json:"pg_column,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		d.DriverCode = sqliteErr.Code.Error()
		d.DriverDetail = sqliteErr.ExtendedCode.Error()
		d.DriverMessage = sqliteErr.Error()
		return d
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		d.DriverCode = pgxErr.Code
		d.DriverDetail = pgxErr.Detail
		d.DriverMessage = pgxErr.Message
		d.PGConstraint = pgxErr.ConstraintName
		d.PGTable = pgxErr.TableName
		d.PGColumn = pgxErr.ColumnName
		return d
	}

	return d
}
