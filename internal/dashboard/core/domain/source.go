package domain

import "strings"

// DataSource selects where dashboard records are read from.
type DataSource string

const (
	DataSourceMock     DataSource = "mock"
	DataSourceDatabase DataSource = "database"
	DataSourceBoth     DataSource = "both"
)

var DataSources = []DataSource{DataSourceMock, DataSourceDatabase, DataSourceBoth}

func ParseDataSource(s string) (DataSource, error) {
	switch ds := DataSource(strings.ToLower(strings.TrimSpace(s))); ds {
	case DataSourceMock, DataSourceDatabase, DataSourceBoth:
		return ds, nil
	}
	return "", newValidationError("source", s, "expected mock, database or both")
}
