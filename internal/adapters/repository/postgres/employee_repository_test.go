package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-workforce-synth/internal/core/workforce"
	pgdb "github.com/ogurasousui/codex-workforce-synth/internal/platform/db/postgres"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

var testAsOf = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func testRecord(gender workforce.Gender, salary workforce.Money, hired time.Time) workforce.Record {
	return workforce.Record{
		ID:              uuid.NewString(),
		FirstName:       "Anna",
		LastName:        "Nowak",
		Gender:          gender,
		PESEL:           "44051401359",
		Address:         "ul. Polna 1, 00-001 Warszawa",
		Country:         "Polska",
		City:            "Warszawa",
		PostalCode:      "00-001",
		JobTitle:        "Księgowa",
		InsuranceNumber: "1234563218",
		Email:           "anna.nowak@example.com",
		Phone:           "+48 512-345-678",
		CardNumber:      "4000000000000002",
		Login:           "anowak",
		Password:        "Secret123!",
		BirthDate:       time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC),
		HireDate:        hired,
		Salary:          salary,
		Disability:      workforce.DisabilityNone,
	}
}

func derivedDataset(t *testing.T, records ...workforce.Record) *workforce.Dataset {
	t.Helper()

	ds := &workforce.Dataset{Seed: 1, GeneratedOn: testAsOf, Records: records}
	if err := workforce.Derive(ds, testAsOf); err != nil {
		t.Fatalf("Derive returned error: %v", err)
	}
	return ds
}

func TestEmployeeRows_FollowsColumnOrder(t *testing.T) {
	t.Parallel()

	rec := testRecord(workforce.GenderFemale, 500000, time.Date(2017, time.March, 11, 0, 0, 0, 0, time.UTC))
	ds := derivedDataset(t, rec)

	rows, err := employeeRows(ds)
	if err != nil {
		t.Fatalf("employeeRows returned error: %v", err)
	}
	if len(rows) != 1 || len(rows[0]) != len(employeeColumns) {
		t.Fatalf("unexpected shape: %d rows, %d columns", len(rows), len(rows[0]))
	}

	row := rows[0]
	if row[0] != uuid.MustParse(rec.ID) {
		t.Errorf("expected uuid id, got %v", row[0])
	}
	if row[3] != "female" {
		t.Errorf("expected gender column, got %v", row[3])
	}
	if row[18] != int64(500000) {
		t.Errorf("expected salary in grosze, got %v", row[18])
	}
	// 2017-03-11 から 2025-03-10 は満 7 年。
	if row[21] != int32(7) || row[23] != "6-10" {
		t.Errorf("unexpected tenure columns: %v %v", row[21], row[23])
	}
	if row[20] != int32(34) || row[22] != "26-35" {
		t.Errorf("unexpected age columns: %v %v", row[20], row[22])
	}
}

func TestEmployeeRows_Errors(t *testing.T) {
	t.Parallel()

	if _, err := employeeRows(nil); !errors.Is(err, workforce.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}

	rec := testRecord(workforce.GenderMale, 500000, testAsOf)
	underived := &workforce.Dataset{Records: []workforce.Record{rec}}
	if _, err := employeeRows(underived); !errors.Is(err, workforce.ErrNotDerived) {
		t.Fatalf("expected ErrNotDerived, got %v", err)
	}

	rec.ID = "not-a-uuid"
	if _, err := employeeRows(derivedDataset(t, rec)); !errors.Is(err, workforce.ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
}

func TestEmployeeRepository_ReplaceAll(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)
	ds := derivedDataset(t,
		testRecord(workforce.GenderFemale, 500000, testAsOf),
		testRecord(workforce.GenderMale, 700000, testAsOf),
	)

	mock.ExpectExec(regexp.QuoteMeta(`TRUNCATE TABLE employees`)).
		WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))
	mock.ExpectCopyFrom(pgx.Identifier{"employees"}, employeeColumns).
		WillReturnResult(2)

	n, err := repo.ReplaceAll(context.Background(), ds)
	if err != nil {
		t.Fatalf("ReplaceAll returned error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_ReplaceAll_MissingTable(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)
	ds := derivedDataset(t, testRecord(workforce.GenderFemale, 500000, testAsOf))

	mock.ExpectExec(regexp.QuoteMeta(`TRUNCATE TABLE employees`)).
		WillReturnError(&pgconn.PgError{Code: undefinedTableCode, Message: `relation "employees" does not exist`})

	if _, err := repo.ReplaceAll(context.Background(), ds); !errors.Is(err, ErrSchemaMissing) {
		t.Fatalf("expected ErrSchemaMissing, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_MeanSalaryByGenderAndTenureBracket(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	rows := pgxmock.NewRows([]string{"gender", "tenure_group", "employees", "mean_salary"}).
		AddRow("female", "0-5", int64(3), int64(612345)).
		AddRow("female", "6-10", int64(1), int64(900000)).
		AddRow("male", "0-5", int64(2), int64(550050))

	mock.ExpectQuery(regexp.QuoteMeta(meanSalaryByGenderAndTenureQuery)).
		WillReturnRows(rows)

	got, err := repo.MeanSalaryByGenderAndTenureBracket(context.Background())
	if err != nil {
		t.Fatalf("MeanSalaryByGenderAndTenureBracket returned error: %v", err)
	}

	want := []workforce.GenderTenureMean{
		{Gender: workforce.GenderFemale, Tenure: workforce.TenureBracket0to5, Count: 3, Mean: 612345},
		{Gender: workforce.GenderFemale, Tenure: workforce.TenureBracket6to10, Count: 1, Mean: 900000},
		{Gender: workforce.GenderMale, Tenure: workforce.TenureBracket0to5, Count: 2, Mean: 550050},
	}
	if err := workforce.CompareGenderTenure(want, got); err != nil {
		t.Fatalf("unexpected result: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_MeanSalary_UnknownBracket(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	rows := pgxmock.NewRows([]string{"gender", "tenure_group", "employees", "mean_salary"}).
		AddRow("female", "5-7", int64(1), int64(500000))
	mock.ExpectQuery(regexp.QuoteMeta(meanSalaryByGenderAndTenureQuery)).
		WillReturnRows(rows)

	if _, err := repo.MeanSalaryByGenderAndTenureBracket(context.Background()); !errors.Is(err, workforce.ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
}

func TestTranslateEmployeePgError(t *testing.T) {
	t.Parallel()

	if translateEmployeePgError(nil) != nil {
		t.Fatal("expected nil for nil error")
	}

	checkErr := &pgconn.PgError{Code: employeeCheckViolationCode, Message: "salary out of range"}
	if !errors.Is(translateEmployeePgError(checkErr), workforce.ErrInvalidRecord) {
		t.Fatal("expected check violation to map to ErrInvalidRecord")
	}

	uniqueErr := &pgconn.PgError{Code: employeeUniqueViolationCode}
	if !errors.Is(translateEmployeePgError(uniqueErr), workforce.ErrInvalidRecord) {
		t.Fatal("expected unique violation to map to ErrInvalidRecord")
	}

	other := errors.New("other")
	if translateEmployeePgError(other) != other {
		t.Fatal("unexpected translation for generic error")
	}
}

func TestEmployeeRepository_CountWithinReadOnlyTransaction(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)
	tm := pgdb.NewTransactionManager(mock)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadOnly})
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM employees`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(500)))
	mock.ExpectCommit()

	var n int64
	err = tm.WithinReadOnly(context.Background(), func(ctx context.Context) error {
		var err error
		n, err = repo.Count(ctx)
		return err
	})
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if n != 500 {
		t.Fatalf("expected 500 rows, got %d", n)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
