package xlsxexport

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ogurasousui/codex-workforce-synth/internal/core/workforce"
	"github.com/xuri/excelize/v2"
)

var testAsOf = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func testDataset(t *testing.T) *workforce.Dataset {
	t.Helper()

	ds := &workforce.Dataset{
		Seed:        42,
		GeneratedOn: testAsOf,
		Records: []workforce.Record{{
			ID:              "5f0c6f43-8c2a-4a59-9d0b-6b1de4a5f0aa",
			FirstName:       "Piotr",
			LastName:        "Kowalski",
			Gender:          workforce.GenderMale,
			PESEL:           "44051401359",
			Address:         "ul. Polna 12, 00-950 Warszawa",
			Country:         "Polska",
			City:            "Warszawa",
			PostalCode:      "00-950",
			JobTitle:        "Programista",
			InsuranceNumber: "1234563218",
			Email:           "piotr.kowalski@example.com",
			Phone:           "+48 512-345-678",
			CardNumber:      "4000000000000002",
			Login:           "pkowalski7",
			Password:        "Secret123!",
			BirthDate:       time.Date(1979, time.December, 31, 0, 0, 0, 0, time.UTC),
			HireDate:        time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC),
			Salary:          1234567,
			Disability:      workforce.DisabilityNone,
		}},
	}
	if err := workforce.Derive(ds, testAsOf); err != nil {
		t.Fatalf("Derive returned error: %v", err)
	}
	return ds
}

func TestWrite_SheetAndCells(t *testing.T) {
	t.Parallel()

	ds := testDataset(t)

	var buf bytes.Buffer
	if err := Write(&buf, ds); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != SheetName {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header and one row, got %d", len(rows))
	}
	for i, c := range ds.Columns() {
		if rows[0][i] != c.Name {
			t.Errorf("header[%d] = %s, want %s", i, rows[0][i], c.Name)
		}
	}

	salaryCell, _ := excelize.CoordinatesToCellName(19, 2)
	raw, err := f.GetCellValue(SheetName, salaryCell, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetCellValue returned error: %v", err)
	}
	if raw != "12345.67" {
		t.Errorf("expected numeric salary 12345.67, got %q", raw)
	}

	hireCell, _ := excelize.CoordinatesToCellName(18, 2)
	hire, err := f.GetCellValue(SheetName, hireCell)
	if err != nil {
		t.Fatalf("GetCellValue returned error: %v", err)
	}
	if hire != "2020-06-01" {
		t.Errorf("expected hire_date formatted as a date, got %q", hire)
	}
	hireStyle, err := f.GetCellStyle(SheetName, hireCell)
	if err != nil || hireStyle == 0 {
		t.Errorf("expected a date style on %s, got %d (%v)", hireCell, hireStyle, err)
	}

	ageCell, _ := excelize.CoordinatesToCellName(21, 2)
	age, err := f.GetCellValue(SheetName, ageCell)
	if err != nil {
		t.Fatalf("GetCellValue returned error: %v", err)
	}
	if age != "45" {
		t.Errorf("expected age 45, got %q", age)
	}
}

func TestWriter_Export(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "employees.xlsx")
	w := New(path)
	if w.Name() != "xlsx" {
		t.Fatalf("unexpected name %s", w.Name())
	}
	if err := w.Export(testDataset(t)); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open exported file: %v", err)
	}
	defer f.Close()

	id, err := f.GetCellValue(SheetName, "A2")
	if err != nil {
		t.Fatalf("GetCellValue returned error: %v", err)
	}
	if id != "5f0c6f43-8c2a-4a59-9d0b-6b1de4a5f0aa" {
		t.Errorf("unexpected id cell %q", id)
	}
}

func TestWriter_Errors(t *testing.T) {
	t.Parallel()

	if err := New("").Export(testDataset(t)); !errors.Is(err, workforce.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if err := Write(&bytes.Buffer{}, nil); !errors.Is(err, workforce.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}
