package xlsxexport

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ogurasousui/codex-workforce-synth/internal/core/workforce"
	"github.com/xuri/excelize/v2"
)

// SheetName は出力するシート名です。
const SheetName = "employees"

const (
	dateNumFmt  = "yyyy-mm-dd"
	moneyNumFmt = 2 // 0.00
)

// Writer はデータセットを XLSX ファイルへ書き出します。
type Writer struct {
	path string
}

// New は path へ書き出す Writer を生成します。
func New(path string) *Writer {
	return &Writer{path: path}
}

// Name は出力先の識別名です。
func (w *Writer) Name() string {
	return "xlsx"
}

// Export はファイルを作成 (既存なら上書き) してデータセットを書き出します。
func (w *Writer) Export(ds *workforce.Dataset) error {
	if w.path == "" {
		return fmt.Errorf("xlsxexport: path is required: %w", workforce.ErrConfiguration)
	}
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("xlsxexport: create dir: %w", err)
		}
	}

	f, err := build(ds)
	if err != nil {
		return err
	}

	if err := f.SaveAs(w.path); err != nil {
		return errors.Join(fmt.Errorf("xlsxexport: save: %w", err), f.Close())
	}
	return f.Close()
}

// Write はワークブックを out に書き出します。
func Write(out io.Writer, ds *workforce.Dataset) error {
	f, err := build(ds)
	if err != nil {
		return err
	}
	if err := f.Write(out); err != nil {
		return errors.Join(fmt.Errorf("xlsxexport: write: %w", err), f.Close())
	}
	return f.Close()
}

// build は 1 行目をヘッダーとし、列型に応じた型付きセルでシートを埋めます。
func build(ds *workforce.Dataset) (*excelize.File, error) {
	if ds == nil {
		return nil, fmt.Errorf("xlsxexport: dataset is required: %w", workforce.ErrConfiguration)
	}

	f := excelize.NewFile()
	if err := fill(f, ds); err != nil {
		return nil, errors.Join(err, f.Close())
	}
	return f, nil
}

func fill(f *excelize.File, ds *workforce.Dataset) error {
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("xlsxexport: rename sheet: %w", err)
	}

	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: ptr(dateNumFmt)})
	if err != nil {
		return fmt.Errorf("xlsxexport: date style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: moneyNumFmt})
	if err != nil {
		return fmt.Errorf("xlsxexport: money style: %w", err)
	}

	cols := ds.Columns()
	for j, c := range cols {
		if err := setCell(f, j+1, 1, c.Name, 0); err != nil {
			return err
		}
	}

	for i := 0; i < ds.Len(); i++ {
		row := ds.Row(i)
		for j, v := range row {
			var (
				value any = v
				style int
			)
			switch cols[j].Type {
			case workforce.ColumnDate:
				style = dateStyle
			case workforce.ColumnMoney:
				m, ok := v.(workforce.Money)
				if !ok {
					return fmt.Errorf("xlsxexport: column %s: unexpected %T", cols[j].Name, v)
				}
				value = m.Float64()
				style = moneyStyle
			}
			if err := setCell(f, j+1, i+2, value, style); err != nil {
				return err
			}
		}
	}

	return nil
}

func setCell(f *excelize.File, col, row int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("xlsxexport: cell name: %w", err)
	}
	if err := f.SetCellValue(SheetName, cell, value); err != nil {
		return fmt.Errorf("xlsxexport: set %s: %w", cell, err)
	}
	if style != 0 {
		if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
			return fmt.Errorf("xlsxexport: style %s: %w", cell, err)
		}
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
