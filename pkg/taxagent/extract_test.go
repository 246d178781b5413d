package taxagent

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ukaji3/taxagent-go/pkg/taxagent/parser"
	"github.com/xuri/excelize/v2"
)

var fixedNow = func() time.Time {
	return time.Date(2024, time.February, 1, 8, 0, 0, 0, time.Local)
}

// figureValue is the value written at a category row and month of the
// given block.
func figureValue(block, category, month int) float64 {
	return float64((block+1)*1000+(category+1)*100+month+1) + 0.25
}

// writeWorkbook saves a workbook with n blocks in the default layout and
// returns its path. mutate may adjust cells before saving.
func writeWorkbook(t *testing.T, n int, mutate func(f *excelize.File, sheet string)) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	l := parser.DefaultLayout()
	set := func(row, col int, v any) {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			t.Fatal(err)
		}
	}

	set(1, 1, "Сведения о доходах за 2023 год")
	for b := 0; b < n; b++ {
		hdr := l.FirstRow + b*l.BlockHeight
		set(hdr, l.NumberCol, b+1)
		set(hdr, l.NameCol, fmt.Sprintf("Сидоров%d Сидор Сидорович", b+1))
		set(hdr, l.PassportCol, "MP7654321")
		set(hdr, l.PersonalNumberCol, fmt.Sprintf("4010190B%03dPB2", b+1))
		set(hdr, l.AddressCol, "г. Гомель")
		for c := 0; c < parser.CategoryRows; c++ {
			for m := 0; m < 12; m++ {
				set(hdr+1+c, l.FirstMonthCol+m, figureValue(b, c, m))
			}
		}
	}
	if mutate != nil {
		mutate(f, sheet)
	}

	path := filepath.Join(t.TempDir(), "доход2023.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	return path
}

func testOptions(t *testing.T) Options {
	opts := DefaultOptions()
	opts.Config.OutputDir = t.TempDir()
	opts.Now = fixedNow
	return opts
}

func readDoc(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Invalid JSON in %s: %v", path, err)
	}
	return doc
}

func firstAgent(t *testing.T, doc map[string]any) map[string]any {
	t.Helper()
	agents := doc["pckagent"].(map[string]any)["docagent"].([]any)
	if len(agents) == 0 {
		t.Fatal("Expected at least one docagent")
	}
	return agents[0].(map[string]any)
}

func TestConvertSingleBlock(t *testing.T) {
	path := writeWorkbook(t, 1, nil)
	opts := testOptions(t)

	res, err := Convert(path, opts)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if res.Persons != 1 || len(res.Batches) != 1 {
		t.Fatalf("Unexpected result %+v", res)
	}
	wantName := filepath.Join(opts.Config.OutputDir, "D700069297_2024_1_0_20240201080000.json")
	if res.Batches[0].Path != wantName {
		t.Errorf("Path = %q, expected %q", res.Batches[0].Path, wantName)
	}

	agent := firstAgent(t, readDoc(t, wantName))
	tar4 := agent["tar4"].([]any)
	nsum := tar4[0].(map[string]any)["tar4sum"].([]any)[0].(map[string]any)["nsum"]
	if nsum != figureValue(0, 0, 0) {
		t.Errorf("tar4[0].tar4sum[0].nsum = %v, expected %v", nsum, figureValue(0, 0, 0))
	}

	info := agent["docagentinfo"].(map[string]any)
	if info["vfam"] != "Сидоров1" || info["vname"] != "Сидор" || info["votch"] != "Сидорович" {
		t.Errorf("Unexpected name fields %v", info)
	}
	if info["cln"] != "4010190B001PB2" {
		t.Errorf("Unexpected cln %v", info["cln"])
	}

	// Tax row: 1201.25 through 1212.25
	var wantTax float64
	for m := 0; m < 12; m++ {
		wantTax += figureValue(0, 1, m)
	}
	if agent["ntsumcalcincome"] != wantTax {
		t.Errorf("ntsumcalcincome = %v, expected %v", agent["ntsumcalcincome"], wantTax)
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	path := writeWorkbook(t, 3, nil)

	var outputs [][]byte
	for i := 0; i < 2; i++ {
		res, err := Convert(path, testOptions(t))
		if err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		data, err := os.ReadFile(res.Batches[0].Path)
		if err != nil {
			t.Fatal(err)
		}
		outputs = append(outputs, data)
	}
	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Error("Expected identical output for identical input")
	}
}

func TestConvertMissingCell(t *testing.T) {
	path := writeWorkbook(t, 1, func(f *excelize.File, sheet string) {
		// Income, March.
		f.SetCellValue(sheet, "D6", nil)
	})

	res, err := Convert(path, testOptions(t))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	agent := firstAgent(t, readDoc(t, res.Batches[0].Path))
	march := agent["tar4"].([]any)[2].(map[string]any)
	if v, ok := march["nsummonth"].(float64); !ok || v != 0 {
		t.Errorf("Expected numeric 0 for empty cell, got %#v", march["nsummonth"])
	}
}

func TestConvertBatches(t *testing.T) {
	path := writeWorkbook(t, 5, nil)
	opts := testOptions(t)
	opts.Config.BatchSize = 2

	res, err := Convert(path, opts)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if len(res.Batches) != 3 {
		t.Fatalf("Expected 3 batches, got %d", len(res.Batches))
	}
	entries, err := os.ReadDir(opts.Config.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 files, got %d", len(entries))
	}
	last := readDoc(t, res.Batches[2].Path)
	if agents := last["pckagent"].(map[string]any)["docagent"].([]any); len(agents) != 1 {
		t.Errorf("Expected 1 docagent in last part, got %d", len(agents))
	}
}

func TestConvertDryRun(t *testing.T) {
	path := writeWorkbook(t, 2, nil)
	opts := testOptions(t)
	opts.DryRun = true

	res, err := Convert(path, opts)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if res.Persons != 2 || len(res.Batches) != 1 {
		t.Errorf("Unexpected result %+v", res)
	}
	entries, _ := os.ReadDir(opts.Config.OutputDir)
	if len(entries) != 0 {
		t.Errorf("Expected no files in dry run, got %d", len(entries))
	}
}

func TestConvertMissingOutputDir(t *testing.T) {
	path := writeWorkbook(t, 1, nil)
	opts := testOptions(t)
	opts.Config.OutputDir = filepath.Join(opts.Config.OutputDir, "gen_json")

	_, err := Convert(path, opts)
	var ce *ConvertError
	if !errors.As(err, &ce) || ce.Stage != "write" {
		t.Fatalf("Expected write ConvertError, got %v", err)
	}
}

func TestConvertStructuralMismatch(t *testing.T) {
	path := writeWorkbook(t, 2, func(f *excelize.File, sheet string) {
		f.SetCellValue(sheet, "E16", "итого")
	})

	_, err := Convert(path, testOptions(t))
	if !errors.Is(err, parser.ErrStructuralMismatch) {
		t.Fatalf("Expected ErrStructuralMismatch, got %v", err)
	}
	var le *parser.LayoutError
	if !errors.As(err, &le) || le.Row != 16 || le.Col != 5 {
		t.Errorf("Expected error at E16, got %v", err)
	}
}

func TestExtractFileNotFound(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestExtractInvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("not a workbook"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Extract(path, DefaultOptions())
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
}
