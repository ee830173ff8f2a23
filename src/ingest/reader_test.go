package ingest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

const sampleCSV = `Writing Broker Name,Payment Amount,Effective Date
Alice Adams,100.50,2024-06-01
Bob Brown,200,2024-06-02
`

func TestReadCSV(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if got := rows[0].Get("Writing Broker Name"); got != "Alice Adams" {
		t.Errorf("row 0 broker = %q, want Alice Adams", got)
	}
	if got := rows[1].Get("Payment Amount"); got != "200" {
		t.Errorf("row 1 amount = %q, want 200", got)
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	input := "A,B,C\nonly-a\n1,2,3,4\n"
	rows, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Get("A") != "only-a" || rows[0].Get("B") != "" {
		t.Errorf("short row not padded with absent columns: %v", rows[0])
	}
	if rows[1].Get("C") != "3" {
		t.Errorf("long row lost in-header cells: %v", rows[1])
	}
	if _, ok := rows[1][""]; ok {
		t.Errorf("overflow cell kept under empty header: %v", rows[1])
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("A,B\n"))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	data := [][]any{
		{"Producer Name", "Amount", "Member ID"},
		{"Dana Diaz", "42.10", "M100"},
		{"Eli Evans", "7", "M200"},
	}
	for i, row := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	rows, err := ReadXLSX(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadXLSX() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Get("Producer Name") != "Dana Diaz" || rows[0].Get("Amount") != "42.10" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1].Get("Member ID") != "M200" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestReadTabularDispatch(t *testing.T) {
	if _, err := ReadTabular("report.csv", strings.NewReader(sampleCSV)); err != nil {
		t.Errorf("ReadTabular(.csv) error = %v", err)
	}
	if _, err := ReadTabular("report.pdf", strings.NewReader("x")); err == nil {
		t.Error("ReadTabular(.pdf) did not reject unsupported extension")
	}
	if _, err := ReadTabular("report.xlsx", strings.NewReader("not a zip")); err == nil {
		t.Error("ReadTabular(.xlsx) accepted a non-Excel stream")
	}
}
