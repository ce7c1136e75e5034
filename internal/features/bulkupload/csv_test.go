package bulkupload

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain fields",
			line: "a,b,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "quoted comma",
			line: `"Frame, Deluxe",A nice frame,29.99`,
			want: []string{"Frame, Deluxe", "A nice frame", "29.99"},
		},
		{
			name: "escaped quotes",
			line: `"He said ""hello""",b`,
			want: []string{`He said "hello"`, "b"},
		},
		{
			name: "empty fields",
			line: "a,,c,",
			want: []string{"a", "", "c", ""},
		},
		{
			name: "single field",
			line: "only",
			want: []string{"only"},
		},
		{
			name: "empty line is one empty field",
			line: "",
			want: []string{""},
		},
		{
			name: "unterminated quote absorbs rest of line",
			line: `"open,field,rest`,
			want: []string{"open,field,rest"},
		},
		{
			name: "quote in middle of field",
			line: `ab"cd,ef",g`,
			want: []string{"abcd,ef", "g"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLine(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLineQuotingRoundTrip(t *testing.T) {
	values := []string{
		"plain",
		"has,comma",
		`has"quote`,
		`both, "and" more`,
		`""`,
		"trailing,",
	}

	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			encoded := `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
			got := ParseLine(encoded + ",next")
			if len(got) != 2 {
				t.Fatalf("expected 2 fields, got %d: %#v", len(got), got)
			}
			if got[0] != v {
				t.Errorf("round trip of %q gave %q", v, got[0])
			}
		})
	}
}

const validHeader = "title,description,price,category,stock_quantity"

func TestParseProductCSVSingleValidRow(t *testing.T) {
	csv := validHeader + "\n" + `"Frame, Deluxe",A nice frame,29.99,Photo Frames,10`

	result := ParseProductCSV(csv)

	if !result.Success {
		t.Fatalf("expected success, errors: %v", result.Errors)
	}
	if result.TotalRows != 1 || result.ValidRows != 1 || len(result.Rows) != 1 {
		t.Fatalf("unexpected counts: total=%d valid=%d rows=%d", result.TotalRows, result.ValidRows, len(result.Rows))
	}

	row := result.Rows[0]
	if row.Title != "Frame, Deluxe" {
		t.Errorf("title = %q", row.Title)
	}
	if row.Price != 29.99 {
		t.Errorf("price = %v", row.Price)
	}
	if row.StockQuantity != 10 {
		t.Errorf("stock = %d", row.StockQuantity)
	}
	if row.Category != "Photo Frames" {
		t.Errorf("category = %q", row.Category)
	}
}

func TestParseProductCSVHeaderSynonyms(t *testing.T) {
	csv := "Name,Description,Price,Category,Stock\nWooden Frame,Nice,10.50,Frames,3"

	result := ParseProductCSV(csv)

	if !result.Success {
		t.Fatalf("expected success with synonym headers, errors: %v", result.Errors)
	}
	row := result.Rows[0]
	if row.Title != "Wooden Frame" {
		t.Errorf("name header should map to title, got %q", row.Title)
	}
	if row.StockQuantity != 3 {
		t.Errorf("stock header should map to stock_quantity, got %d", row.StockQuantity)
	}
}

func TestParseProductCSVMissingRequiredColumns(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		missing string
	}{
		{"no category", "title,description,price,stock_quantity", "category"},
		{"no price", "title,description,category,stock_quantity", "price"},
		{"no title", "description,price,category,stock_quantity", "title"},
		{"several missing", "title,description", "price, category, stock_quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csv := tt.header + "\nA,B,1,C,2"
			result := ParseProductCSV(csv)

			if result.Success {
				t.Fatal("expected failure")
			}
			if len(result.Rows) != 0 {
				t.Errorf("expected zero rows, got %d", len(result.Rows))
			}
			if len(result.Errors) != 1 {
				t.Fatalf("expected one aggregated error, got %v", result.Errors)
			}
			if !strings.Contains(result.Errors[0], tt.missing) {
				t.Errorf("error %q should mention %q", result.Errors[0], tt.missing)
			}
		})
	}
}

func TestParseProductCSVRowErrors(t *testing.T) {
	tests := []struct {
		name      string
		row       string
		wantInErr string
	}{
		{"negative price", "A,B,-5,C,1", "price must be a valid positive number"},
		{"non-numeric price", "A,B,abc,C,1", "price must be a valid positive number"},
		{"empty price", "A,B,,C,1", "Price is required"},
		{"negative stock", "A,B,5,C,-1", "Stock quantity must be a valid non-negative integer"},
		{"non-integer stock", "A,B,5,C,2.5", "Stock quantity must be a valid non-negative integer"},
		{"missing title", ",B,5,C,1", "Title is required"},
		{"missing description", "A,,5,C,1", "Description is required"},
		{"missing category", "A,B,5,,1", "Category is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csv := validHeader + "\n" + tt.row
			result := ParseProductCSV(csv)

			if result.ValidRows != 0 {
				t.Fatalf("row should be rejected, got %d valid rows", result.ValidRows)
			}
			if len(result.Errors) != 1 {
				t.Fatalf("expected one error, got %v", result.Errors)
			}
			if !strings.HasPrefix(result.Errors[0], "Row 2: ") {
				t.Errorf("error should reference row 2, got %q", result.Errors[0])
			}
			if !strings.Contains(result.Errors[0], tt.wantInErr) {
				t.Errorf("error %q should contain %q", result.Errors[0], tt.wantInErr)
			}
		})
	}
}

func TestParseProductCSVErrorsAccumulatePerRow(t *testing.T) {
	// title, price and stock are all bad; one error entry names all three
	csv := validHeader + "\n,B,abc,C,-1"

	result := ParseProductCSV(csv)

	if len(result.Errors) != 1 {
		t.Fatalf("expected a single aggregated error, got %v", result.Errors)
	}
	for _, want := range []string{"Title is required", "price must be a valid positive number", "Stock quantity must be a valid non-negative integer"} {
		if !strings.Contains(result.Errors[0], want) {
			t.Errorf("aggregated error %q missing %q", result.Errors[0], want)
		}
	}
}

func TestParseProductCSVColumnCountMismatch(t *testing.T) {
	csv := validHeader + "\nA,B,5,C\nD,E,6,F,2"

	result := ParseProductCSV(csv)

	if result.TotalRows != 2 || result.ValidRows != 1 {
		t.Fatalf("counts: total=%d valid=%d", result.TotalRows, result.ValidRows)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("errors: %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "Row 2: Column count mismatch (expected 5, got 4)") {
		t.Errorf("unexpected error: %q", result.Errors[0])
	}
}

func TestParseProductCSVRowNumbering(t *testing.T) {
	// Scenario: two data rows, second has a negative price; the error must
	// cite row 3 (header is row 1).
	csv := validHeader + "\nGood,Desc,10,Frames,1\nBad,Desc,-5,Frames,1"

	result := ParseProductCSV(csv)

	if result.TotalRows != 2 || result.ValidRows != 1 {
		t.Fatalf("counts: total=%d valid=%d", result.TotalRows, result.ValidRows)
	}
	if len(result.Errors) != 1 || !strings.HasPrefix(result.Errors[0], "Row 3: ") {
		t.Errorf("expected one error for row 3, got %v", result.Errors)
	}
}

func TestParseProductCSVBlankLinesSkipped(t *testing.T) {
	csv := validHeader + "\n\nGood,Desc,10,Frames,1\n   \nBad,Desc,-1,Frames,1\n"

	result := ParseProductCSV(csv)

	if result.TotalRows != 2 {
		t.Errorf("blank lines must not count, total=%d", result.TotalRows)
	}
	// Bad row is the second non-blank data line, so row 3
	if len(result.Errors) != 1 || !strings.HasPrefix(result.Errors[0], "Row 3: ") {
		t.Errorf("expected error for row 3, got %v", result.Errors)
	}
}

func TestParseProductCSVOptionalFieldsAndDefaults(t *testing.T) {
	header := "title,description,price,compare_price,category,sku,stock_quantity,weight,tags,meta_title"
	csv := header + "\nFrame,Desc,10,15.5,Frames,SKU-1,,0.5,a b,Custom Meta"

	result := ParseProductCSV(csv)

	if !result.Success {
		t.Fatalf("errors: %v", result.Errors)
	}
	row := result.Rows[0]
	if row.StockQuantity != 0 {
		t.Errorf("empty stock should default to 0, got %d", row.StockQuantity)
	}
	if row.ComparePrice == nil || *row.ComparePrice != 15.5 {
		t.Errorf("compare_price = %v", row.ComparePrice)
	}
	if row.Weight == nil || *row.Weight != 0.5 {
		t.Errorf("weight = %v", row.Weight)
	}
	if row.SKU != "SKU-1" || row.Tags != "a b" || row.MetaTitle != "Custom Meta" {
		t.Errorf("optional fields: sku=%q tags=%q meta_title=%q", row.SKU, row.Tags, row.MetaTitle)
	}
	if row.MetaDescription != "" || row.Dimensions != "" || row.ShortDescription != "" {
		t.Errorf("absent optional fields should stay empty")
	}
}

func TestParseProductCSVOptionalNumericInvalid(t *testing.T) {
	header := "title,description,price,compare_price,category,stock_quantity,weight"
	csv := header + "\nFrame,Desc,10,not-a-number,Frames,1,-2"

	result := ParseProductCSV(csv)

	if result.ValidRows != 0 {
		t.Fatal("row with invalid optional numerics should be rejected")
	}
	if !strings.Contains(result.Errors[0], "compare_price must be a valid positive number") {
		t.Errorf("missing compare_price error: %q", result.Errors[0])
	}
	if !strings.Contains(result.Errors[0], "weight must be a valid positive number") {
		t.Errorf("missing weight error: %q", result.Errors[0])
	}
}

func TestParseProductCSVNoValidRows(t *testing.T) {
	t.Run("header only", func(t *testing.T) {
		result := ParseProductCSV(validHeader)
		if result.Success {
			t.Fatal("expected failure")
		}
		if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "at least a header row and one data row") {
			t.Errorf("errors: %v", result.Errors)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		result := ParseProductCSV("")
		if result.Success || result.TotalRows != 0 {
			t.Errorf("success=%v total=%d", result.Success, result.TotalRows)
		}
	})

	t.Run("all rows invalid still reports row errors", func(t *testing.T) {
		result := ParseProductCSV(validHeader + "\n,B,5,C,1")
		if result.Success {
			t.Fatal("expected failure")
		}
		if len(result.Errors) != 1 {
			t.Errorf("errors: %v", result.Errors)
		}
	})
}

func TestParseProductCSVIdempotent(t *testing.T) {
	csv := validHeader + "\nGood,Desc,10,Frames,1\nBad,Desc,-5,Frames,1\n\"Quoted, Title\",D,3,Frames,0"

	first := ParseProductCSV(csv)
	second := ParseProductCSV(csv)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("parsing is not deterministic:\nfirst:  %#v\nsecond: %#v", first, second)
	}
}

func TestParseProductCSVRowCountInvariant(t *testing.T) {
	rows := []string{
		"Good1,D,1,C,1",
		",D,1,C,1",
		"Good2,D,2,C,0",
		"Bad,D,-1,C,1",
		"Short,row",
	}
	csv := validHeader + "\n" + strings.Join(rows, "\n")

	result := ParseProductCSV(csv)

	if result.ValidRows != len(result.Rows) {
		t.Errorf("validRows=%d but |rows|=%d", result.ValidRows, len(result.Rows))
	}
	dropped := 0
	for _, e := range result.Errors {
		if strings.HasPrefix(e, "Row ") {
			dropped++
		}
	}
	if result.ValidRows+dropped != result.TotalRows {
		t.Errorf("validRows(%d) + dropped(%d) != totalRows(%d)", result.ValidRows, dropped, result.TotalRows)
	}
}

func TestParseProductCSVPreservesRowOrder(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(validHeader)
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&sb, "\nProduct %d,Desc,%d,Frames,1", i, i)
	}

	result := ParseProductCSV(sb.String())

	if len(result.Rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(result.Rows))
	}
	for i, row := range result.Rows {
		want := fmt.Sprintf("Product %d", i+1)
		if row.Title != want {
			t.Errorf("row %d title = %q, want %q", i, row.Title, want)
		}
	}
}

func TestParseProductCSVUnrecognizedHeadersIgnored(t *testing.T) {
	csv := "title,description,price,category,stock_quantity,internal_notes\nA,B,1,C,1,ignore me"

	result := ParseProductCSV(csv)

	if !result.Success {
		t.Fatalf("unknown headers must not fail parsing: %v", result.Errors)
	}
}
