package bulkupload

import (
	"fmt"
	"strconv"
	"strings"
)

// ProductRow is one validated CSV data line. A row is either fully valid or
// excluded from the result; partially valid rows are never produced.
type ProductRow struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description,omitempty"`
	Price            float64  `json:"price"`
	ComparePrice     *float64 `json:"compare_price,omitempty"`
	Category         string   `json:"category"`
	SKU              string   `json:"sku,omitempty"`
	StockQuantity    int      `json:"stock_quantity"`
	Weight           *float64 `json:"weight,omitempty"`
	Dimensions       string   `json:"dimensions,omitempty"`
	Tags             string   `json:"tags,omitempty"`
	MetaTitle        string   `json:"meta_title,omitempty"`
	MetaDescription  string   `json:"meta_description,omitempty"`
}

// ParseResult aggregates one upload attempt. Errors reference 1-based row
// numbers as they appear in the source file (header = row 1).
type ParseResult struct {
	Success   bool         `json:"success"`
	Rows      []ProductRow `json:"data"`
	Errors    []string     `json:"errors"`
	TotalRows int          `json:"totalRows"`
	ValidRows int          `json:"validRows"`
}

// fieldMapping maps header spellings (lower-cased, trimmed) to canonical
// product fields. Unknown headers are ignored.
var fieldMapping = map[string]string{
	"title":             "title",
	"name":              "title",
	"product_name":      "title",
	"description":       "description",
	"short_description": "short_description",
	"price":             "price",
	"compare_price":     "compare_price",
	"category":          "category",
	"sku":               "sku",
	"stock":             "stock_quantity",
	"stock_quantity":    "stock_quantity",
	"quantity":          "stock_quantity",
	"weight":            "weight",
	"dimensions":        "dimensions",
	"tags":              "tags",
	"meta_title":        "meta_title",
	"meta_description":  "meta_description",
}

var requiredFields = []string{"title", "description", "price", "category", "stock_quantity"}

// ParseLine splits one raw CSV line into fields, honoring double-quoted
// values with "" escaping. Commas inside quotes are literal. An unterminated
// quote absorbs the rest of the line into the open field; the scanner never
// fails.
func ParseLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			result = append(result, current.String())
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}

	result = append(result, current.String())
	return result
}

// ParseProductCSV runs the whole pipeline over one CSV document: header
// mapping, per-row validation and aggregation. Data-quality problems are
// reported in the result, never as errors.
func ParseProductCSV(content string) *ParseResult {
	result := &ParseResult{
		Rows:   []ProductRow{},
		Errors: []string{},
	}

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) < 2 {
		result.Errors = append(result.Errors, "CSV file must contain at least a header row and one data row")
		return result
	}

	headers := ParseLine(lines[0])
	for i, h := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var missing []string
	for _, field := range requiredFields {
		found := false
		for _, header := range headers {
			if fieldMapping[header] == field {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Missing required columns: %s", strings.Join(missing, ", ")))
		return result
	}

	result.TotalRows = len(lines) - 1

	for i := 1; i < len(lines); i++ {
		rowNumber := i + 1
		values := ParseLine(lines[i])

		if len(values) != len(headers) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Row %d: Column count mismatch (expected %d, got %d)", rowNumber, len(headers), len(values)))
			continue
		}

		row, rowErrors := validateRow(headers, values)
		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Row %d: %s", rowNumber, strings.Join(rowErrors, ", ")))
			continue
		}

		result.Rows = append(result.Rows, *row)
		result.ValidRows++
	}

	result.Success = result.ValidRows > 0

	if result.ValidRows == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No valid product data found in CSV file")
	}

	return result
}

// validateRow checks one data row against the mapped headers. All field
// checks run; errors accumulate so a row reports every problem at once.
func validateRow(headers, values []string) (*ProductRow, []string) {
	var row ProductRow
	var errs []string

	for i, header := range headers {
		fieldName, ok := fieldMapping[header]
		if !ok {
			continue
		}
		value := strings.TrimSpace(values[i])

		switch fieldName {
		case "title":
			if value == "" {
				errs = append(errs, "Title is required")
			} else {
				row.Title = value
			}
		case "description":
			if value == "" {
				errs = append(errs, "Description is required")
			} else {
				row.Description = value
			}
		case "price":
			if value != "" {
				num, err := strconv.ParseFloat(value, 64)
				if err != nil || num < 0 {
					errs = append(errs, "price must be a valid positive number")
				} else {
					row.Price = num
				}
			} else {
				errs = append(errs, "Price is required")
			}
		case "compare_price", "weight":
			if value != "" {
				num, err := strconv.ParseFloat(value, 64)
				if err != nil || num < 0 {
					errs = append(errs, fmt.Sprintf("%s must be a valid positive number", fieldName))
				} else if fieldName == "compare_price" {
					row.ComparePrice = &num
				} else {
					row.Weight = &num
				}
			}
		case "stock_quantity":
			if value != "" {
				num, err := strconv.Atoi(value)
				if err != nil || num < 0 {
					errs = append(errs, "Stock quantity must be a valid non-negative integer")
				} else {
					row.StockQuantity = num
				}
			} else {
				row.StockQuantity = 0
			}
		case "category":
			if value == "" {
				errs = append(errs, "Category is required")
			} else {
				row.Category = value
			}
		case "short_description":
			if value != "" {
				row.ShortDescription = value
			}
		case "sku":
			if value != "" {
				row.SKU = value
			}
		case "dimensions":
			if value != "" {
				row.Dimensions = value
			}
		case "tags":
			if value != "" {
				row.Tags = value
			}
		case "meta_title":
			if value != "" {
				row.MetaTitle = value
			}
		case "meta_description":
			if value != "" {
				row.MetaDescription = value
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &row, nil
}
