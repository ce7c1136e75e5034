package bulkupload

import "strings"

var templateHeaders = []string{
	"title",
	"description",
	"short_description",
	"price",
	"compare_price",
	"category",
	"sku",
	"stock_quantity",
	"weight",
	"dimensions",
	"tags",
	"meta_title",
	"meta_description",
}

var templateSampleRows = [][]string{
	{
		"Classic Wooden Frame",
		"Beautiful handcrafted wooden frame perfect for family photos",
		"Handcrafted wooden photo frame",
		"299.99",
		"399.99",
		"Photo Frames",
		"WF-001",
		"25",
		"0.5",
		"20x25x2 cm",
		"wooden,classic,photo,frame",
		"Classic Wooden Frame - Premium Quality",
		"Shop our beautiful classic wooden frames perfect for displaying your precious memories",
	},
	{
		"Modern Metal Frame",
		"Sleek modern metal frame for contemporary artwork",
		"Contemporary metal art frame",
		"399.99",
		"499.99",
		"Art Frames",
		"MF-002",
		"15",
		"0.8",
		"30x40x1 cm",
		"metal,modern,art,frame",
		"Modern Metal Frame - Contemporary Design",
		"Elegant metal frames perfect for modern artwork and photography",
	},
}

// Template returns the downloadable CSV template: the canonical header list
// followed by two illustrative sample rows.
func Template() string {
	lines := []string{strings.Join(templateHeaders, ",")}
	for _, row := range templateSampleRows {
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n")
}
