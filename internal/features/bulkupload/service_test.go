package bulkupload

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go-frameshop/internal/features/category"
	"go-frameshop/internal/features/product"

	"go.uber.org/zap"
)

type fakeProductRepo struct {
	inserted  []*product.Product
	nextID    int
	insertErr error
}

func (f *fakeProductRepo) List(ctx context.Context, filter product.ListFilter) ([]product.Product, int, error) {
	return nil, 0, nil
}

func (f *fakeProductRepo) Get(ctx context.Context, id int) (*product.Product, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProductRepo) Insert(ctx context.Context, p *product.Product) (int, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.nextID++
	p.ID = f.nextID
	f.inserted = append(f.inserted, p)
	return p.ID, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *product.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, id int) error             { return nil }

func (f *fakeProductRepo) ExistsByTitleOrSKU(ctx context.Context, title, sku string) (bool, error) {
	for _, p := range f.inserted {
		if p.Title == title {
			return true, nil
		}
		if sku != "" && p.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}

type fakeCategoryRepo struct {
	ids     map[string]int
	nextID  int
	created []string
	err     error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{ids: map[string]int{}}
}

func (f *fakeCategoryRepo) ListWithCounts(ctx context.Context) ([]category.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) Get(ctx context.Context, id int) (*category.Category, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c *category.Category) (int, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeCategoryRepo) Update(ctx context.Context, c *category.Category) error { return nil }
func (f *fakeCategoryRepo) Delete(ctx context.Context, id int) error               { return nil }

func (f *fakeCategoryRepo) FindOrCreate(ctx context.Context, name string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	key := strings.ToLower(name)
	if id, ok := f.ids[key]; ok {
		return id, nil
	}
	f.nextID++
	f.ids[key] = f.nextID
	f.created = append(f.created, name)
	return f.nextID, nil
}

type fakeHistoryRepo struct {
	saved []*UploadRecord
	err   error
}

func (f *fakeHistoryRepo) Save(ctx context.Context, record *UploadRecord) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, record)
	return nil
}

func (f *fakeHistoryRepo) Recent(ctx context.Context, limit int64) ([]UploadRecord, error) {
	var out []UploadRecord
	for i := len(f.saved) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, *f.saved[i])
	}
	return out, nil
}

func newTestService() (*BulkUploadServiceImpl, *fakeProductRepo, *fakeCategoryRepo, *fakeHistoryRepo) {
	products := &fakeProductRepo{}
	categories := newFakeCategoryRepo()
	history := &fakeHistoryRepo{}
	svc := &BulkUploadServiceImpl{
		ProductRepo:  products,
		CategoryRepo: categories,
		HistoryRepo:  history,
		Logger:       zap.NewNop(),
	}
	return svc, products, categories, history
}

func row(title, sku string) ProductRow {
	return ProductRow{
		Title:       title,
		Description: "desc",
		Price:       9.99,
		Category:    "Frames",
		SKU:         sku,
	}
}

func TestIngestAllValid(t *testing.T) {
	svc, products, categories, _ := newTestService()

	rows := []ProductRow{row("A", "SKU-A"), row("B", "SKU-B"), row("C", "")}
	outcome := svc.Ingest(context.Background(), rows)

	if outcome.Total != 3 || outcome.Success != 3 || outcome.Failed != 0 {
		t.Fatalf("outcome: %+v", outcome)
	}
	if len(outcome.Errors) != 0 {
		t.Errorf("unexpected errors: %v", outcome.Errors)
	}
	if len(products.inserted) != 3 {
		t.Errorf("inserted %d products", len(products.inserted))
	}
	// all three rows share one category, created once
	if len(categories.created) != 1 || categories.created[0] != "Frames" {
		t.Errorf("created categories: %v", categories.created)
	}
	for _, p := range products.inserted {
		if p.CategoryID == nil || *p.CategoryID != 1 {
			t.Errorf("product %q category id = %v", p.Title, p.CategoryID)
		}
	}
}

func TestIngestRowFailureDoesNotAbortBatch(t *testing.T) {
	svc, products, _, _ := newTestService()

	rows := []ProductRow{
		row("First", "SKU-1"),
		row("First", "SKU-2"), // duplicate title
		row("Third", "SKU-3"),
	}
	outcome := svc.Ingest(context.Background(), rows)

	if outcome.Total != 3 || outcome.Success != 2 || outcome.Failed != 1 {
		t.Fatalf("outcome: %+v", outcome)
	}
	if len(outcome.Errors) != 1 || !strings.HasPrefix(outcome.Errors[0], "Product 2: ") {
		t.Errorf("errors: %v", outcome.Errors)
	}
	if len(products.inserted) != 2 {
		t.Errorf("inserted %d, want 2", len(products.inserted))
	}
	if products.inserted[1].Title != "Third" {
		t.Errorf("rows after the failure must still land, got %q", products.inserted[1].Title)
	}
}

func TestIngestDuplicateSKU(t *testing.T) {
	svc, products, _, _ := newTestService()

	products.inserted = append(products.inserted, &product.Product{Title: "Existing", SKU: "WF-001"})

	outcome := svc.Ingest(context.Background(), []ProductRow{row("Brand New", "WF-001")})

	if outcome.Total != 1 || outcome.Success != 0 || outcome.Failed != 1 {
		t.Fatalf("outcome: %+v", outcome)
	}
	want := `Product 1: Product with title "Brand New" or SKU "WF-001" already exists`
	if len(outcome.Errors) != 1 || outcome.Errors[0] != want {
		t.Errorf("errors = %v, want [%s]", outcome.Errors, want)
	}
}

func TestIngestDuplicateTitleWithoutSKU(t *testing.T) {
	svc, products, _, _ := newTestService()

	products.inserted = append(products.inserted, &product.Product{Title: "Taken"})

	outcome := svc.Ingest(context.Background(), []ProductRow{row("Taken", "")})

	want := `Product 1: Product with title "Taken" already exists`
	if len(outcome.Errors) != 1 || outcome.Errors[0] != want {
		t.Errorf("errors = %v, want [%s]", outcome.Errors, want)
	}
}

func TestIngestCategoryResolutionFailure(t *testing.T) {
	svc, products, categories, _ := newTestService()
	categories.err = errors.New("connection refused")

	outcome := svc.Ingest(context.Background(), []ProductRow{row("A", "")})

	if outcome.Failed != 1 || len(products.inserted) != 0 {
		t.Fatalf("outcome: %+v, inserted: %d", outcome, len(products.inserted))
	}
	if !strings.Contains(outcome.Errors[0], `failed to resolve category "Frames"`) {
		t.Errorf("error: %q", outcome.Errors[0])
	}
}

func TestIngestCategoryReusedCaseInsensitively(t *testing.T) {
	svc, _, categories, _ := newTestService()

	rows := []ProductRow{row("A", ""), row("B", "")}
	rows[1].Category = "FRAMES"

	svc.Ingest(context.Background(), rows)

	if len(categories.created) != 1 {
		t.Errorf("case variants must resolve to one category, created: %v", categories.created)
	}
}

func TestIngestCopiesRowFields(t *testing.T) {
	svc, products, _, _ := newTestService()

	compare := 19.99
	weight := 1.5
	r := ProductRow{
		Title:            "Full Frame",
		Description:      "desc",
		ShortDescription: "short",
		Price:            12.5,
		ComparePrice:     &compare,
		Category:         "Frames",
		SKU:              "FF-1",
		StockQuantity:    7,
		Weight:           &weight,
		Dimensions:       "10x8",
		Tags:             "wood classic",
		MetaTitle:        "meta",
		MetaDescription:  "meta desc",
	}

	outcome := svc.Ingest(context.Background(), []ProductRow{r})
	if outcome.Success != 1 {
		t.Fatalf("outcome: %+v", outcome)
	}

	p := products.inserted[0]
	if p.Title != r.Title || p.Price != r.Price || p.StockQuantity != 7 ||
		p.SKU != "FF-1" || p.Dimensions != "10x8" || p.Tags != "wood classic" ||
		p.MetaTitle != "meta" || p.MetaDescription != "meta desc" {
		t.Errorf("inserted product does not match row: %+v", p)
	}
	if p.ComparePrice == nil || *p.ComparePrice != compare {
		t.Errorf("compare price = %v", p.ComparePrice)
	}
	if p.Weight == nil || *p.Weight != weight {
		t.Errorf("weight = %v", p.Weight)
	}
}

func TestIngestEmptyBatch(t *testing.T) {
	svc, _, _, _ := newTestService()

	outcome := svc.Ingest(context.Background(), nil)

	if outcome.Total != 0 || outcome.Success != 0 || outcome.Failed != 0 {
		t.Errorf("outcome: %+v", outcome)
	}
	if outcome.Errors == nil {
		t.Error("errors slice should be non-nil for JSON encoding")
	}
}

func TestValidateSubmitted(t *testing.T) {
	tests := []struct {
		name string
		rows []ProductRow
		want []string
	}{
		{
			name: "valid rows",
			rows: []ProductRow{row("A", ""), row("B", "")},
			want: nil,
		},
		{
			name: "zero price rejected",
			rows: []ProductRow{{Title: "A", Description: "d", Price: 0, Category: "C"}},
			want: []string{"Product 1: Valid price is required"},
		},
		{
			name: "all fields missing",
			rows: []ProductRow{{}},
			want: []string{
				"Product 1: Title is required",
				"Product 1: Description is required",
				"Product 1: Valid price is required",
				"Product 1: Category is required",
			},
		},
		{
			name: "numbering follows position",
			rows: []ProductRow{row("A", ""), {Title: "B", Description: "d", Price: 5}},
			want: []string{"Product 2: Category is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateSubmitted(tt.rows)
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecordUpload(t *testing.T) {
	svc, _, _, history := newTestService()

	outcome := &IngestionOutcome{Total: 5, Success: 3, Failed: 2, Errors: []string{"Product 2: x", "Product 4: y"}}
	svc.RecordUpload(context.Background(), "products.csv", outcome)

	if len(history.saved) != 1 {
		t.Fatalf("saved %d records", len(history.saved))
	}
	rec := history.saved[0]
	if rec.Filename != "products.csv" || rec.Total != 5 || rec.Success != 3 || rec.Failed != 2 {
		t.Errorf("record: %+v", rec)
	}
	if len(rec.Errors) != 2 {
		t.Errorf("record errors: %v", rec.Errors)
	}
}

func TestRecordUploadSwallowsHistoryErrors(t *testing.T) {
	svc, _, _, history := newTestService()
	history.err = errors.New("mongo down")

	// must not panic; the upload already succeeded
	svc.RecordUpload(context.Background(), "f.csv", &IngestionOutcome{Total: 1, Success: 1})
}

func TestRecentUploads(t *testing.T) {
	svc, _, _, history := newTestService()

	for i := 1; i <= 3; i++ {
		history.saved = append(history.saved, &UploadRecord{Filename: fmt.Sprintf("f%d.csv", i)})
	}

	records, err := svc.RecentUploads(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 || records[0].Filename != "f3.csv" {
		t.Errorf("records: %+v", records)
	}
}
