package bulkupload

import (
	"context"
	"fmt"

	"go-frameshop/internal/features/category"
	"go-frameshop/internal/features/product"

	"go.uber.org/zap"
)

// IngestionOutcome reports one bulk-upload batch. Errors reference 1-based
// positions among the submitted rows, not the original file.
type IngestionOutcome struct {
	Total   int      `json:"total"`
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

type BulkUploadService interface {
	// Ingest persists validated rows one by one: category find-or-create,
	// duplicate rejection, insert. No row failure aborts the batch.
	Ingest(ctx context.Context, rows []ProductRow) *IngestionOutcome
	RecordUpload(ctx context.Context, filename string, outcome *IngestionOutcome)
	RecentUploads(ctx context.Context, limit int64) ([]UploadRecord, error)
}

type BulkUploadServiceImpl struct {
	ProductRepo  product.ProductRepository
	CategoryRepo category.CategoryRepository
	HistoryRepo  UploadHistoryRepository
	Logger       *zap.Logger
}

func NewBulkUploadService(
	productRepo product.ProductRepository,
	categoryRepo category.CategoryRepository,
	historyRepo UploadHistoryRepository,
	logger *zap.Logger,
) BulkUploadService {
	return &BulkUploadServiceImpl{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		HistoryRepo:  historyRepo,
		Logger:       logger,
	}
}

// ValidateSubmitted re-checks rows arriving from the preview step. The client
// never resubmits raw CSV, so this guards against hand-crafted payloads.
func ValidateSubmitted(rows []ProductRow) []string {
	var errs []string
	for i, row := range rows {
		if row.Title == "" {
			errs = append(errs, fmt.Sprintf("Product %d: Title is required", i+1))
		}
		if row.Description == "" {
			errs = append(errs, fmt.Sprintf("Product %d: Description is required", i+1))
		}
		if row.Price <= 0 {
			errs = append(errs, fmt.Sprintf("Product %d: Valid price is required", i+1))
		}
		if row.Category == "" {
			errs = append(errs, fmt.Sprintf("Product %d: Category is required", i+1))
		}
	}
	return errs
}

func (s *BulkUploadServiceImpl) Ingest(ctx context.Context, rows []ProductRow) *IngestionOutcome {
	outcome := &IngestionOutcome{
		Total:  len(rows),
		Errors: []string{},
	}

	for i, row := range rows {
		if err := s.ingestRow(ctx, row); err != nil {
			outcome.Failed++
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("Product %d: %s", i+1, err.Error()))
			continue
		}
		outcome.Success++
	}

	return outcome
}

func (s *BulkUploadServiceImpl) ingestRow(ctx context.Context, row ProductRow) error {
	categoryID, err := s.CategoryRepo.FindOrCreate(ctx, row.Category)
	if err != nil {
		return fmt.Errorf("failed to resolve category %q: %v", row.Category, err)
	}

	exists, err := s.ProductRepo.ExistsByTitleOrSKU(ctx, row.Title, row.SKU)
	if err != nil {
		return fmt.Errorf("failed to check for duplicates: %v", err)
	}
	if exists {
		if row.SKU != "" {
			return fmt.Errorf("Product with title %q or SKU %q already exists", row.Title, row.SKU)
		}
		return fmt.Errorf("Product with title %q already exists", row.Title)
	}

	p := &product.Product{
		Title:            row.Title,
		Description:      row.Description,
		ShortDescription: row.ShortDescription,
		Price:            row.Price,
		ComparePrice:     row.ComparePrice,
		CategoryID:       &categoryID,
		SKU:              row.SKU,
		StockQuantity:    row.StockQuantity,
		Weight:           row.Weight,
		Dimensions:       row.Dimensions,
		Tags:             row.Tags,
		MetaTitle:        row.MetaTitle,
		MetaDescription:  row.MetaDescription,
	}

	if _, err := s.ProductRepo.Insert(ctx, p); err != nil {
		return fmt.Errorf("failed to insert product %q: %v", row.Title, err)
	}
	return nil
}

// RecordUpload persists the batch outcome for the history view. Failures here
// never affect the upload itself.
func (s *BulkUploadServiceImpl) RecordUpload(ctx context.Context, filename string, outcome *IngestionOutcome) {
	record := &UploadRecord{
		Filename: filename,
		Total:    outcome.Total,
		Success:  outcome.Success,
		Failed:   outcome.Failed,
		Errors:   outcome.Errors,
	}
	if err := s.HistoryRepo.Save(ctx, record); err != nil {
		s.Logger.Warn("failed to record bulk upload history", zap.Error(err))
	}
}

func (s *BulkUploadServiceImpl) RecentUploads(ctx context.Context, limit int64) ([]UploadRecord, error) {
	return s.HistoryRepo.Recent(ctx, limit)
}
