package datagen

import (
	"fmt"
	"io"
	"strings"

	"vyapar-testkit/pkg/models"
	"vyapar-testkit/pkg/testkit"

	"github.com/xuri/excelize/v2"
)

// WriteSalesCSV writes sales records as import-ready CSV.
func WriteSalesCSV(w io.Writer, records []models.SalesRecord) error {
	_, err := io.WriteString(w, testkit.SalesCSV(records))
	return err
}

// SalesWorkbook builds an XLSX workbook with a single "sales" sheet.
func SalesWorkbook(records []models.SalesRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := writeSalesSheet(f, f.GetSheetName(0), records); err != nil {
		return nil, err
	}
	if err := f.SetSheetName(f.GetSheetName(0), "sales"); err != nil {
		return nil, err
	}
	return f, nil
}

// FestivalWorkbook builds an XLSX workbook with a single "festivals" sheet.
func FestivalWorkbook(events []models.FestivalEvent) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := writeFestivalSheet(f, f.GetSheetName(0), events); err != nil {
		return nil, err
	}
	if err := f.SetSheetName(f.GetSheetName(0), "festivals"); err != nil {
		return nil, err
	}
	return f, nil
}

// BundleWorkbook builds an XLSX workbook with sales, festivals and inventory
// sheets, the shape the import endpoints expect for end-to-end testing.
func BundleWorkbook(sales []models.SalesRecord, festivals []models.FestivalEvent, inventory []models.InventoryRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSalesSheet(f, f.GetSheetName(0), sales); err != nil {
		return nil, err
	}
	if err := f.SetSheetName(f.GetSheetName(0), "sales"); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("festivals"); err != nil {
		return nil, err
	}
	if err := writeFestivalSheet(f, "festivals", festivals); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("inventory"); err != nil {
		return nil, err
	}
	if err := writeInventorySheet(f, "inventory", inventory); err != nil {
		return nil, err
	}

	return f, nil
}

func writeSalesSheet(f *excelize.File, sheet string, records []models.SalesRecord) error {
	header := []interface{}{"date", "sku", "quantity", "category", "price"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write sales header: %w", err)
	}
	for i, r := range records {
		row := []interface{}{r.Date, r.SKU, r.Quantity, r.Category, r.Price}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write sales row %d: %w", i+1, err)
		}
	}
	return nil
}

func writeFestivalSheet(f *excelize.File, sheet string, events []models.FestivalEvent) error {
	header := []interface{}{"festivalId", "name", "date", "regions", "duration", "preparationDays"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write festival header: %w", err)
	}
	for i, e := range events {
		row := []interface{}{
			e.FestivalID,
			e.Name,
			e.Date,
			strings.Join(e.Region, ";"),
			e.Duration,
			e.PreparationDays,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write festival row %d: %w", i+1, err)
		}
	}
	return nil
}

func writeInventorySheet(f *excelize.File, sheet string, records []models.InventoryRecord) error {
	header := []interface{}{"sku", "category", "currentStock", "reorderPoint", "leadTimeDays"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write inventory header: %w", err)
	}
	for i, r := range records {
		row := []interface{}{r.SKU, r.Category, r.CurrentStock, r.ReorderPoint, r.LeadTimeDays}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write inventory row %d: %w", i+1, err)
		}
	}
	return nil
}
