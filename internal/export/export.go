// Package export writes the menu catalog to files for the front of house.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/contactvanshdev-code/restaurant-website/internal/catalog"
	"github.com/contactvanshdev-code/restaurant-website/internal/model"
)

// ErrUnsupportedFormat is returned for extensions other than .json/.xlsx.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Write picks the format from the file extension.
func Write(path string, items []model.Item) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return WriteJSON(path, items)
	case ".xlsx":
		return WriteXLSX(path, items)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// WriteJSON writes items as an indented JSON array.
func WriteJSON(path string, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// ReadJSON loads a file written by WriteJSON.
func ReadJSON(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return items, nil
}

// Header is the first row of the spreadsheet.
var Header = []interface{}{
	"id", "category", "name", "description", "price", "heat",
	"dietary", "ingredients", "allergens", "pairing", "image",
}

const sheet = "Menu"

// WriteXLSX writes one row per item to a "Menu" sheet.
func WriteXLSX(path string, items []model.Item) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}
	if err := sw.SetRow("A1", Header); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2) // A2, A3, ...
		if err != nil {
			return fmt.Errorf("row %s: %w", it.ID, err)
		}
		if err := sw.SetRow(cell, row(it)); err != nil {
			return fmt.Errorf("row %s: %w", it.ID, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func row(it model.Item) []interface{} {
	tags := make([]string, 0, len(it.Dietary))
	for _, t := range it.Dietary {
		tags = append(tags, t.Label())
	}
	return []interface{}{
		it.ID,
		catalog.Info(it.Category).Label,
		it.Name,
		it.Description,
		it.Price,
		string(it.Heat),
		strings.Join(tags, ", "),
		strings.Join(it.Ingredients, ", "),
		strings.Join(it.Allergens, " • "),
		it.Pairing,
		it.Image,
	}
}
